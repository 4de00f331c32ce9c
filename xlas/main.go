// xlas assembles an XL source file into a binary image of at most
// 32 KiB (exactly the assembled bytes, not padded), the Go equivalent of
// xlas.c's command-line driver.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/xl-systems/xl/asm"
)

var output = flag.String("o", "a.out", "Output binary image path.")

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [-o out] <input.xla>", os.Args[0])
	}
	in := flag.Args()[0]

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("%s: %v", in, err)
	}
	defer f.Close()

	// include/incbin filenames are resolved exactly like xlas.c's
	// fopen(filename, "rb") calls: relative to the process's working
	// directory, not to the includer's own directory.
	openText := func(name string) (io.Reader, error) { return os.Open(name) }
	openBinary := func(name string) ([]byte, error) { return os.ReadFile(name) }

	img, err := asm.Assemble(in, f, openText, openBinary)
	if err != nil {
		log.Fatalf("%s: %v", in, err)
	}

	if err := os.WriteFile(*output, img, 0o644); err != nil {
		log.Fatalf("%s: %v", *output, err)
	}
}
