// xlxdb runs a 32 KiB XL binary image one instruction at a time,
// writing a per-instruction disassembly and register/flag diff trace
// to stderr. The Go equivalent of xlx.c's XLXDB build, exposed as its
// own binary rather than a compile-time macro.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/xl-systems/xl/xlvm"
)

func main() {
	flag.Parse()
	if len(flag.Args()) < 1 {
		log.Fatalf("usage: %s <input-files...>", os.Args[0])
	}
	for _, name := range flag.Args() {
		run(name)
	}
}

func run(name string) {
	prg, err := os.ReadFile(name)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	m, err := xlvm.New(name, prg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	m.Boot()
	for !m.Stopped() {
		xlvm.StepTraced(m, os.Stderr)
	}
	if err := m.Err(); err != nil {
		log.Fatalf("%v", err)
	}
	if h, ok := m.HaltErr(); ok {
		log.Printf("%s: %v", name, h)
	}
}
