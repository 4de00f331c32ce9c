// xlx runs a 32 KiB XL binary image as a free-running virtual machine:
// memory-mapped I/O at $00FF, a clean halt on a store to $7FFF, and a
// fatal error on any store at or above $8000. The Go equivalent of
// xlx.c's non-debug build.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/xl-systems/xl/xlvm"
)

var (
	freq        = flag.Int("freq", xlvm.Freq, "Cycles to run per wall-clock second.")
	unthrottled = flag.Bool("unthrottled", false, "Run at host speed instead of pacing to -freq.")
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
	if *unthrottled {
		xlvm.RunUnthrottled(m)
	} else {
		xlvm.RunAt(m, *freq)
	}
	if err := m.Err(); err != nil {
		log.Fatalf("%v", err)
	}
	if h, ok := m.HaltErr(); ok {
		log.Printf("%s: %v", name, h)
	}
}
