// xldis disassembles one or more 32 KiB XL binary images to stdout, the
// Go equivalent of xldis.c's command-line driver.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xl-systems/xl/disasm"
)

func main() {
	flag.Parse()
	if len(flag.Args()) < 1 {
		log.Fatalf("usage: %s <input-files...>", os.Args[0])
	}
	for _, name := range flag.Args() {
		img, err := os.ReadFile(name)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		listing, err := disasm.Listing(img)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		fmt.Printf("   '%s'\n", name)
		fmt.Print(listing)
	}
}
