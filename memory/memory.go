// Package memory defines the basic RAM abstraction used by the XL
// toolchain's CLI hosts. The XL core itself never holds memory: it
// talks only through the cpu.LoadFunc/StoreFunc callbacks a host
// installs on a cpu.Chip. This package exists for those hosts (xlx and
// xlxdb, through package xlvm) to have a shared, simple bank
// implementation instead of each rolling its own byte array.
package memory

import "fmt"

// Bank is a flat, non-chained byte-addressable memory. Unlike the
// reference emulator's memory.Bank this carries no Parent/DatabusVal
// concepts: XL has no shadowed or mirrored memory regions, so there is
// nothing for a bank chain to resolve.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
	// PowerOn resets the bank's contents to all zeros.
	PowerOn()
}

type ram struct {
	mem []uint8
}

// New8BitRAMBank creates a R/W RAM bank of the given size. Size must be
// a power of 2; if smaller than 64k (uint16 max) addresses alias.
func New8BitRAMBank(size int) (Bank, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	return &ram{mem: make([]uint8, size)}, nil
}

func (r *ram) Read(addr uint16) uint8 {
	return r.mem[addr&uint16(len(r.mem)-1)]
}

func (r *ram) Write(addr uint16, val uint8) {
	r.mem[addr&uint16(len(r.mem)-1)] = val
}

func (r *ram) PowerOn() {
	for i := range r.mem {
		r.mem[i] = 0
	}
}
