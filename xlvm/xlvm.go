// Package xlvm is the shared shell both VM binaries (xlx and xlxdb)
// build on: a 64 KiB byte-addressable bus with a fixed memory-mapped
// I/O cell, the $7FFF halt convention, and the free-running XL_FREQ
// pacing loop, all grounded on xlx.c's XLX/xlx_load/xlx_store/main.
package xlvm

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/xl-systems/xl/cpu"
	"github.com/xl-systems/xl/memory"
)

// Freq is the nominal cycle rate xlx paces itself to when running
// throttled, carried over from the reference source's XL_FREQ.
const Freq = 1000020

// ioAddr is the single memory-mapped I/O cell: reads pull a byte from
// stdin, writes push a byte to stdout.
const ioAddr uint16 = 0x00FF

// haltAddr is the store address that cleanly stops the run loop.
const haltAddr uint16 = 0x7FFF

// writableTop is the last address ordinary code may store to; stores
// at or above 0x8000 (outside haltAddr) are a fatal host error.
const writableTop uint16 = 0x7FFE

// Machine wires a cpu.Chip to a 64 KiB memory.Bank loaded at 0x8000
// with a program image, and to the host's I/O streams.
type Machine struct {
	Chip *cpu.Chip
	bank memory.Bank
	prg  []byte

	in  *bufio.Reader
	out *bufio.Writer

	name     string
	stopped  bool
	err      error
	haltErr  cpu.HaltError
	haltedOK bool
}

// New wires a fresh cpu.Chip to a freshly allocated 64 KiB memory.Bank.
// prg (exactly 0x8000 bytes) is installed at address 0x8000 on every
// Boot, after the bank's own power-on reset. name is used only in
// error messages.
func New(name string, prg []byte, in io.Reader, out io.Writer) (*Machine, error) {
	if len(prg) != 0x8000 {
		return nil, fmt.Errorf("%s: want 0x8000 bytes, got 0x%X", name, len(prg))
	}
	bank, err := memory.New8BitRAMBank(0x10000)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m := &Machine{name: name, bank: bank, prg: prg, in: bufio.NewReader(in), out: bufio.NewWriter(out)}
	m.Chip = cpu.Init(m.load, m.store, m.onError)
	return m, nil
}

func (m *Machine) load(addr uint16) uint8 {
	if addr == ioAddr {
		b, err := m.in.ReadByte()
		if err != nil {
			return 0
		}
		return b
	}
	return m.bank.Read(addr)
}

func (m *Machine) store(addr uint16, v uint8) {
	if addr == ioAddr {
		m.out.WriteByte(v)
	}
	switch {
	case addr <= writableTop:
		m.bank.Write(addr, v)
	case addr == haltAddr:
		m.haltErr = cpu.HaltError{PC: m.Chip.PC}
		m.haltedOK = true
		m.stopped = true
		m.out.Flush()
	default:
		m.err = fmt.Errorf("%s: attempt to write to 0x%04X", m.name, addr)
		m.stopped = true
	}
}

func (m *Machine) onError(err error) {
	if _, ok := err.(cpu.InvalidOpcodeError); ok {
		m.err = fmt.Errorf("%s: %w", m.name, err)
		m.stopped = true
	}
}

// Stopped reports whether the machine has halted, either cleanly (via
// a store to 0x7FFF) or fatally (an out-of-range store or an invalid
// opcode).
func (m *Machine) Stopped() bool { return m.stopped }

// Err returns the fatal error that stopped the machine, or nil on a
// clean halt or if the machine is still running.
func (m *Machine) Err() error { return m.err }

// HaltErr reports the cpu.HaltError recorded by a clean halt (a store
// to haltAddr), and whether one has happened yet. xlxdb logs it as the
// trace's final line.
func (m *Machine) HaltErr() (cpu.HaltError, bool) {
	return m.haltErr, m.haltedOK
}

// Boot powers the bank on (zeroing it), installs prg at 0x8000, then
// raises reset and runs the reset-sequence cycle, the same as xlx.c
// calling XL_restart immediately before the run loop.
func (m *Machine) Boot() {
	m.bank.PowerOn()
	for i, b := range m.prg {
		m.bank.Write(uint16(0x8000+i), b)
	}
	m.Chip.Restart()
	m.Chip.Cycle()
}

// Cycle runs exactly one CPU cycle, flushing pending stdout output if
// this cycle just retired an instruction. It mirrors cpu.Chip.Cycle's
// return value.
func (m *Machine) Cycle() bool {
	retired := m.Chip.Cycle()
	if retired {
		m.out.Flush()
	}
	return retired
}

// RunThrottled free-runs the machine at Freq cycles per wall-clock
// second until it stops, the same pacing as xlx.c's non-debug loop.
func RunThrottled(m *Machine) { RunAt(m, Freq) }

// RunAt free-runs the machine at freq cycles per wall-clock second
// until it stops, the same pacing as xlx.c's non-debug loop: a busy
// poll on time.Now() truncated to the second. freq need not be Freq;
// this generalizes xlx.c's hardcoded XL_FREQ into a runtime setting.
func RunAt(m *Machine, freq int) {
	t0 := time.Now().Truncate(time.Second)
	for !m.Stopped() {
		for c := 0; c < freq && !m.Stopped(); c++ {
			m.Cycle()
		}
		t := t0
		for t.Equal(t0) && !m.Stopped() {
			t = time.Now().Truncate(time.Second)
		}
		t0 = t
	}
	m.out.Flush()
}

// RunUnthrottled free-runs the machine at host speed with no pacing,
// an option the original fixed-XL_FREQ loop did not offer.
func RunUnthrottled(m *Machine) {
	for !m.Stopped() {
		m.Cycle()
	}
	m.out.Flush()
}
