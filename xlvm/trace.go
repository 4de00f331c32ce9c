package xlvm

import (
	"fmt"
	"io"

	"github.com/xl-systems/xl/cpu"
	"github.com/xl-systems/xl/disasm"
)

// snapshot is the subset of register/flag state xlxdb_diff compares
// between two retired instructions.
type snapshot struct {
	a, x, y, s, f uint8
}

func snapshotOf(c *cpu.Chip) snapshot {
	return snapshot{a: c.A, x: c.X, y: c.Y, s: c.S, f: c.F}
}

// StepTraced runs the machine until exactly one instruction retires
// (mirroring xlx.c's `while (!XL_cycle(xl))`), then writes a
// fixed-format trace line to w: the instruction's own address, its
// disassembly, and a ">>>" register/flag diff block listing only the
// fields that changed, exactly as xlxdb_diff prints it.
func StepTraced(m *Machine, w io.Writer) {
	pc := m.Chip.PC
	before := snapshotOf(m.Chip)

	for !m.Chip.Cycle() {
	}

	// disasm.Step reads at most 3 bytes; fetch them through the bank
	// rather than slicing a backing array, so a fetch straddling the
	// top of the address space wraps the same way a real load would.
	buf := [3]byte{m.bank.Read(pc), m.bank.Read(pc + 1), m.bank.Read(pc + 2)}
	text, _ := disasm.Step(pc, buf[:])
	fmt.Fprintf(w, " %04X  %s", pc, text)
	after := snapshotOf(m.Chip)
	writeDiff(w, before, after)
	fmt.Fprintln(w)
}

func writeDiff(w io.Writer, before, after snapshot) {
	diff := before.f != after.f || before.a != after.a || before.s != after.s ||
		before.x != after.x || before.y != after.y
	if diff {
		fmt.Fprint(w, " >>>")
	}
	if before.f != after.f {
		fmt.Fprintf(w, " f: %s;", flagString(after.f))
	}
	if before.a != after.a {
		fmt.Fprintf(w, " a = %d;", after.a)
	}
	if before.s != after.s {
		fmt.Fprintf(w, " s = %d;", after.s)
	}
	if before.x != after.x {
		fmt.Fprintf(w, " x = %d;", after.x)
	}
	if before.y != after.y {
		fmt.Fprintf(w, " y = %d;", after.y)
	}
}

func flagString(f uint8) string {
	bit := func(set bool, ch byte) byte {
		if set {
			return ch
		}
		return '-'
	}
	chip := &cpu.Chip{F: f}
	return string([]byte{
		bit(chip.GetFlag(cpu.FlagZ), 'Z'),
		bit(chip.GetFlag(cpu.FlagV), 'V'),
		bit(chip.GetFlag(cpu.FlagU), 'U'),
		bit(chip.GetFlag(cpu.FlagR), 'R'),
		bit(chip.GetFlag(cpu.FlagN), 'N'),
		bit(chip.GetFlag(cpu.FlagD), 'D'),
		bit(chip.GetFlag(cpu.FlagC), 'C'),
		bit(chip.GetFlag(cpu.FlagB), 'B'),
	})
}
