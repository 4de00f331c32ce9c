package asm

import "github.com/xl-systems/xl/cpu"

// mnemonicByName maps every lowercase instruction keyword to its
// cpu.Mnemonic, built once from cpu.MnemonicNames so the two packages
// never drift out of sync with each other.
var mnemonicByName = func() map[string]cpu.Mnemonic {
	m := make(map[string]cpu.Mnemonic, len(cpu.MnemonicNames))
	for mnem, name := range cpu.MnemonicNames {
		m[name] = cpu.Mnemonic(mnem)
	}
	return m
}()

// symbol is one entry in the assembler's variable/label table. A
// symbol becomes a label (isLabel true) the first time it is defined
// by a "name:" line; once a label, redefinition is an error, matching
// setvar's islabel semantics — a plain "let" reassignment is allowed
// only while the name has never been used as a label.
type symbol struct {
	name    string
	val     int
	isLabel bool
}

// symtab is a small linear-scan symbol table, exactly like xlas's
// vartab: program sizes are small enough (32 KiB of output) that a map
// buys nothing a slice doesn't already give for free, and preserves
// the original's first-definition-wins redefinition check faithfully.
type symtab struct {
	syms []symbol
}

func (t *symtab) find(name string) int {
	for i := range t.syms {
		if t.syms[i].name == name {
			return i
		}
	}
	return -1
}

// set installs name=val. It reports true if the assignment was
// rejected: either name already names a label (labels are immutable
// once set, and a later "let" or colon-definition on the same name is
// a redefinition error for the caller to report), or name already
// exists and isLabel asks to turn it into a label.
func (t *symtab) set(name string, val int, isLabel bool) bool {
	if i := t.find(name); i >= 0 {
		if t.syms[i].isLabel || isLabel {
			return true
		}
		t.syms[i].val = val
		return false
	}
	t.syms = append(t.syms, symbol{name: name, val: val, isLabel: isLabel})
	return false
}

func (t *symtab) get(name string) (int, bool) {
	if i := t.find(name); i >= 0 {
		return t.syms[i].val, true
	}
	return 0, false
}
