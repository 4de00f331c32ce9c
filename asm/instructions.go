package asm

import "github.com/xl-systems/xl/cpu"

// readInst parses one instruction line: mnemonic tok is already
// current. It determines the addressing mode from the operand's
// leading punctuation (# imm, x/y [*] indexed/indirect-indexed, *
// vec, ~ rel, bare abs later narrowed to zpg/zpx/zpy by operand size),
// evaluates or defers the operand, and emits the opcode byte plus its
// operand bytes.
func (a *Assembler) readInst(tok token) error {
	mnem := mnemonicByName[tok.ident]
	mode := cpu.ModeNam

	if err := a.advance(); err != nil {
		return err
	}

	switch a.cur.kind {
	case kindNewline, kindEOF:
		mode = cpu.ModeNam
		return a.finishInst(tok, mnem, mode, "", Pos{}, 0, 0, false)
	case kindSharp:
		mode = cpu.ModeImm
		if err := a.advance(); err != nil {
			return err
		}
	case kindRegX, kindRegY:
		if a.cur.kind == kindRegX {
			mode = cpu.ModeAbx
		} else {
			mode = cpu.ModeAby
		}
		if err := a.advance(); err != nil {
			return err
		}
		if a.cur.kind == kindMult {
			if mode == cpu.ModeAbx {
				mode = cpu.ModeZvx
			} else {
				mode = cpu.ModeZyv
			}
			if err := a.advance(); err != nil {
				return err
			}
		}
	case kindMult:
		mode = cpu.ModeVec
		if err := a.advance(); err != nil {
			return err
		}
	case kindNor:
		mode = cpu.ModeRel
		if err := a.advance(); err != nil {
			return err
		}
	default:
		mode = cpu.ModeAbs
	}

	if a.cur.kind == kindNewline || a.cur.kind == kindEOF {
		return SyntaxError{Pos: tok.pos, Msg: "no argument in the instruction"}
	}

	var (
		label    string
		labelPos Pos
		val      int
		sz       int
	)
	if a.cur.kind == kindIdent {
		if _, ok := a.syms.get(a.cur.ident); !ok {
			label = a.cur.ident
			labelPos = a.cur.pos
			sz = 2
			if mode == cpu.ModeRel {
				sz = 1
			}
			if err := a.advance(); err != nil {
				return err
			}
		}
	}
	if label == "" {
		v, err := a.evalExpr()
		if err != nil {
			return err
		}
		val = v
		sz = 1
		if val > 255 {
			sz = 2
		}
	}

	switch {
	case mode == cpu.ModeAbx && sz == 1:
		mode = cpu.ModeZpx
	case mode == cpu.ModeAby && sz == 1:
		mode = cpu.ModeZpy
	case mode == cpu.ModeAbs && sz == 1:
		mode = cpu.ModeZpg
	}

	if a.cur.kind != kindNewline && a.cur.kind != kindEOF {
		return SyntaxError{Pos: a.cur.pos, Msg: "unexpected token"}
	}

	return a.finishInst(tok, mnem, mode, label, labelPos, val, sz, mode == cpu.ModeRel)
}

func (a *Assembler) finishInst(tok token, mnem cpu.Mnemonic, mode cpu.Mode, label string, labelPos Pos, val, sz int, isRelMode bool) error {
	opcode, ok := comboToOpcode[cpu.Combo{Mnemonic: mnem, Mode: mode}]
	if !ok {
		return SyntaxError{Pos: tok.pos, Msg: "unknown instruction pattern"}
	}
	if err := a.emitByte(opcode, 1); err != nil {
		return err
	}

	if mode == cpu.ModeImm {
		return a.emitByte(byte(val), 1)
	}
	if label != "" {
		a.planPatch(len(a.out), label, isRelMode, labelPos)
		if sz == 1 {
			return a.emitByte(0, 1)
		}
		return a.emitWord(0)
	}
	if isRelMode {
		addr := origin + len(a.out) - 1
		rel := val - addr
		if rel > 127 || rel < -128 {
			return RangeError{Pos: tok.pos, Msg: "the location is too far"}
		}
		return a.emitByte(byte(rel), 1)
	}
	switch sz {
	case 1:
		return a.emitByte(byte(val), 1)
	case 2:
		return a.emitWord(val)
	}
	return nil
}
