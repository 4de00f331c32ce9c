// Package asm implements the XL assembler: a single-pass lexer, a
// string-free (interning is left to Go's own string equality) symbol
// table, a left-to-right no-precedence expression evaluator, and an
// encoder that emits a binary image of at most 32 KiB with deferred
// label back-patching. The image holds exactly the emitted bytes; it is
// not padded to 32 KiB.
package asm

import (
	"io"

	"github.com/xl-systems/xl/cpu"
)

// origin is the fixed load address of the assembled image; "$" always
// tracks 0x8000+len(out) and "$$" is pinned to this constant, exactly
// as xlas seeds its symbol table before the first line.
const origin = 0x8000

// maxImage is the 32 KiB output bound; emitting past it is an error.
const maxImage = 0x8000

// comboToOpcode is the reverse of cpu.Combos: given a (mnemonic, mode)
// pair, the first matching opcode byte. Built once so the encoder and
// the disassembler's decode table share a single source of truth.
var comboToOpcode = func() map[cpu.Combo]byte {
	m := make(map[cpu.Combo]byte, 256)
	for i, c := range cpu.Combos {
		if _, ok := m[c]; !ok {
			m[c] = byte(i)
		}
	}
	return m
}()

type backpatch struct {
	offset int
	label  string
	isRel  bool
	pos    Pos
}

// Assembler holds all single-pass assembly state: the token stream,
// the symbol table, the output buffer, and the deferred back-patch
// list resolved once the whole input has been consumed.
type Assembler struct {
	lex  *lexer
	cur  token
	syms symtab
	out  []byte
	bps  []backpatch

	// OpenText resolves an `include` directive's filename to its
	// contents. OpenBinary resolves an `incbin` directive's filename.
	OpenText   func(name string) (io.Reader, error)
	OpenBinary func(name string) ([]byte, error)
}

// Assemble reads XL assembly source from r (named name for
// diagnostics) and returns the assembled 32 KiB-bounded binary image.
func Assemble(name string, r io.Reader, openText func(string) (io.Reader, error), openBinary func(string) ([]byte, error)) ([]byte, error) {
	a := &Assembler{OpenText: openText, OpenBinary: openBinary}
	a.lex = newLexer(name, r, a.OpenText)
	a.syms.set("$", 0, false)
	a.syms.set("$$", origin, false)
	if err := a.advance(); err != nil {
		return nil, err
	}
	for {
		done, err := a.readLine()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}
	if err := a.resolveBackpatches(); err != nil {
		return nil, err
	}
	return a.out, nil
}

func (a *Assembler) advance() error {
	tok, err := a.lex.next()
	if err != nil {
		return err
	}
	a.cur = tok
	return nil
}

func (a *Assembler) emit(b []byte) error {
	if len(a.out)+len(b) > maxImage {
		return RangeError{Pos: a.cur.pos, Msg: "too many bytes in the program"}
	}
	a.out = append(a.out, b...)
	return nil
}

func (a *Assembler) emitByte(v byte, times int) error {
	for i := 0; i < times; i++ {
		if err := a.emit([]byte{v}); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) emitWord(v int) error {
	return a.emit([]byte{byte(v), byte(v >> 8)})
}

func (a *Assembler) planPatch(offset int, label string, isRel bool, pos Pos) {
	a.bps = append(a.bps, backpatch{offset: offset, label: label, isRel: isRel, pos: pos})
}

// resolveBackpatches rewrites every deferred reference now that the
// whole program has been read and every label is known. It writes each
// resolved value directly into the output slice at the patch's offset,
// which has the same effect as xlas's "hack the buffer" approach of
// resetting outbuf->size before calling emitbyte/emitle16 again.
func (a *Assembler) resolveBackpatches() error {
	full := a.out
	for _, bp := range a.bps {
		addr, ok := a.syms.get(bp.label)
		if !ok {
			return UndefinedSymbolError{Pos: bp.pos, Name: bp.label}
		}
		if bp.isRel {
			dlr := origin + bp.offset - 1
			rel := addr - dlr
			if rel > 127 || rel < -128 {
				return RangeError{Pos: bp.pos, Msg: "the label is too far"}
			}
			full[bp.offset] = byte(rel)
		} else {
			full[bp.offset] = byte(addr)
			full[bp.offset+1] = byte(addr >> 8)
		}
	}
	a.out = full
	return nil
}

// readLine interprets the current line and reports whether input is
// exhausted. It refreshes the "$" symbol to the current address at the
// start of every line, exactly like xlas's readline does before
// dispatch.
func (a *Assembler) readLine() (bool, error) {
	a.syms.set("$", origin+len(a.out), false)
	tok := a.cur

	switch tok.kind {
	case kindEOF:
		return true, nil
	case kindNewline:
		return false, a.advance()
	case kindIdent:
		if err := a.advance(); err != nil {
			return false, err
		}
		if a.cur.kind != kindColon {
			return false, SyntaxError{Pos: tok.pos, Msg: "no colon after the label"}
		}
		if a.syms.set(tok.ident, origin+len(a.out), true) {
			return false, SyntaxError{Pos: tok.pos, Msg: "variable or label redefinition"}
		}
		return false, a.advance()
	case kindKeyword:
		if tok.isDir {
			var err error
			switch tok.directive {
			case dirLet:
				err = a.doLet()
			case dirRb:
				err = a.doRb()
			case dirDb:
				err = a.defVals(false)
			case dirDw:
				err = a.defVals(true)
			case dirInclude:
				err = a.doInclude()
			case dirIncbin:
				err = a.doIncbin()
			}
			return false, err
		}
		return false, a.readInst(tok)
	default:
		return false, SyntaxError{Pos: tok.pos, Msg: "unexpected token"}
	}
}
