package asm

// doLet handles `let name expr`: defines (or, if not already a label,
// redefines) a symbol to the value of a no-precedence expression.
func (a *Assembler) doLet() error {
	letPos := a.cur.pos
	if err := a.advance(); err != nil {
		return err
	}
	if a.cur.kind != kindIdent {
		return SyntaxError{Pos: letPos, Msg: "the let requires a name"}
	}
	name := a.cur.ident
	if err := a.advance(); err != nil {
		return err
	}
	if a.cur.kind == kindNewline || a.cur.kind == kindEOF {
		return SyntaxError{Pos: letPos, Msg: "the let requires an expression"}
	}
	val, err := a.evalExpr()
	if err != nil {
		return err
	}
	if a.cur.kind != kindNewline && a.cur.kind != kindEOF {
		return SyntaxError{Pos: a.cur.pos, Msg: "unexpected token"}
	}
	if a.syms.set(name, val, false) {
		return SyntaxError{Pos: letPos, Msg: "label redefinition"}
	}
	return nil
}

// doRb handles `rb expr`: reserves (zero-fills) expr bytes.
func (a *Assembler) doRb() error {
	rbPos := a.cur.pos
	if err := a.advance(); err != nil {
		return err
	}
	if a.cur.kind == kindNewline || a.cur.kind == kindEOF {
		return SyntaxError{Pos: rbPos, Msg: "the rb requires an expression"}
	}
	n, err := a.evalExpr()
	if err != nil {
		return err
	}
	if a.cur.kind != kindNewline && a.cur.kind != kindEOF {
		return SyntaxError{Pos: a.cur.pos, Msg: "unexpected token"}
	}
	return a.emitByte(0, n)
}

// defVals handles `db`/`dw`: a comma-separated list of string literals,
// bare expressions, and forward label references (which defer to a
// word-sized back-patch regardless of db/dw, matching xlas's defvals).
func (a *Assembler) defVals(words bool) error {
	what := "db"
	if words {
		what = "dw"
	}
	tokPos := a.cur.pos
	for {
		if err := a.advance(); err != nil {
			return err
		}
		if a.cur.kind == kindNewline || a.cur.kind == kindEOF {
			return SyntaxError{Pos: tokPos, Msg: "the " + what + " requires an expression"}
		}
		switch {
		case a.cur.kind == kindStrLit:
			if err := a.emit([]byte(a.cur.strlit)); err != nil {
				return err
			}
			if err := a.advance(); err != nil {
				return err
			}
		case a.cur.kind == kindIdent:
			if _, ok := a.syms.get(a.cur.ident); !ok {
				a.planPatch(len(a.out), a.cur.ident, false, a.cur.pos)
				if err := a.emitWord(0); err != nil {
					return err
				}
				if err := a.advance(); err != nil {
					return err
				}
				break
			}
			fallthrough
		default:
			val, err := a.evalExpr()
			if err != nil {
				return err
			}
			if words {
				if err := a.emitWord(val); err != nil {
					return err
				}
			} else if err := a.emitByte(byte(val), 1); err != nil {
				return err
			}
		}
		if a.cur.kind == kindNewline || a.cur.kind == kindEOF {
			return nil
		}
		if a.cur.kind != kindComma {
			return SyntaxError{Pos: a.cur.pos, Msg: "unexpected token"}
		}
		tokPos = a.cur.pos
	}
}

// doInclude splices the named file's tokens in starting immediately
// after this directive's trailing newline. The original xlas.c reads
// one further token from the includer before switching lexers, which
// makes the mnemonic of the line following an include come from the
// includer while that mnemonic's own operand is read from the included
// file — an artifact of statement ordering in doinclude(), not a
// documented behavior. This implementation switches the source first
// so the included file's content begins cleanly at its own first line.
func (a *Assembler) doInclude() error {
	pos := a.cur.pos
	if err := a.advance(); err != nil {
		return err
	}
	if a.cur.kind != kindStrLit {
		return SyntaxError{Pos: pos, Msg: "the include requires a filename string"}
	}
	filename := a.cur.strlit
	if err := a.advance(); err != nil {
		return err
	}
	if a.cur.kind != kindNewline && a.cur.kind != kindEOF {
		return SyntaxError{Pos: a.cur.pos, Msg: "unexpected token"}
	}
	if err := a.lex.pushInclude(filename); err != nil {
		return SyntaxError{Pos: pos, Msg: "include: " + err.Error()}
	}
	return a.advance()
}

// doIncbin embeds a binary file's raw bytes at the current offset.
func (a *Assembler) doIncbin() error {
	pos := a.cur.pos
	if err := a.advance(); err != nil {
		return err
	}
	if a.cur.kind != kindStrLit {
		return SyntaxError{Pos: pos, Msg: "the incbin requires a filename string"}
	}
	filename := a.cur.strlit
	if err := a.advance(); err != nil {
		return err
	}
	if a.cur.kind != kindNewline && a.cur.kind != kindEOF {
		return SyntaxError{Pos: a.cur.pos, Msg: "unexpected token"}
	}
	data, err := a.OpenBinary(filename)
	if err != nil {
		return SyntaxError{Pos: pos, Msg: "incbin: " + err.Error()}
	}
	return a.emit(data)
}
