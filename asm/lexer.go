package asm

import (
	"bufio"
	"io"
	"strings"
)

// kind identifies the grammatical class of a token. Unlike the original
// xlas, which reuses a single signed-int token space for both operators
// and interned identifiers (ordinary identifiers get whatever slot
// getsi() hands out above the keyword range), this lexer tags each
// token with an explicit kind and carries keyword/identifier payloads
// in separate fields — easier to exhaustively switch over and to test.
type kind int

const (
	kindEOF kind = iota
	kindNewline
	kindConst
	kindStrLit
	kindIdent   // not a keyword: a label or variable reference
	kindKeyword // an instruction mnemonic or directive keyword
	kindRegX
	kindRegY
	kindSharp // '#'
	kindDiv
	kindMult
	kindMore
	kindLess
	kindAnd
	kindOr
	kindNor
	kindXor
	kindMinus
	kindPlus
	kindComma
	kindColon
)

// directive names the assembler-only keywords that are not CPU
// mnemonics: let, rb, db, dw, include, incbin.
type directive int

const (
	dirLet directive = iota
	dirRb
	dirDb
	dirDw
	dirInclude
	dirIncbin
)

var directiveNames = map[string]directive{
	"let":     dirLet,
	"rb":      dirRb,
	"db":      dirDb,
	"dw":      dirDw,
	"include": dirInclude,
	"incbin":  dirIncbin,
}

type token struct {
	kind      kind
	pos       Pos
	ident     string
	iconst    int
	strlit    string
	mnemonic  mnemonicToken
	directive directive
	isDir     bool
}

// mnemonicToken records that a keyword was recognized as an instruction
// mnemonic, and its text; the cpu.Mnemonic value itself is looked up in
// mnemonicByName by readInst.
type mnemonicToken struct {
	name string
	ok   bool
}

// source is one open input (the main file or an included one); sources
// chain via prev so that hitting EOF on an include pops back to its
// includer, exactly like xlas's Lexer.prev chain.
type source struct {
	name string
	r    *bufio.Reader
	prev *source
	row  int
	col  int
	chr  rune
	peek rune
}

const runeEOF = -1

func newSource(name string, r io.Reader, prev *source) *source {
	s := &source{name: name, r: bufio.NewReader(r), prev: prev, row: 1}
	s.advance()
	s.advance()
	return s
}

// advance shifts the lookahead rune into chr and reads a new lookahead,
// collapsing a backslash-newline line continuation exactly as xlas's
// lgetc does.
func (s *source) advance() {
	if s.chr == '\n' {
		s.row++
		s.col = 0
	}
	s.col++
	s.chr = s.peek
	s.peek = s.readRune()
	for s.chr == '\\' && s.peek == '\n' {
		s.row++
		s.col = 0
		s.chr = s.readRune()
		s.peek = s.readRune()
	}
}

func (s *source) readRune() rune {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return runeEOF
	}
	return r
}

// lexer owns the source stack and the string-intern-free token reader:
// it produces one token at a time via next.
type lexer struct {
	cur     *source
	include func(name string) (io.Reader, error)
}

func newLexer(name string, r io.Reader, include func(string) (io.Reader, error)) *lexer {
	return &lexer{cur: newSource(name, r, nil), include: include}
}

func (l *lexer) pushInclude(name string) error {
	r, err := l.include(name)
	if err != nil {
		return err
	}
	l.cur = newSource(name, r, l.cur)
	return nil
}

var singleCharOps = map[rune]kind{
	'>': kindMore, '<': kindLess, '&': kindAnd, '|': kindOr,
	'~': kindNor, '^': kindXor, '-': kindMinus, '+': kindPlus,
	'/': kindDiv, ',': kindComma, ':': kindColon, '*': kindMult,
	'#': kindSharp,
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// next reads the next token, popping exhausted include sources.
func (l *lexer) next() (token, error) {
	for {
		tok, err := l.nextFromCurrent()
		if err != nil {
			return token{}, err
		}
		if tok.kind == kindEOF && l.cur.prev != nil {
			l.cur = l.cur.prev
			continue
		}
		return tok, nil
	}
}

func (l *lexer) nextFromCurrent() (token, error) {
	s := l.cur
	for {
		for s.chr != runeEOF && s.chr != '\n' && isSpace(s.chr) {
			s.advance()
		}
		if s.chr != ';' {
			break
		}
		for s.chr != runeEOF && s.chr != '\n' {
			s.advance()
		}
	}
	pos := Pos{File: s.name, Row: s.row, Col: s.col}
	if s.chr == runeEOF {
		return token{kind: kindEOF, pos: pos}, nil
	}
	if s.chr == '\n' {
		s.advance()
		return token{kind: kindNewline, pos: pos}, nil
	}
	if k, ok := singleCharOps[s.chr]; ok {
		s.advance()
		return token{kind: k, pos: pos}, nil
	}
	if s.chr == '\'' {
		s.advance()
		var sb strings.Builder
		for s.chr != runeEOF && s.chr != '\'' && s.chr != '\n' {
			sb.WriteRune(s.chr)
			s.advance()
		}
		if s.chr != '\'' {
			return token{}, SyntaxError{Pos: pos, Msg: "missing closing quote"}
		}
		s.advance()
		return token{kind: kindStrLit, pos: pos, strlit: sb.String()}, nil
	}
	if isIdentRune(s.chr) || s.chr == '-' || s.chr == '+' {
		var sb strings.Builder
		if s.chr == '-' || s.chr == '+' {
			sb.WriteRune(s.chr)
			s.advance()
			for isIdentRune(s.chr) {
				sb.WriteRune(s.chr)
				s.advance()
			}
		} else {
			for isIdentRune(s.chr) {
				sb.WriteRune(s.chr)
				s.advance()
			}
		}
		text := sb.String()
		if isDigit(rune(text[0])) || ((text[0] == '-' || text[0] == '+') && len(text) > 1 && isDigit(rune(text[1]))) {
			v, err := parseNumber(text)
			if err != nil {
				return token{}, SyntaxError{Pos: pos, Msg: "invalid integer constant"}
			}
			return token{kind: kindConst, pos: pos, iconst: v}, nil
		}
		return identToken(text, pos), nil
	}
	return token{}, SyntaxError{Pos: pos, Msg: "invalid token"}
}

// identToken classifies a bare identifier as a register name, a known
// mnemonic/directive keyword, or an ordinary label/variable reference.
// Keyword recognition is exact-case, matching xlas.c's interned keyword
// table: "LDA" is an ordinary identifier, not the lda mnemonic.
func identToken(text string, pos Pos) token {
	switch text {
	case "x":
		return token{kind: kindRegX, pos: pos, ident: text}
	case "y":
		return token{kind: kindRegY, pos: pos, ident: text}
	}
	if d, ok := directiveNames[text]; ok {
		return token{kind: kindKeyword, pos: pos, isDir: true, directive: d, ident: text}
	}
	if _, ok := mnemonicByName[text]; ok {
		return token{kind: kindKeyword, pos: pos, mnemonic: mnemonicToken{name: text, ok: true}, ident: text}
	}
	return token{kind: kindIdent, pos: pos, ident: text}
}
