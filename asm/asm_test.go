package asm

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/xl-systems/xl/cpu"
)

func noInclude(name string) (io.Reader, error) {
	return nil, errors.New("no includes available: " + name)
}

func noIncbin(name string) ([]byte, error) {
	return nil, errors.New("no incbin available: " + name)
}

func assemble(t *testing.T, src string) []byte {
	t.Helper()
	img, err := Assemble("t.xla", strings.NewReader(src), noInclude, noIncbin)
	if err != nil {
		t.Fatalf("Assemble: %v\n%s", err, spew.Sdump(err))
	}
	return img
}

func TestParseNumberGrammar(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"42", 42},
		{"-5", -5},
		{"+7", 7},
		{"0x1F", 0x1F},
		{"0o17", 0o17},
		{"0b101", 0b101},
		{"017", 0o17},
	}
	for _, tc := range tests {
		got, err := parseNumber(tc.in)
		if err != nil {
			t.Errorf("parseNumber(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseNumber(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseNumberRejectsGarbage(t *testing.T) {
	if _, err := parseNumber("0xZZ"); err == nil {
		t.Fatal("expected an error for an invalid hex digit")
	}
}

func TestAssembleImmediateAndAbsolute(t *testing.T) {
	img := assemble(t, "lda #5\nsta 0x1234\n")
	if len(img) != 5 {
		t.Fatalf("len(img) = %d, want 5", len(img))
	}
	if img[1] != 5 {
		t.Errorf("img[1] = %d, want 5", img[1])
	}
	if img[3] != 0x34 || img[4] != 0x12 {
		t.Errorf("absolute operand = %02X%02X, want 3412", img[4], img[3])
	}
}

func TestAssembleZeroPageNarrowing(t *testing.T) {
	// A one-byte operand to an abs-shaped instruction narrows to zpg,
	// which is one byte shorter than the absolute encoding.
	img := assemble(t, "lda 0x10\n")
	if len(img) != 2 {
		t.Fatalf("len(img) = %d, want 2 (zero-page narrowing)", len(img))
	}
	if img[1] != 0x10 {
		t.Errorf("operand = 0x%02X, want 0x10", img[1])
	}
}

func TestAssembleForwardLabelBackpatch(t *testing.T) {
	img := assemble(t, "jmp there\nnop\nthere:\nnop\n")
	want := []byte{
		opcodeOf(t, cpu.Jmp, cpu.ModeAbs), 0x04, 0x80, // jmp 0x8004
		opcodeOf(t, cpu.Nop, cpu.ModeNam),
		opcodeOf(t, cpu.Nop, cpu.ModeNam),
	}
	if diff := deep.Equal(img, want); diff != nil {
		t.Fatalf("assembled image differs:\n%v\nfull dump:\n%s", diff, spew.Sdump(img))
	}
}

func TestAssembleBackwardLabel(t *testing.T) {
	img := assemble(t, "here:\nnop\njmp here\n")
	want := []byte{
		opcodeOf(t, cpu.Nop, cpu.ModeNam),
		opcodeOf(t, cpu.Jmp, cpu.ModeAbs), 0x00, 0x80,
	}
	if diff := deep.Equal(img, want); diff != nil {
		t.Fatalf("assembled image differs:\n%v", diff)
	}
}

func TestRelativeBranchTooFarIsRangeError(t *testing.T) {
	var b strings.Builder
	b.WriteString("jtz ~yonder\n")
	for i := 0; i < 200; i++ {
		b.WriteString("nop\n")
	}
	b.WriteString("yonder:\n")
	_, err := Assemble("t.xla", strings.NewReader(b.String()), noInclude, noIncbin)
	if err == nil {
		t.Fatal("expected a RangeError for an out-of-range relative branch")
	}
	if _, ok := err.(RangeError); !ok {
		t.Fatalf("got %T (%v), want RangeError", err, err)
	}
}

func TestUndefinedSymbolIsReported(t *testing.T) {
	_, err := Assemble("t.xla", strings.NewReader("jmp nowhere\n"), noInclude, noIncbin)
	if _, ok := err.(UndefinedSymbolError); !ok {
		t.Fatalf("got %T (%v), want UndefinedSymbolError", err, err)
	}
}

func TestLetDefinesAndRb(t *testing.T) {
	img := assemble(t, "let n 3\nrb n\nnop\n")
	if len(img) != 4 {
		t.Fatalf("len(img) = %d, want 4", len(img))
	}
	if img[0] != 0 || img[1] != 0 || img[2] != 0 {
		t.Fatalf("rb region = %v, want three zero bytes", img[:3])
	}
	if img[3] != opcodeOf(t, cpu.Nop, cpu.ModeNam) {
		t.Fatalf("img[3] = 0x%02X, want nop opcode", img[3])
	}
}

func TestLabelRedefinitionErrors(t *testing.T) {
	_, err := Assemble("t.xla", strings.NewReader("here:\nnop\nhere:\nnop\n"), noInclude, noIncbin)
	if _, ok := err.(SyntaxError); !ok {
		t.Fatalf("got %T (%v), want SyntaxError for label redefinition", err, err)
	}
}

func TestDbEmitsStringAndBytesAndForwardWord(t *testing.T) {
	img := assemble(t, "db 'hi', 1, there\nthere:\n")
	want := []byte{'h', 'i', 1, 0x05, 0x80}
	if diff := deep.Equal(img, want); diff != nil {
		t.Fatalf("db output differs:\n%v", diff)
	}
}

func TestDwEmitsWords(t *testing.T) {
	img := assemble(t, "dw 0x1234, 0x5678\n")
	want := []byte{0x34, 0x12, 0x78, 0x56}
	if diff := deep.Equal(img, want); diff != nil {
		t.Fatalf("dw output differs:\n%v", diff)
	}
}

func TestIncludeSplicesCleanly(t *testing.T) {
	openText := func(name string) (io.Reader, error) {
		if name != "helper.xi" {
			t.Fatalf("unexpected include name %q", name)
		}
		return strings.NewReader("nop\n"), nil
	}
	img, err := Assemble("t.xla", strings.NewReader("nop\ninclude 'helper.xi'\nnop\n"), openText, noIncbin)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []byte{
		opcodeOf(t, cpu.Nop, cpu.ModeNam),
		opcodeOf(t, cpu.Nop, cpu.ModeNam),
		opcodeOf(t, cpu.Nop, cpu.ModeNam),
	}
	if diff := deep.Equal(img, want); diff != nil {
		t.Fatalf("included-program image differs:\n%v", diff)
	}
}

func TestIncbinEmitsRawBytes(t *testing.T) {
	openBinary := func(name string) ([]byte, error) {
		if name != "blob.bin" {
			t.Fatalf("unexpected incbin name %q", name)
		}
		return []byte{0xDE, 0xAD, 0xBE, 0xEF}, nil
	}
	img, err := Assemble("t.xla", strings.NewReader("incbin 'blob.bin'\n"), noInclude, openBinary)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if diff := deep.Equal(img, want); diff != nil {
		t.Fatalf("incbin output differs:\n%v", diff)
	}
}

func TestNoPrecedenceExpressionEvaluatesLeftToRight(t *testing.T) {
	// 2 + 3 * 4 is (2+3)*4 = 20, not 14: there is no operator
	// precedence in this grammar, by design.
	img := assemble(t, "let n 2 + 3 * 4\nrb n\n")
	if len(img) != 20 {
		t.Fatalf("len(img) = %d, want 20 (left-to-right, no precedence)", len(img))
	}
}

// opcodeOf looks up the opcode byte for an exact (mnemonic, mode) pair.
func opcodeOf(t *testing.T, mnem cpu.Mnemonic, mode cpu.Mode) byte {
	t.Helper()
	op, ok := comboToOpcode[cpu.Combo{Mnemonic: mnem, Mode: mode}]
	if !ok {
		t.Fatalf("no opcode found for %v/%v", mnem, mode)
	}
	return op
}
