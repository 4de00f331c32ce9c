package disasm

import (
	"strings"
	"testing"

	"github.com/xl-systems/xl/cpu"
)

func findOpcode(t *testing.T, mnem cpu.Mnemonic, mode cpu.Mode) byte {
	t.Helper()
	for i, c := range cpu.Combos {
		if c.Mnemonic == mnem && c.Mode == mode {
			return byte(i)
		}
	}
	t.Fatalf("no opcode for %v/%v", mnem, mode)
	return 0
}

func newBlankImage() []byte {
	img := make([]byte, ImageSize)
	return img
}

func TestListingRejectsWrongSize(t *testing.T) {
	if _, err := Listing(make([]byte, 10)); err == nil {
		t.Fatal("expected TruncatedImageError")
	} else if _, ok := err.(TruncatedImageError); !ok {
		t.Fatalf("got %T, want TruncatedImageError", err)
	}
}

func TestListingCompressesZeroRuns(t *testing.T) {
	img := newBlankImage()
	out, err := Listing(img)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "rb 32760") {
		t.Fatalf("expected a single compressed rb line for the all-zero body, got:\n%s", out)
	}
}

func TestListingFooterDumpsAllFourVectors(t *testing.T) {
	img := newBlankImage()
	img[ImageSize-8] = 0x34
	img[ImageSize-7] = 0x12
	img[ImageSize-6] = 0x78
	img[ImageSize-5] = 0x56
	img[ImageSize-4] = 0xBC
	img[ImageSize-3] = 0x9A
	img[ImageSize-2] = 0xF0
	img[ImageSize-1] = 0xDE
	out, err := Listing(img)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"dw 0x1234; reserved",
		"dw 0x5678; break",
		"dw 0x9ABC; react",
		"dw 0xDEF0; reset",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing footer line %q in:\n%s", want, out)
		}
	}
}

func TestStepImmediateDecimal(t *testing.T) {
	op := findOpcode(t, cpu.Lda, cpu.ModeImm)
	text, n := Step(0x8000, []byte{op, 42})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if text != "lda #42" {
		t.Fatalf("text = %q, want %q", text, "lda #42")
	}
}

func TestStepRelativeShowsTarget(t *testing.T) {
	op := findOpcode(t, cpu.Jtc, cpu.ModeRel)
	// 0xFE is -2: the target is relative to the opcode byte, so it
	// lands two bytes before it.
	text, n := Step(0x8010, []byte{op, 0xFE})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	want := "jtc ~-2 -> 0x800E"
	if text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
}

func TestStepAbsoluteShowsWord(t *testing.T) {
	op := findOpcode(t, cpu.Lda, cpu.ModeAbs)
	text, n := Step(0x8000, []byte{op, 0x34, 0x12})
	if n != 3 {
		t.Fatalf("n = %d, want 3", n)
	}
	if text != "lda 0x1234" {
		t.Fatalf("text = %q, want %q", text, "lda 0x1234")
	}
}

func TestStepImpliedHasNoOperand(t *testing.T) {
	op := findOpcode(t, cpu.Nop, cpu.ModeNam)
	text, n := Step(0x8000, []byte{op})
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if text != "nop" {
		t.Fatalf("text = %q, want %q", text, "nop")
	}
}

func TestListingEmitsInstructionAfterZeroRun(t *testing.T) {
	img := newBlankImage()
	op := findOpcode(t, cpu.Nop, cpu.ModeNam)
	img[5] = op
	out, err := Listing(img)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "rb 5") {
		t.Fatalf("expected leading rb 5, got:\n%s", out)
	}
	if !strings.Contains(out, "nop") {
		t.Fatalf("expected nop instruction line, got:\n%s", out)
	}
}
