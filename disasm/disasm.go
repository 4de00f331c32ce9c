// Package disasm recovers xlas-syntax text from a raw XL binary image,
// grounded on xldis.c: runs of zero bytes collapse into a single `rb N`
// line, every other instruction prints its address/text/byte columns
// and mnemonic/operand, and the listing always finishes with the four
// interrupt vectors dumped as `dw` lines.
package disasm

import (
	"fmt"
	"strings"

	"github.com/xl-systems/xl/cpu"
)

// ImageSize is the fixed size a binary image must be for Listing and
// Step: the 32 KiB load region, origin-relative.
const ImageSize = 0x8000

// bodySize is the portion of the image that holds code/data; the last
// 8 bytes are the reserved/break/react/reset vector words.
const bodySize = ImageSize - 8

// TruncatedImageError reports that an image handed to Listing was not
// exactly ImageSize bytes, mirroring xldis.c's readn < 0x8000 check.
type TruncatedImageError struct {
	Got int
}

func (e TruncatedImageError) Error() string {
	return fmt.Sprintf("image has %d bytes, want %d", e.Got, ImageSize)
}

const origin = 0x8000

var vectorNames = [4]string{"reserved", "break", "react", "reset"}

// Listing disassembles a full ImageSize-byte binary image into the
// xldis text report: a header line, one line per instruction or
// zero-run, and a four-line vector-table footer.
func Listing(img []byte) (string, error) {
	if len(img) != ImageSize {
		return "", TruncatedImageError{Got: len(img)}
	}

	var b strings.Builder
	b.WriteString("_addr__txt__b1_b2_b3__xlas_________________\n")

	for i := 0; i < bodySize; {
		if img[i] == 0 {
			start := i
			for i < bodySize && img[i] == 0 {
				i++
			}
			fmt.Fprintf(&b, " %04X                 rb %d\n", origin+start, i-start)
			continue
		}
		text, n := Step(uint16(origin+i), img[i:])
		nomem := i+n > bodySize
		limit := n
		if nomem {
			limit = bodySize - i
		}
		writeInstructionLine(&b, origin+i, img[i:i+limit], n, nomem, text)
		i += n
	}

	for k := 0; k < 4; k++ {
		off := bodySize + k*2
		val := int(img[off+1])<<8 | int(img[off])
		fmt.Fprintf(&b, " %04X                 dw 0x%04X; %s\n", origin+off, val, vectorNames[k])
	}

	return b.String(), nil
}

func writeInstructionLine(b *strings.Builder, addr int, raw []byte, n int, nomem bool, text string) {
	fmt.Fprintf(b, " %04X  ", addr)
	for _, v := range raw {
		if v >= 0x20 && v < 0x7F {
			b.WriteByte(v)
		} else {
			b.WriteByte('.')
		}
	}
	switch n {
	case 2:
		b.WriteString(" ")
	case 1:
		b.WriteString("  ")
	}
	b.WriteString(" ")
	for _, v := range raw {
		fmt.Fprintf(b, " %02X", v)
	}
	switch n {
	case 2:
		b.WriteString("   ")
	case 1:
		b.WriteString("      ")
	}
	if nomem {
		b.WriteString("\n")
		return
	}
	fmt.Fprintf(b, "  %s\n", text)
}

// Step decodes the single instruction at the front of buf (addr is its
// own image address, used for relative-branch target computation) and
// returns its xlas-syntax mnemonic/operand text plus its byte length.
// buf must hold at least the opcode byte; operand bytes that the
// addressing mode needs past the end of buf read as zero bytes, same
// as the reference emulator's disassemble.Step reading one byte past
// the current PC unconditionally.
func Step(addr uint16, buf []byte) (string, int) {
	opcode := buf[0]
	combo := cpu.Combos[opcode]
	n := cpu.ModeSizes[combo.Mode]

	mnem := cpu.MnemonicNames[combo.Mnemonic]
	sig := cpu.ModeSignatures[combo.Mode]

	var operand string
	switch n {
	case 2:
		val := int(at(buf, 1))
		switch combo.Mode {
		case cpu.ModeImm:
			operand = fmt.Sprintf("%d", val)
		case cpu.ModeRel:
			if val > 127 {
				val |= ^0xFF
			}
			target := int(addr) + val
			operand = fmt.Sprintf("%d -> 0x%04X", val, uint16(target))
		default:
			operand = fmt.Sprintf("0x%02X", val)
		}
	case 3:
		val := int(at(buf, 2))<<8 | int(at(buf, 1))
		operand = fmt.Sprintf("0x%04X", val)
	}

	return mnem + sig + operand, n
}

func at(buf []byte, i int) byte {
	if i < len(buf) {
		return buf[i]
	}
	return 0
}
