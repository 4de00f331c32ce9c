package cpu

// Mode identifies one of the 12 addressing modes. The iota order matches
// the original XL_ADDRMODES_XM ordering exactly; ModeSizes and
// ModeSignatures are indexed by it.
type Mode uint8

const (
	ModeNam Mode = iota
	ModeImm
	ModeAbs
	ModeAbx
	ModeAby
	ModeRel
	ModeZpg
	ModeZpx
	ModeZpy
	ModeVec
	ModeZvx
	ModeZyv
	modeCount
)

// ModeSizes is the total instruction length in bytes (opcode included)
// for each addressing mode.
var ModeSizes = [modeCount]int{
	ModeNam: 1,
	ModeImm: 2,
	ModeAbs: 3,
	ModeAbx: 3,
	ModeAby: 3,
	ModeRel: 2,
	ModeZpg: 2,
	ModeZpx: 2,
	ModeZpy: 2,
	ModeVec: 3,
	ModeZvx: 2,
	ModeZyv: 2,
}

// ModeSignatures is the assembler-syntax decoration xlas prints/expects
// after the operand for each addressing mode.
var ModeSignatures = [modeCount]string{
	ModeNam: "",
	ModeImm: " #",
	ModeAbs: " ",
	ModeAbx: " x ",
	ModeAby: " y ",
	ModeRel: " ~",
	ModeZpg: " ",
	ModeZpx: " x ",
	ModeZpy: " y ",
	ModeVec: " *",
	ModeZvx: " x *",
	ModeZyv: " y *",
}

// ModeNames are the lowercase mode keywords, for diagnostics.
var ModeNames = [modeCount]string{
	ModeNam: "nam",
	ModeImm: "imm",
	ModeAbs: "abs",
	ModeAbx: "abx",
	ModeAby: "aby",
	ModeRel: "rel",
	ModeZpg: "zpg",
	ModeZpx: "zpx",
	ModeZpy: "zpy",
	ModeVec: "vec",
	ModeZvx: "zvx",
	ModeZyv: "zyv",
}

// Mnemonic identifies one of the instruction keywords. The iota order
// matches the instruction-keyword subset of the original XL_KEYWORDS_XM
// (the assembler-only keywords let/rb/db/dw/include/incbin/x/y are not
// instructions and live in package asm's own token set instead).
type Mnemonic uint8

const (
	Inv Mnemonic = iota
	Nop
	Brk
	Rti
	Ret
	For
	Fnd
	Clc
	App
	Amm
	Spp
	Smm
	Xpp
	Xmm
	Ypp
	Ymm
	Inc
	Dec
	Jfb
	Jfc
	Jfd
	Jfn
	Jfr
	Jfu
	Jfv
	Jfz
	Jtb
	Jtc
	Jtd
	Jtn
	Jtr
	Jtu
	Jtv
	Jtz
	Jmp
	Cal
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty
	Pla
	Plf
	Plx
	Ply
	Pha
	Phf
	Phx
	Phy
	Taf
	Tas
	Tax
	Tay
	Tfa
	Tsa
	Txa
	Tya
	Cmp
	Cpx
	Cpy
	Sbc
	Sub
	Adc
	Add
	Bor
	Xor
	And
	Bit
	Not
	Nta
	Shl
	Shr
	Sla
	Sra
	Zra
	Zrx
	Zry
	mnemonicCount
)

// MnemonicNames are the lowercase instruction keywords, for diagnostics
// and for the assembler/disassembler to share with this package.
var MnemonicNames = [mnemonicCount]string{
	Inv: "inv", Nop: "nop", Brk: "brk", Rti: "rti", Ret: "ret",
	For: "for", Fnd: "fnd", Clc: "clc", App: "app", Amm: "amm",
	Spp: "spp", Smm: "smm", Xpp: "xpp", Xmm: "xmm", Ypp: "ypp",
	Ymm: "ymm", Inc: "inc", Dec: "dec",
	Jfb: "jfb", Jfc: "jfc", Jfd: "jfd", Jfn: "jfn", Jfr: "jfr",
	Jfu: "jfu", Jfv: "jfv", Jfz: "jfz",
	Jtb: "jtb", Jtc: "jtc", Jtd: "jtd", Jtn: "jtn", Jtr: "jtr",
	Jtu: "jtu", Jtv: "jtv", Jtz: "jtz",
	Jmp: "jmp", Cal: "cal",
	Lda: "lda", Ldx: "ldx", Ldy: "ldy",
	Sta: "sta", Stx: "stx", Sty: "sty",
	Pla: "pla", Plf: "plf", Plx: "plx", Ply: "ply",
	Pha: "pha", Phf: "phf", Phx: "phx", Phy: "phy",
	Taf: "taf", Tas: "tas", Tax: "tax", Tay: "tay",
	Tfa: "tfa", Tsa: "tsa", Txa: "txa", Tya: "tya",
	Cmp: "cmp", Cpx: "cpx", Cpy: "cpy",
	Sbc: "sbc", Sub: "sub", Adc: "adc", Add: "add",
	Bor: "bor", Xor: "xor", And: "and", Bit: "bit", Not: "not", Nta: "nta",
	Shl: "shl", Shr: "shr", Sla: "sla", Sra: "sra",
	Zra: "zra", Zrx: "zrx", Zry: "zry",
}

// Combo is one opcode-table entry: an instruction keyword paired with
// the addressing mode its operand (if any) is decoded with.
type Combo struct {
	Mnemonic Mnemonic
	Mode     Mode
}

// Combos is the full 256-entry opcode table; the slice index is the
// instruction byte. Shared verbatim by package asm (to encode) and
// package disasm (to decode) so there is a single source of truth.
var Combos = [256]Combo{
	{Inv, ModeNam}, {Brk, ModeNam}, {Rti, ModeNam}, {Ret, ModeNam},
	{For, ModeImm}, {Fnd, ModeImm}, {Clc, ModeNam}, {Nop, ModeNam},
	{App, ModeNam}, {Amm, ModeNam}, {Spp, ModeNam}, {Smm, ModeNam},
	{Xpp, ModeNam}, {Xmm, ModeNam}, {Ypp, ModeNam}, {Ymm, ModeNam},
	{Jfb, ModeRel}, {Jfc, ModeRel}, {Jfd, ModeRel}, {Jfn, ModeRel},
	{Jfr, ModeRel}, {Jfu, ModeRel}, {Jfv, ModeRel}, {Jfz, ModeRel},
	{Jtb, ModeRel}, {Jtc, ModeRel}, {Jtd, ModeRel}, {Jtn, ModeRel},
	{Jtr, ModeRel}, {Jtu, ModeRel}, {Jtv, ModeRel}, {Jtz, ModeRel},
	{Pha, ModeNam}, {Phf, ModeNam}, {Phx, ModeNam}, {Phy, ModeNam},
	{Pla, ModeNam}, {Plf, ModeNam}, {Plx, ModeNam}, {Ply, ModeNam},
	{Taf, ModeNam}, {Tas, ModeNam}, {Tax, ModeNam}, {Tay, ModeNam},
	{Tfa, ModeNam}, {Tsa, ModeNam}, {Txa, ModeNam}, {Tya, ModeNam},
	{Lda, ModeImm}, {Lda, ModeAbs}, {Lda, ModeZpg}, {Lda, ModeVec},
	{Lda, ModeAbx}, {Lda, ModeAby}, {Lda, ModeZpx}, {Lda, ModeZpy},
	{Zra, ModeNam}, {Sta, ModeAbs}, {Sta, ModeZpg}, {Sta, ModeVec},
	{Sta, ModeAbx}, {Sta, ModeAby}, {Sta, ModeZpx}, {Sta, ModeZpy},
	{Zrx, ModeNam}, {Ldx, ModeImm}, {Ldx, ModeAbs}, {Ldx, ModeAby},
	{Ldx, ModeZpg}, {Ldx, ModeZpy}, {Ldx, ModeVec}, {Ldx, ModeZyv},
	{Zry, ModeNam}, {Ldy, ModeImm}, {Ldy, ModeAbs}, {Ldy, ModeAbx},
	{Ldy, ModeZpg}, {Ldy, ModeZpx}, {Ldy, ModeVec}, {Ldy, ModeZvx},
	{Cmp, ModeImm}, {Cmp, ModeAbs}, {Cmp, ModeZpg}, {Cmp, ModeVec},
	{Cmp, ModeAbx}, {Cmp, ModeAby}, {Cmp, ModeZpx}, {Cmp, ModeZpy},
	{Jmp, ModeRel}, {Jmp, ModeAbs}, {Jmp, ModeZpg}, {Jmp, ModeVec},
	{Jmp, ModeAbx}, {Jmp, ModeAby}, {Jmp, ModeZpx}, {Jmp, ModeZpy},
	{Stx, ModeAbs}, {Stx, ModeAby}, {Stx, ModeZpg}, {Stx, ModeZpy},
	{Stx, ModeVec}, {Stx, ModeZyv}, {Lda, ModeZvx}, {Lda, ModeZyv},
	{Sty, ModeAbs}, {Sty, ModeAbx}, {Sty, ModeZpg}, {Sty, ModeZpx},
	{Sty, ModeVec}, {Sty, ModeZvx}, {Sta, ModeZvx}, {Sta, ModeZyv},
	{Nta, ModeNam}, {Cal, ModeAbs}, {Cal, ModeZpg}, {Cal, ModeVec},
	{Cal, ModeAbx}, {Cal, ModeAby}, {Cal, ModeZpx}, {Cal, ModeZpy},
	{Cal, ModeZvx}, {Cal, ModeZyv}, {Jmp, ModeZvx}, {Jmp, ModeZyv},
	{Cmp, ModeZvx}, {Cmp, ModeZyv}, {Sla, ModeNam}, {Sra, ModeNam},
	{Inc, ModeAbs}, {Inc, ModeAbx}, {Inc, ModeAby}, {Inc, ModeZpg},
	{Inc, ModeZpx}, {Inc, ModeZpy}, {Inc, ModeVec}, {Inc, ModeZvx},
	{Inc, ModeZyv}, {Cpx, ModeImm}, {Cpx, ModeAbs}, {Cpx, ModeAby},
	{Cpx, ModeZpg}, {Cpx, ModeZpy}, {Cpx, ModeVec}, {Cpx, ModeZyv},
	{Dec, ModeAbs}, {Dec, ModeAbx}, {Dec, ModeAby}, {Dec, ModeZpg},
	{Dec, ModeZpx}, {Dec, ModeZpy}, {Dec, ModeVec}, {Dec, ModeZvx},
	{Dec, ModeZyv}, {Cpy, ModeImm}, {Cpy, ModeAbs}, {Cpy, ModeAbx},
	{Cpy, ModeZpg}, {Cpy, ModeZpx}, {Cpy, ModeVec}, {Cpy, ModeZvx},
	{Bit, ModeImm}, {Bit, ModeAbs}, {Bit, ModeZpg}, {Bit, ModeVec},
	{Bit, ModeAbx}, {Bit, ModeAby}, {Bit, ModeZpx}, {Bit, ModeZpy},
	{And, ModeImm}, {And, ModeAbs}, {And, ModeZpg}, {And, ModeVec},
	{And, ModeAbx}, {And, ModeAby}, {And, ModeZpx}, {And, ModeZpy},
	{Bor, ModeImm}, {Bor, ModeAbs}, {Bor, ModeZpg}, {Bor, ModeVec},
	{Bor, ModeAbx}, {Bor, ModeAby}, {Bor, ModeZpx}, {Bor, ModeZpy},
	{Xor, ModeImm}, {Xor, ModeAbs}, {Xor, ModeZpg}, {Xor, ModeVec},
	{Xor, ModeAbx}, {Xor, ModeAby}, {Xor, ModeZpx}, {Xor, ModeZpy},
	{Adc, ModeImm}, {Adc, ModeAbs}, {Adc, ModeZpg}, {Adc, ModeVec},
	{Adc, ModeAbx}, {Adc, ModeAby}, {Adc, ModeZpx}, {Adc, ModeZpy},
	{Sbc, ModeImm}, {Sbc, ModeAbs}, {Sbc, ModeZpg}, {Sbc, ModeVec},
	{Sbc, ModeAbx}, {Sbc, ModeAby}, {Sbc, ModeZpx}, {Sbc, ModeZpy},
	{Add, ModeImm}, {Add, ModeAbs}, {Add, ModeZpg}, {Add, ModeVec},
	{Add, ModeAbx}, {Add, ModeAby}, {Add, ModeZpx}, {Add, ModeZpy},
	{Sub, ModeImm}, {Sub, ModeAbs}, {Sub, ModeZpg}, {Sub, ModeVec},
	{Sub, ModeAbx}, {Sub, ModeAby}, {Sub, ModeZpx}, {Sub, ModeZpy},
	{Bit, ModeZvx}, {Bit, ModeZyv}, {And, ModeZvx}, {And, ModeZyv},
	{Bor, ModeZvx}, {Bor, ModeZyv}, {Xor, ModeZvx}, {Xor, ModeZyv},
	{Adc, ModeZvx}, {Adc, ModeZyv}, {Sbc, ModeZvx}, {Sbc, ModeZyv},
	{Add, ModeZvx}, {Add, ModeZyv}, {Sub, ModeZvx}, {Sub, ModeZyv},
	{Not, ModeZpg}, {Not, ModeZpx}, {Not, ModeAbs}, {Not, ModeAbx},
	{Shl, ModeZpg}, {Shl, ModeZpx}, {Shl, ModeAbs}, {Shl, ModeAbx},
	{Shr, ModeZpg}, {Shr, ModeZpx}, {Shr, ModeAbs}, {Shr, ModeAbx},
	{Inv, ModeNam}, {Inv, ModeNam}, {Inv, ModeNam}, {Inv, ModeNam},
}
