package cpu

// The instruction bodies. Each runs after its paired addressing-mode
// decoder has set Addr (or, for nam/imm, left the operand's location
// ready for the instruction to use directly); each charges its own
// fixed cycle cost on top of whatever its addressing mode charged.

func inInv(c *Chip) {
	if !c.Invalid {
		c.Invalid = true
		c.OnError(InvalidOpcodeError{Opcode: c.lastOpcode, PC: c.PC - 1})
	}
}

func inNop(c *Chip) {}

// inBrk arms a break interrupt with the B flag set on dispatch. It
// charges no cycles itself; the interrupt dispatch path in Cycle does.
func inBrk(c *Chip) {
	c.BreakPending = true
	c.NextBFlag = true
}

func inRti(c *Chip) {
	c.F = c.pull()
	c.PC = c.pullWord()
	c.ICycles += 3
}

func inRet(c *Chip) {
	c.PC = c.pullWord()
	c.ICycles += 2
}

func inFor(c *Chip) {
	c.F |= c.Load(c.Addr)
	c.ICycles++
}

func inFnd(c *Chip) {
	c.F &= c.Load(c.Addr)
	c.ICycles++
}

func inClc(c *Chip) {
	c.SetFlag(FlagC, false)
}

func inApp(c *Chip) { c.A, _ = aluIncApply(c, c.A) }
func inAmm(c *Chip) { c.A, _ = aluDecApply(c, c.A) }
func inSpp(c *Chip) { c.S, _ = aluIncApply(c, c.S) }
func inSmm(c *Chip) { c.S, _ = aluDecApply(c, c.S) }
func inXpp(c *Chip) { c.X, _ = aluIncApply(c, c.X) }
func inXmm(c *Chip) { c.X, _ = aluDecApply(c, c.X) }
func inYpp(c *Chip) { c.Y, _ = aluIncApply(c, c.Y) }
func inYmm(c *Chip) { c.Y, _ = aluDecApply(c, c.Y) }

func aluIncApply(c *Chip, v uint8) (uint8, flagDelta) {
	t, d := aluInc(v)
	d.apply(c)
	return t, d
}

func aluDecApply(c *Chip, v uint8) (uint8, flagDelta) {
	t, d := aluDec(v)
	d.apply(c)
	return t, d
}

func inInc(c *Chip) {
	data := c.Load(c.Addr)
	data, d := aluInc(data)
	d.apply(c)
	c.Store(c.Addr, data)
	c.ICycles += 2
}

func inDec(c *Chip) {
	data := c.Load(c.Addr)
	data, d := aluDec(data)
	d.apply(c)
	c.Store(c.Addr, data)
	c.ICycles += 2
}

func jmpIf(c *Chip, f Flag, want bool) {
	if c.GetFlag(f) == want {
		c.PC = c.Addr
	}
}

func inJfb(c *Chip) { jmpIf(c, FlagB, false) }
func inJfc(c *Chip) { jmpIf(c, FlagC, false) }
func inJfd(c *Chip) { jmpIf(c, FlagD, false) }
func inJfn(c *Chip) { jmpIf(c, FlagN, false) }
func inJfr(c *Chip) { jmpIf(c, FlagR, false) }
func inJfu(c *Chip) { jmpIf(c, FlagU, false) }
func inJfv(c *Chip) { jmpIf(c, FlagV, false) }
func inJfz(c *Chip) { jmpIf(c, FlagZ, false) }

func inJtb(c *Chip) { jmpIf(c, FlagB, true) }
func inJtc(c *Chip) { jmpIf(c, FlagC, true) }
func inJtd(c *Chip) { jmpIf(c, FlagD, true) }
func inJtn(c *Chip) { jmpIf(c, FlagN, true) }
func inJtr(c *Chip) { jmpIf(c, FlagR, true) }
func inJtu(c *Chip) { jmpIf(c, FlagU, true) }
func inJtv(c *Chip) { jmpIf(c, FlagV, true) }
func inJtz(c *Chip) { jmpIf(c, FlagZ, true) }

func inJmp(c *Chip) {
	c.PC = c.Addr
}

func inCal(c *Chip) {
	c.pushWord(c.PC)
	c.PC = c.Addr
	c.ICycles += 2
}

func inLda(c *Chip) {
	c.A = c.Load(c.Addr)
	zn(c.A).apply(c)
	c.ICycles++
}

func inLdx(c *Chip) {
	c.X = c.Load(c.Addr)
	zn(c.X).apply(c)
	c.ICycles++
}

func inLdy(c *Chip) {
	c.Y = c.Load(c.Addr)
	zn(c.Y).apply(c)
	c.ICycles++
}

func inSta(c *Chip) {
	c.Store(c.Addr, c.A)
	c.ICycles++
}

func inStx(c *Chip) {
	c.Store(c.Addr, c.X)
	c.ICycles++
}

func inSty(c *Chip) {
	c.Store(c.Addr, c.Y)
	c.ICycles++
}

func inPla(c *Chip) {
	c.A = c.pull()
	zn(c.A).apply(c)
	c.ICycles++
}

func inPlf(c *Chip) {
	c.F = c.pull()
	c.ICycles++
}

func inPlx(c *Chip) {
	c.X = c.pull()
	zn(c.X).apply(c)
	c.ICycles++
}

func inPly(c *Chip) {
	c.Y = c.pull()
	zn(c.Y).apply(c)
	c.ICycles++
}

func inPha(c *Chip) {
	c.push(c.A)
	c.ICycles++
}

func inPhf(c *Chip) {
	c.push(c.F)
	c.ICycles++
}

func inPhx(c *Chip) {
	c.push(c.X)
	c.ICycles++
}

func inPhy(c *Chip) {
	c.push(c.Y)
	c.ICycles++
}

func inTaf(c *Chip) { c.F = c.A }
func inTas(c *Chip) { c.S = c.A }
func inTax(c *Chip) { c.X = c.A }
func inTay(c *Chip) { c.Y = c.A }
func inTfa(c *Chip) { c.A = c.F }
func inTsa(c *Chip) { c.A = c.S }
func inTxa(c *Chip) { c.A = c.X }
func inTya(c *Chip) { c.A = c.Y }

func inCmp(c *Chip) {
	data := c.Load(c.Addr)
	_, d := aluSub(c.A, data, false)
	d.apply(c)
	c.ICycles++
}

func inCpx(c *Chip) {
	data := c.Load(c.Addr)
	_, d := aluSub(c.X, data, false)
	d.apply(c)
	c.ICycles++
}

func inCpy(c *Chip) {
	data := c.Load(c.Addr)
	_, d := aluSub(c.Y, data, false)
	d.apply(c)
	c.ICycles++
}

func inSbc(c *Chip) {
	carry := c.GetFlag(FlagC)
	data := c.Load(c.Addr)
	t, d := aluSub(c.A, data, carry)
	d.apply(c)
	c.A = t
	c.ICycles++
}

func inSub(c *Chip) {
	data := c.Load(c.Addr)
	t, d := aluSub(c.A, data, false)
	d.apply(c)
	c.A = t
	c.ICycles++
}

func inAdc(c *Chip) {
	carry := c.GetFlag(FlagC)
	data := c.Load(c.Addr)
	t, d := aluAdd(c.A, data, carry)
	d.apply(c)
	c.A = t
	c.ICycles++
}

func inAdd(c *Chip) {
	data := c.Load(c.Addr)
	t, d := aluAdd(c.A, data, false)
	d.apply(c)
	c.A = t
	c.ICycles++
}

func inBor(c *Chip) {
	data := c.Load(c.Addr)
	t, d := aluBor(c.A, data)
	d.apply(c)
	c.A = t
	c.ICycles++
}

func inXor(c *Chip) {
	data := c.Load(c.Addr)
	t, d := aluXor(c.A, data)
	d.apply(c)
	c.A = t
	c.ICycles++
}

func inAnd(c *Chip) {
	data := c.Load(c.Addr)
	t, d := aluAnd(c.A, data)
	d.apply(c)
	c.A = t
	c.ICycles++
}

// inBit ANDs A with memory for flags only; A itself is unchanged.
func inBit(c *Chip) {
	_, d := aluAnd(c.A, c.Load(c.Addr))
	d.apply(c)
	c.ICycles++
}

func inNot(c *Chip) {
	data := c.Load(c.Addr)
	t, d := aluNot(data)
	d.apply(c)
	c.Store(c.Addr, t)
	c.ICycles += 2
}

func inNta(c *Chip) {
	t, d := aluNot(c.A)
	d.apply(c)
	c.A = t
}

func inShl(c *Chip) {
	carry := c.GetFlag(FlagC)
	data := c.Load(c.Addr)
	t, d := aluShl(data, carry)
	d.apply(c)
	c.Store(c.Addr, t)
	c.ICycles += 2
}

func inShr(c *Chip) {
	carry := c.GetFlag(FlagC)
	data := c.Load(c.Addr)
	t, d := aluShr(data, carry)
	d.apply(c)
	c.Store(c.Addr, t)
	c.ICycles += 2
}

func inSla(c *Chip) {
	t, d := aluShl(c.A, c.GetFlag(FlagC))
	d.apply(c)
	c.A = t
}

func inSra(c *Chip) {
	t, d := aluShr(c.A, c.GetFlag(FlagC))
	d.apply(c)
	c.A = t
}

func inZra(c *Chip) { c.A = 0 }
func inZrx(c *Chip) { c.X = 0 }
func inZry(c *Chip) { c.Y = 0 }

var instructions = [mnemonicCount]func(*Chip){
	Inv: inInv, Nop: inNop, Brk: inBrk, Rti: inRti, Ret: inRet,
	For: inFor, Fnd: inFnd, Clc: inClc,
	App: inApp, Amm: inAmm, Spp: inSpp, Smm: inSmm,
	Xpp: inXpp, Xmm: inXmm, Ypp: inYpp, Ymm: inYmm,
	Inc: inInc, Dec: inDec,
	Jfb: inJfb, Jfc: inJfc, Jfd: inJfd, Jfn: inJfn, Jfr: inJfr,
	Jfu: inJfu, Jfv: inJfv, Jfz: inJfz,
	Jtb: inJtb, Jtc: inJtc, Jtd: inJtd, Jtn: inJtn, Jtr: inJtr,
	Jtu: inJtu, Jtv: inJtv, Jtz: inJtz,
	Jmp: inJmp, Cal: inCal,
	Lda: inLda, Ldx: inLdx, Ldy: inLdy,
	Sta: inSta, Stx: inStx, Sty: inSty,
	Pla: inPla, Plf: inPlf, Plx: inPlx, Ply: inPly,
	Pha: inPha, Phf: inPhf, Phx: inPhx, Phy: inPhy,
	Taf: inTaf, Tas: inTas, Tax: inTax, Tay: inTay,
	Tfa: inTfa, Tsa: inTsa, Txa: inTxa, Tya: inTya,
	Cmp: inCmp, Cpx: inCpx, Cpy: inCpy,
	Sbc: inSbc, Sub: inSub, Adc: inAdc, Add: inAdd,
	Bor: inBor, Xor: inXor, And: inAnd, Bit: inBit, Not: inNot, Nta: inNta,
	Shl: inShl, Shr: inShr, Sla: inSla, Sra: inSra,
	Zra: inZra, Zrx: inZrx, Zry: inZry,
}
