package cpu

// The 12 addressing-mode decoders. Each advances PC past its operand
// bytes, leaves the effective address in Addr (unused by nam/imm, which
// leave the fetched byte itself to the instruction via Addr), and
// charges the residual-cycle counter with the mode's fixed cost. None
// of these check for bounds or page-cross penalties; vec's 16-bit adds
// wrap exactly like abs/abx/aby, by design: its pointer fetch is an
// ordinary loadWord, so a pointer at a page's last byte takes its high
// byte from the next page, with no 6502-style page wrap.

func amNam(c *Chip) {}

func amImm(c *Chip) {
	c.Addr = c.PC
	c.PC++
}

func amAbs(c *Chip) {
	c.Addr = c.loadWord(c.PC)
	c.PC += 2
	c.ICycles += 2
}

func amAbx(c *Chip) {
	c.Addr = c.loadWord(c.PC) + uint16(c.X)
	c.PC += 2
	c.ICycles += 2
}

func amAby(c *Chip) {
	c.Addr = c.loadWord(c.PC) + uint16(c.Y)
	c.PC += 2
	c.ICycles += 2
}

func amRel(c *Chip) {
	data := c.Load(c.PC)
	c.PC++
	offset := uint16(data)
	if offset > 127 {
		offset |= 0xFF00
	}
	c.Addr = c.PC + offset - 2
	c.ICycles++
}

func amZpg(c *Chip) {
	c.Addr = uint16(c.Load(c.PC))
	c.PC++
	c.ICycles++
}

func amZpx(c *Chip) {
	c.Addr = uint16(c.Load(c.PC)+c.X) & 0xFF
	c.PC++
	c.ICycles++
}

func amZpy(c *Chip) {
	c.Addr = uint16(c.Load(c.PC)+c.Y) & 0xFF
	c.PC++
	c.ICycles++
}

func amVec(c *Chip) {
	vec := c.loadWord(c.PC)
	c.PC += 2
	c.Addr = c.loadWord(vec)
	c.ICycles += 4
}

func amZvx(c *Chip) {
	vec := uint16(c.Load(c.PC))
	c.PC++
	c.Addr = c.loadWordZeroPage(vec) + uint16(c.X)
	c.ICycles += 3
}

func amZyv(c *Chip) {
	vec := uint16(c.Load(c.PC)+c.Y) & 0xFF
	c.PC++
	c.Addr = c.loadWordZeroPage(vec)
	c.ICycles += 3
}

var addressingModes = [modeCount]func(*Chip){
	ModeNam: amNam,
	ModeImm: amImm,
	ModeAbs: amAbs,
	ModeAbx: amAbx,
	ModeAby: amAby,
	ModeRel: amRel,
	ModeZpg: amZpg,
	ModeZpx: amZpx,
	ModeZpy: amZpy,
	ModeVec: amVec,
	ModeZvx: amZvx,
	ModeZyv: amZyv,
}
