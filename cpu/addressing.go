package cpu

// Mode identifies one of the 13 addressing modes, mostly useful for the
// disassembler and for NOP's dummy-read policy.
type Mode uint8

const (
	ModeIMP Mode = iota
	ModeACC
	ModeIMM
	ModeZP0
	ModeZPX
	ModeZPY
	ModeREL
	ModeABS
	ModeABX
	ModeABY
	ModeIND
	ModeIZX
	ModeIZY
)

// addrFn sets the CPU's effective address (c.addr) or, for the
// accumulator mode, marks the operand as c.A, advancing PC as the mode
// requires. It returns a small extra-cycle-eligibility mask that the
// caller ANDs against the instruction handler's own mask.
//
// Grounded semantically on arl-nestor's cpu/cpugen/gen_nes6502.go
// addrModes generators; expressed here as a flat function table rather
// than code-generated inline reads, per the core's table-driven design.
type addrFn func(c *CPU) uint8

func amIMP(c *CPU) uint8 { return 0 }

func amACC(c *CPU) uint8 {
	c.acc = true
	return 0
}

func amIMM(c *CPU) uint8 {
	c.addr = c.PC
	c.PC++
	return 0
}

func amZP0(c *CPU) uint8 {
	c.addr = uint16(c.read(c.PC))
	c.PC++
	return 0
}

func amZPX(c *CPU) uint8 {
	c.addr = uint16(c.read(c.PC) + c.X)
	c.PC++
	return 0
}

func amZPY(c *CPU) uint8 {
	c.addr = uint16(c.read(c.PC) + c.Y)
	c.PC++
	return 0
}

// amREL returns mask 0x03 so branch instruction handlers can AND in 0, 1
// or 2 extra cycles for not-taken, taken-same-page, taken-crossing-page.
func amREL(c *CPU) uint8 {
	off := int8(c.read(c.PC))
	c.PC++
	c.addr = uint16(int32(c.PC) + int32(off))
	return 0x03
}

func amABS(c *CPU) uint8 {
	lo := c.read(c.PC)
	c.PC++
	hi := c.read(c.PC)
	c.PC++
	c.addr = uint16(hi)<<8 | uint16(lo)
	return 0
}

func amABX(c *CPU) uint8 {
	lo := c.read(c.PC)
	c.PC++
	hi := c.read(c.PC)
	c.PC++
	base := uint16(hi)<<8 | uint16(lo)
	c.addr = base + uint16(c.X)
	if c.addr&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

func amABY(c *CPU) uint8 {
	lo := c.read(c.PC)
	c.PC++
	hi := c.read(c.PC)
	c.PC++
	base := uint16(hi)<<8 | uint16(lo)
	c.addr = base + uint16(c.Y)
	if c.addr&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// amIND implements JMP's indirect addressing, including the documented
// page-boundary hardware bug: when the pointer's low byte is 0xFF, the
// high byte of the target is fetched from the start of the same page
// rather than the next page.
func amIND(c *CPU) uint8 {
	lo := c.read(c.PC)
	c.PC++
	hi := c.read(c.PC)
	c.PC++
	ptr := uint16(hi)<<8 | uint16(lo)

	effLo := c.read(ptr)
	var effHi uint8
	if lo == 0xFF {
		effHi = c.read(ptr & 0xFF00)
	} else {
		effHi = c.read(ptr + 1)
	}
	c.addr = uint16(effHi)<<8 | uint16(effLo)
	return 0
}

func amIZX(c *CPU) uint8 {
	zp := c.read(c.PC)
	c.PC++
	ptr := zp + c.X
	lo := c.read(uint16(ptr))
	hi := c.read(uint16(ptr + 1))
	c.addr = uint16(hi)<<8 | uint16(lo)
	return 0
}

func amIZY(c *CPU) uint8 {
	zp := c.read(c.PC)
	c.PC++
	lo := c.read(uint16(zp))
	hi := c.read(uint16(zp + 1))
	base := uint16(hi)<<8 | uint16(lo)
	c.addr = base + uint16(c.Y)
	if c.addr&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// fetch returns the operand the current instruction should act on: the
// accumulator if the addressing mode resolved to ACC, else the byte at
// the effective address.
func (c *CPU) fetch() uint8 {
	if c.acc {
		return c.A
	}
	return c.read(c.addr)
}

// store writes v back to wherever fetch() read it from.
func (c *CPU) store(v uint8) {
	if c.acc {
		c.A = v
	} else {
		c.write(c.addr, v)
	}
}
