package cpu

// instrFn performs an instruction's side effects against the operand the
// addressing-mode handler already resolved (via c.fetch()/c.store()) and
// returns a small extra-cycle-eligibility mask, ANDed against the
// addressing mode's own mask to decide whether a page-crossing or taken
// branch costs an extra cycle.
//
// Semantics below are grounded on arl-nestor's cpu/cpugen/gen_nes6502.go
// generator methods (ADC, AND, ASL, BIT, BRK, DCP, ...), stripped of its
// per-bus-access tick() calls since this core accounts cycles via the
// table's base-cycles + extra-mask formula instead.
type instrFn func(c *CPU) uint8

// adc is shared by ADC and SBC (SBC inverts its operand before calling
// this), per the core's explicit mandate to reuse one addition routine.
func (c *CPU) adc(operand uint8) {
	carry := uint16(0)
	if c.P.Has(FlagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(operand) + carry
	overflow := (uint16(c.A)^sum)&(uint16(operand)^sum)&0x80 != 0
	c.P.Set(FlagV, overflow)
	c.P.Set(FlagC, sum > 0xFF)
	c.A = uint8(sum)
	c.P.checkNZ(c.A)
}

func iADC(c *CPU) uint8 { c.adc(c.fetch()); return 1 }
func iSBC(c *CPU) uint8 { c.adc(c.fetch() ^ 0xFF); return 1 }

func iAND(c *CPU) uint8 { c.A &= c.fetch(); c.P.checkNZ(c.A); return 1 }
func iORA(c *CPU) uint8 { c.A |= c.fetch(); c.P.checkNZ(c.A); return 1 }
func iEOR(c *CPU) uint8 { c.A ^= c.fetch(); c.P.checkNZ(c.A); return 1 }

func iASL(c *CPU) uint8 {
	v := c.fetch()
	carry := v&0x80 != 0
	v <<= 1
	c.store(v)
	c.P.Set(FlagC, carry)
	c.P.checkNZ(v)
	return 0
}

func iLSR(c *CPU) uint8 {
	v := c.fetch()
	carry := v&0x01 != 0
	v >>= 1
	c.store(v)
	c.P.Set(FlagC, carry)
	c.P.checkNZ(v)
	return 0
}

func iROL(c *CPU) uint8 {
	v := c.fetch()
	var carryIn uint8
	if c.P.Has(FlagC) {
		carryIn = 1
	}
	carryOut := v&0x80 != 0
	v = (v << 1) | carryIn
	c.store(v)
	c.P.Set(FlagC, carryOut)
	c.P.checkNZ(v)
	return 0
}

func iROR(c *CPU) uint8 {
	v := c.fetch()
	var carryIn uint8
	if c.P.Has(FlagC) {
		carryIn = 0x80
	}
	carryOut := v&0x01 != 0
	v = (v >> 1) | carryIn
	c.store(v)
	c.P.Set(FlagC, carryOut)
	c.P.checkNZ(v)
	return 0
}

func iBIT(c *CPU) uint8 {
	v := c.fetch()
	c.P.Set(FlagZ, c.A&v == 0)
	c.P.Set(FlagV, v&0x40 != 0)
	c.P.Set(FlagN, v&0x80 != 0)
	return 0
}

func branch(c *CPU, cond bool) uint8 {
	if !cond {
		return 0
	}
	old := c.PC
	c.PC = c.addr
	if c.PC&0xFF00 != old&0xFF00 {
		return 2
	}
	return 1
}

func iBCC(c *CPU) uint8 { return branch(c, !c.P.Has(FlagC)) }
func iBCS(c *CPU) uint8 { return branch(c, c.P.Has(FlagC)) }
func iBEQ(c *CPU) uint8 { return branch(c, c.P.Has(FlagZ)) }
func iBNE(c *CPU) uint8 { return branch(c, !c.P.Has(FlagZ)) }
func iBMI(c *CPU) uint8 { return branch(c, c.P.Has(FlagN)) }
func iBPL(c *CPU) uint8 { return branch(c, !c.P.Has(FlagN)) }
func iBVC(c *CPU) uint8 { return branch(c, !c.P.Has(FlagV)) }
func iBVS(c *CPU) uint8 { return branch(c, c.P.Has(FlagV)) }

// iBRK pushes PC+1 (past BRK's padding byte) and status with B=1, sets I,
// then jumps through the IRQ/BRK vector. It performs the push/jump
// directly rather than going through serviceInterrupt, since the base
// cycle count (and any extra mask) is still resolved by the normal
// fetch/decode/execute pipeline.
func iBRK(c *CPU) uint8 {
	c.PC++
	c.push16(c.PC)
	st := c.P
	st.Set(FlagB, true)
	st.Set(FlagU, true)
	c.push8(uint8(st))
	c.P.Set(FlagI, true)
	lo := c.read(irqLo)
	hi := c.read(irqHi)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}

func iJMP(c *CPU) uint8 { c.PC = c.addr; return 0 }

func iJSR(c *CPU) uint8 {
	c.push16(c.PC - 1)
	c.PC = c.addr
	return 0
}

func iRTS(c *CPU) uint8 {
	c.PC = c.pull16() + 1
	return 0
}

func iRTI(c *CPU) uint8 {
	c.P = Status(c.pull8()) & pulledMask
	c.PC = c.pull16()
	return 0
}

func iPHA(c *CPU) uint8 { c.push8(c.A); return 0 }
func iPLA(c *CPU) uint8 { c.A = c.pull8(); c.P.checkNZ(c.A); return 0 }

func iPHP(c *CPU) uint8 {
	st := c.P
	st.Set(FlagB, true)
	st.Set(FlagU, true)
	c.push8(uint8(st))
	return 0
}

func iPLP(c *CPU) uint8 {
	c.P = Status(c.pull8()) & pulledMask
	return 0
}

func iCLC(c *CPU) uint8 { c.P.Set(FlagC, false); return 0 }
func iCLD(c *CPU) uint8 { c.P.Set(FlagD, false); return 0 }
func iCLI(c *CPU) uint8 { c.P.Set(FlagI, false); return 0 }
func iCLV(c *CPU) uint8 { c.P.Set(FlagV, false); return 0 }
func iSEC(c *CPU) uint8 { c.P.Set(FlagC, true); return 0 }
func iSED(c *CPU) uint8 { c.P.Set(FlagD, true); return 0 }
func iSEI(c *CPU) uint8 { c.P.Set(FlagI, true); return 0 }

func iTAX(c *CPU) uint8 { c.X = c.A; c.P.checkNZ(c.X); return 0 }
func iTAY(c *CPU) uint8 { c.Y = c.A; c.P.checkNZ(c.Y); return 0 }
func iTXA(c *CPU) uint8 { c.A = c.X; c.P.checkNZ(c.A); return 0 }
func iTYA(c *CPU) uint8 { c.A = c.Y; c.P.checkNZ(c.A); return 0 }
func iTSX(c *CPU) uint8 { c.X = c.SP; c.P.checkNZ(c.X); return 0 }
func iTXS(c *CPU) uint8 { c.SP = c.X; return 0 } // TXS does not touch N/Z.

func iINX(c *CPU) uint8 { c.X++; c.P.checkNZ(c.X); return 0 }
func iINY(c *CPU) uint8 { c.Y++; c.P.checkNZ(c.Y); return 0 }
func iDEX(c *CPU) uint8 { c.X--; c.P.checkNZ(c.X); return 0 }
func iDEY(c *CPU) uint8 { c.Y--; c.P.checkNZ(c.Y); return 0 }

func iINC(c *CPU) uint8 { v := c.fetch() + 1; c.store(v); c.P.checkNZ(v); return 0 }
func iDEC(c *CPU) uint8 { v := c.fetch() - 1; c.store(v); c.P.checkNZ(v); return 0 }

func iLDA(c *CPU) uint8 { c.A = c.fetch(); c.P.checkNZ(c.A); return 1 }
func iLDX(c *CPU) uint8 { c.X = c.fetch(); c.P.checkNZ(c.X); return 1 }
func iLDY(c *CPU) uint8 { c.Y = c.fetch(); c.P.checkNZ(c.Y); return 1 }

func iSTA(c *CPU) uint8 { c.store(c.A); return 0 }
func iSTX(c *CPU) uint8 { c.store(c.X); return 0 }
func iSTY(c *CPU) uint8 { c.store(c.Y); return 0 }

func cmp(c *CPU, reg uint8) uint8 {
	v := c.fetch()
	c.P.Set(FlagC, reg >= v)
	c.P.checkNZ(reg - v)
	return 1
}

func iCMP(c *CPU) uint8 { return cmp(c, c.A) }
func iCPX(c *CPU) uint8 { return cmp(c, c.X) }
func iCPY(c *CPU) uint8 { return cmp(c, c.Y) }

// iNOP performs the dummy read a real 6502 issues for every addressing
// mode except implicit, so that unofficial NOPs addressed at a
// side-effecting register (e.g. $2002) still trigger that side effect.
func iNOP(c *CPU) uint8 {
	if c.entry.mode != ModeIMP {
		c.fetch()
	}
	return 1
}

// --- Unofficial opcodes with defined, commonly agreed-upon behavior. ---

func iLAX(c *CPU) uint8 {
	v := c.fetch()
	c.A, c.X = v, v
	c.P.checkNZ(v)
	return 1
}

func iSAX(c *CPU) uint8 { c.store(c.A & c.X); return 0 }

func iDCP(c *CPU) uint8 {
	v := c.fetch() - 1
	c.store(v)
	c.P.Set(FlagC, c.A >= v)
	c.P.checkNZ(c.A - v)
	return 0
}

func iISC(c *CPU) uint8 {
	v := c.fetch() + 1
	c.store(v)
	c.adc(v ^ 0xFF)
	return 0
}

func iSLO(c *CPU) uint8 {
	v := c.fetch()
	carry := v&0x80 != 0
	v <<= 1
	c.store(v)
	c.P.Set(FlagC, carry)
	c.A |= v
	c.P.checkNZ(c.A)
	return 0
}

func iRLA(c *CPU) uint8 {
	v := c.fetch()
	var carryIn uint8
	if c.P.Has(FlagC) {
		carryIn = 1
	}
	carryOut := v&0x80 != 0
	v = (v << 1) | carryIn
	c.store(v)
	c.P.Set(FlagC, carryOut)
	c.A &= v
	c.P.checkNZ(c.A)
	return 0
}

func iSRE(c *CPU) uint8 {
	v := c.fetch()
	carry := v&0x01 != 0
	v >>= 1
	c.store(v)
	c.P.Set(FlagC, carry)
	c.A ^= v
	c.P.checkNZ(c.A)
	return 0
}

func iRRA(c *CPU) uint8 {
	v := c.fetch()
	var carryIn uint8
	if c.P.Has(FlagC) {
		carryIn = 0x80
	}
	carryOut := v&0x01 != 0
	v = (v >> 1) | carryIn
	c.store(v)
	c.P.Set(FlagC, carryOut)
	c.adc(v)
	return 0
}

func iANC(c *CPU) uint8 {
	c.A &= c.fetch()
	c.P.checkNZ(c.A)
	c.P.Set(FlagC, c.A&0x80 != 0)
	return 0
}

func iALR(c *CPU) uint8 {
	c.A &= c.fetch()
	carry := c.A&0x01 != 0
	c.A >>= 1
	c.P.Set(FlagC, carry)
	c.P.checkNZ(c.A)
	return 0
}

func iARR(c *CPU) uint8 {
	c.A &= c.fetch()
	var carryIn uint8
	if c.P.Has(FlagC) {
		carryIn = 0x80
	}
	c.A = (c.A >> 1) | carryIn
	c.P.checkNZ(c.A)
	bit6 := c.A&0x40 != 0
	bit5 := c.A&0x20 != 0
	c.P.Set(FlagC, bit6)
	c.P.Set(FlagV, bit6 != bit5)
	return 0
}

func iSBX(c *CPU) uint8 {
	v := c.fetch()
	t := c.A & c.X
	c.P.Set(FlagC, t >= v)
	c.X = t - v
	c.P.checkNZ(c.X)
	return 0
}

func iLAS(c *CPU) uint8 {
	v := c.fetch() & c.SP
	c.A, c.X, c.SP = v, v, v
	c.P.checkNZ(v)
	return 1
}
