// Package cpu implements the core's MOS-6502 variant: a 256-entry
// opcode table over 13 addressing modes, full official and unofficial
// instruction coverage, and a lazy cycle-accurate execution model.
package cpu

import (
	"github.com/go-faster/errors"

	"nesengine/elog"
)

// Bus is the narrow interface the CPU needs from its owner to read and
// write the CPU-space memory map. The System implements it; the CPU
// never holds a concrete reference to the System itself, only this
// interface, per the core's design notes on avoiding a cyclic ownership
// dependency between CPU/PPU and System.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, v uint8)
}

const (
	stackBase = 0x0100
	resetLo   = 0xFFFC
	resetHi   = 0xFFFD
	irqLo     = 0xFFFE
	irqHi     = 0xFFFF
	nmiLo     = 0xFFFA
	nmiHi     = 0xFFFB

	resetCycles = 7
	irqCycles   = 7
	nmiCycles   = 8
)

// IllegalOpcodeError is returned (and, in the core's CLI, reported
// fatally) when the fetch/decode stage lands on one of the handful of
// undefined or "unstable" opcode slots this core treats as a hard trap.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return errors.Errorf("illegal opcode %#02x at PC %#04x", e.Opcode, e.PC).Error()
}

// CPU holds the full 6502-variant register and scratch state described
// in the core's data model, plus the lazy cycle-accounting fields that
// realize cycle()/step().
type CPU struct {
	Bus Bus

	PC      uint16
	SP      uint8
	A, X, Y uint8
	P       Status

	// Scratch fields, valid only during/after the instant an instruction
	// is decoded and executed.
	opcode uint8
	addr   uint16
	acc    bool // true when the addressing mode resolved to the accumulator
	entry  *opEntry

	remaining uint8 // cycles left before the next fetch may occur

	Cycles       uint64
	Instructions uint64

	pendingNMI bool
	pendingIRQ bool

	// stall counts extra cycles the CPU sits idle while something else
	// (OAM DMA) owns the bus. It is drained before any fetch/interrupt
	// check, and is not itself subject to interrupt servicing.
	stall uint16

	// Err is set (and latched) the instant an illegal opcode is decoded.
	// The CPU never fetches again once Err is non-nil; callers should
	// check it after every Cycle()/Step().
	Err error
}

// NewCPU constructs a CPU wired to the given bus. Reset must be called
// before the first Cycle()/Step() to establish the power-on state.
func NewCPU(bus Bus) *CPU {
	return &CPU{Bus: bus}
}

func (c *CPU) read(a uint16) uint8     { return c.Bus.Read8(a) }
func (c *CPU) write(a uint16, v uint8) { c.Bus.Write8(a, v) }

func (c *CPU) read16(a uint16) uint16 {
	lo := c.read(a)
	hi := c.read(a + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Reset establishes the power-on/reset state: SP=0xFD, status cleared
// except U, PC loaded from the reset vector, and the next fetch absorbed
// no earlier than 7 master cycles later.
func (c *CPU) Reset() {
	c.SP = 0xFD
	c.P = FlagU
	c.PC = c.read16(resetLo)
	c.remaining = resetCycles
	c.acc = false
	c.pendingNMI = false
	c.pendingIRQ = false
	c.Err = nil
}

// NMI requests a non-maskable interrupt. The request is latched and
// serviced the next time the CPU is idle (remaining == 0), matching real
// 6502 behavior where NMI takes effect at the next instruction boundary
// rather than interrupting an in-flight instruction.
func (c *CPU) NMI() { c.pendingNMI = true }

// IRQ requests a maskable interrupt, serviced the next time the CPU is
// idle and the I flag is clear. If I is set when the request would be
// serviced, the request is dropped (this core has no continuously
// asserted IRQ source to re-trigger against).
func (c *CPU) IRQ() { c.pendingIRQ = true }

// Stall holds the CPU idle for the given number of additional cycles,
// as real hardware does while OAM DMA owns the bus. Stall cycles are
// drained before any fetch/decode or interrupt dispatch resumes.
func (c *CPU) Stall(cycles uint16) { c.stall += cycles }

// Cycle advances exactly one CPU cycle of work.
func (c *CPU) Cycle() {
	if c.stall > 0 {
		c.stall--
		c.Cycles++
		return
	}
	if c.remaining == 0 && c.Err == nil {
		switch {
		case c.pendingNMI:
			c.pendingNMI = false
			c.serviceInterrupt(nmiLo, nmiHi, nmiCycles, false)
		case c.pendingIRQ && !c.P.Has(FlagI):
			c.pendingIRQ = false
			c.serviceInterrupt(irqLo, irqHi, irqCycles, false)
		default:
			// An IRQ still pending here arrived while I was set: drop it.
			c.pendingIRQ = false
			c.fetchDecodeExecute()
		}
	} else if c.remaining > 0 {
		c.remaining--
	}
	c.Cycles++
}

// Step completes any in-flight instruction, then executes exactly one
// more to completion.
func (c *CPU) Step() {
	for c.stall > 0 || c.remaining > 0 {
		c.Cycle()
	}
	if c.Err != nil {
		return
	}
	c.Cycle()
	for c.remaining > 0 {
		c.Cycle()
	}
}

func (c *CPU) fetchDecodeExecute() {
	pc := c.PC
	c.opcode = c.read(c.PC)
	c.PC++

	e := &opTable[c.opcode]
	if e.illegal {
		elog.ModCPU.ErrorZ("illegal opcode trap").Hex16("pc", pc).Hex8("opcode", c.opcode).End()
		c.Err = &IllegalOpcodeError{Opcode: c.opcode, PC: pc}
		c.remaining = 0
		return
	}

	elog.ModCPU.DebugZ("fetch").Hex16("pc", pc).Hex8("opcode", c.opcode).String("mnemonic", e.name).End()

	c.entry = e
	c.acc = false
	addrExtra := e.addr(c)
	instrExtra := e.instr(c)

	total := e.cycles + (addrExtra & instrExtra)
	c.remaining = total - 1
	c.Instructions++
}

// serviceInterrupt pushes PC and status (with B forced per setB) and
// jumps through the given vector. setB is true only for BRK, which pushes
// status with B=1 before falling through to this same sequence.
func (c *CPU) serviceInterrupt(vecLo, vecHi uint16, cycles uint8, setB bool) {
	c.push16(c.PC)
	st := c.P
	st.Set(FlagB, setB)
	st.Set(FlagU, true)
	c.push8(uint8(st))
	c.P.Set(FlagI, true)
	lo := c.read(vecLo)
	hi := c.read(vecHi)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.remaining = cycles - 1
}

func (c *CPU) push8(v uint8) {
	c.write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pull8() uint8 {
	c.SP++
	return c.read(stackBase + uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// Opcode returns the most recently fetched opcode byte.
func (c *CPU) Opcode() uint8 { return c.opcode }

// Idle reports whether the CPU is between instructions and not stalled
// (remaining == 0 and stall == 0).
func (c *CPU) Idle() bool { return c.remaining == 0 && c.stall == 0 }
