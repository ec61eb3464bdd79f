package cpu

import "fmt"

// Disassemble decodes the instruction at addr without mutating the CPU,
// returning the formatted line and the address immediately following it.
// Unofficial opcodes keep the leading "*" arl-nestor's own disassembler
// uses to flag them.
func (c *CPU) Disassemble(addr uint16) (string, uint16) {
	opcode := c.read(addr)
	e := &opTable[opcode]
	pc := addr + 1

	if e.illegal {
		return fmt.Sprintf("%04X  %02X        %s", addr, opcode, e.name), pc
	}

	operand, text := disasmOperand(c, e.mode, pc)
	pc += operand

	return fmt.Sprintf("%04X  %02X        %-3s %s", addr, opcode, e.name, text), pc
}

// disasmOperand renders the operand text for a single instruction given
// its addressing mode, without touching CPU register state; it returns
// the number of operand bytes consumed so the caller can advance pc.
func disasmOperand(c *CPU, mode Mode, pc uint16) (uint16, string) {
	switch mode {
	case ModeIMP:
		return 0, ""
	case ModeACC:
		return 0, "A"
	case ModeIMM:
		return 1, fmt.Sprintf("#$%02X", c.read(pc))
	case ModeZP0:
		return 1, fmt.Sprintf("$%02X", c.read(pc))
	case ModeZPX:
		return 1, fmt.Sprintf("$%02X,X", c.read(pc))
	case ModeZPY:
		return 1, fmt.Sprintf("$%02X,Y", c.read(pc))
	case ModeREL:
		off := int8(c.read(pc))
		target := uint16(int32(pc+1) + int32(off))
		return 1, fmt.Sprintf("$%04X", target)
	case ModeABS:
		lo, hi := c.read(pc), c.read(pc+1)
		return 2, fmt.Sprintf("$%04X", uint16(hi)<<8|uint16(lo))
	case ModeABX:
		lo, hi := c.read(pc), c.read(pc+1)
		return 2, fmt.Sprintf("$%04X,X", uint16(hi)<<8|uint16(lo))
	case ModeABY:
		lo, hi := c.read(pc), c.read(pc+1)
		return 2, fmt.Sprintf("$%04X,Y", uint16(hi)<<8|uint16(lo))
	case ModeIND:
		lo, hi := c.read(pc), c.read(pc+1)
		return 2, fmt.Sprintf("($%04X)", uint16(hi)<<8|uint16(lo))
	case ModeIZX:
		return 1, fmt.Sprintf("($%02X,X)", c.read(pc))
	case ModeIZY:
		return 1, fmt.Sprintf("($%02X),Y", c.read(pc))
	default:
		return 0, ""
	}
}
