package cpu

// opEntry is one of the 256 opcode-table slots: mnemonic, addressing
// mode, the two handler functions, and the base cycle count. This is the
// "language-neutral realization" of the source's table of member
// function pointers, per the core's design notes — structurally grounded
// on beevik-go6502's Instructions table, with full 256-slot semantic
// coverage (official and unofficial opcodes alike) grounded on
// arl-nestor's cpu/cpugen/gen_nes6502.go generator.
type opEntry struct {
	name    string
	mode    Mode
	addr    addrFn
	instr   instrFn
	cycles  uint8
	illegal bool // true: opcode is an undefined/fatal-trap slot.
}

func op(name string, mode Mode, addr addrFn, instr instrFn, cycles uint8) opEntry {
	return opEntry{name: name, mode: mode, addr: addr, instr: instr, cycles: cycles}
}

// jam marks one of the handful of genuinely undefined opcodes (KIL/JAM
// traps, plus the "unstable" illegal opcodes ANE/SHA/SHX/SHY/TAS/LXA
// whose real silicon behavior depends on analog bus effects no emulator
// in the corpus claims to reproduce) as a fatal-abort slot.
func jam(name string) opEntry {
	return opEntry{name: name, illegal: true}
}

var opTable = [256]opEntry{
	// 0x0_
	0x00: op("BRK", ModeIMP, amIMP, iBRK, 7),
	0x01: op("ORA", ModeIZX, amIZX, iORA, 6),
	0x02: jam("JAM"),
	0x03: op("*SLO", ModeIZX, amIZX, iSLO, 8),
	0x04: op("*NOP", ModeZP0, amZP0, iNOP, 3),
	0x05: op("ORA", ModeZP0, amZP0, iORA, 3),
	0x06: op("ASL", ModeZP0, amZP0, iASL, 5),
	0x07: op("*SLO", ModeZP0, amZP0, iSLO, 5),
	0x08: op("PHP", ModeIMP, amIMP, iPHP, 3),
	0x09: op("ORA", ModeIMM, amIMM, iORA, 2),
	0x0A: op("ASL", ModeACC, amACC, iASL, 2),
	0x0B: op("*ANC", ModeIMM, amIMM, iANC, 2),
	0x0C: op("*NOP", ModeABS, amABS, iNOP, 4),
	0x0D: op("ORA", ModeABS, amABS, iORA, 4),
	0x0E: op("ASL", ModeABS, amABS, iASL, 6),
	0x0F: op("*SLO", ModeABS, amABS, iSLO, 6),

	// 0x1_
	0x10: op("BPL", ModeREL, amREL, iBPL, 2),
	0x11: op("ORA", ModeIZY, amIZY, iORA, 5),
	0x12: jam("JAM"),
	0x13: op("*SLO", ModeIZY, amIZY, iSLO, 8),
	0x14: op("*NOP", ModeZPX, amZPX, iNOP, 4),
	0x15: op("ORA", ModeZPX, amZPX, iORA, 4),
	0x16: op("ASL", ModeZPX, amZPX, iASL, 6),
	0x17: op("*SLO", ModeZPX, amZPX, iSLO, 6),
	0x18: op("CLC", ModeIMP, amIMP, iCLC, 2),
	0x19: op("ORA", ModeABY, amABY, iORA, 4),
	0x1A: op("*NOP", ModeIMP, amIMP, iNOP, 2),
	0x1B: op("*SLO", ModeABY, amABY, iSLO, 7),
	0x1C: op("*NOP", ModeABX, amABX, iNOP, 4),
	0x1D: op("ORA", ModeABX, amABX, iORA, 4),
	0x1E: op("ASL", ModeABX, amABX, iASL, 7),
	0x1F: op("*SLO", ModeABX, amABX, iSLO, 7),

	// 0x2_
	0x20: op("JSR", ModeABS, amABS, iJSR, 6),
	0x21: op("AND", ModeIZX, amIZX, iAND, 6),
	0x22: jam("JAM"),
	0x23: op("*RLA", ModeIZX, amIZX, iRLA, 8),
	0x24: op("BIT", ModeZP0, amZP0, iBIT, 3),
	0x25: op("AND", ModeZP0, amZP0, iAND, 3),
	0x26: op("ROL", ModeZP0, amZP0, iROL, 5),
	0x27: op("*RLA", ModeZP0, amZP0, iRLA, 5),
	0x28: op("PLP", ModeIMP, amIMP, iPLP, 4),
	0x29: op("AND", ModeIMM, amIMM, iAND, 2),
	0x2A: op("ROL", ModeACC, amACC, iROL, 2),
	0x2B: op("*ANC", ModeIMM, amIMM, iANC, 2),
	0x2C: op("BIT", ModeABS, amABS, iBIT, 4),
	0x2D: op("AND", ModeABS, amABS, iAND, 4),
	0x2E: op("ROL", ModeABS, amABS, iROL, 6),
	0x2F: op("*RLA", ModeABS, amABS, iRLA, 6),

	// 0x3_
	0x30: op("BMI", ModeREL, amREL, iBMI, 2),
	0x31: op("AND", ModeIZY, amIZY, iAND, 5),
	0x32: jam("JAM"),
	0x33: op("*RLA", ModeIZY, amIZY, iRLA, 8),
	0x34: op("*NOP", ModeZPX, amZPX, iNOP, 4),
	0x35: op("AND", ModeZPX, amZPX, iAND, 4),
	0x36: op("ROL", ModeZPX, amZPX, iROL, 6),
	0x37: op("*RLA", ModeZPX, amZPX, iRLA, 6),
	0x38: op("SEC", ModeIMP, amIMP, iSEC, 2),
	0x39: op("AND", ModeABY, amABY, iAND, 4),
	0x3A: op("*NOP", ModeIMP, amIMP, iNOP, 2),
	0x3B: op("*RLA", ModeABY, amABY, iRLA, 7),
	0x3C: op("*NOP", ModeABX, amABX, iNOP, 4),
	0x3D: op("AND", ModeABX, amABX, iAND, 4),
	0x3E: op("ROL", ModeABX, amABX, iROL, 7),
	0x3F: op("*RLA", ModeABX, amABX, iRLA, 7),

	// 0x4_
	0x40: op("RTI", ModeIMP, amIMP, iRTI, 6),
	0x41: op("EOR", ModeIZX, amIZX, iEOR, 6),
	0x42: jam("JAM"),
	0x43: op("*SRE", ModeIZX, amIZX, iSRE, 8),
	0x44: op("*NOP", ModeZP0, amZP0, iNOP, 3),
	0x45: op("EOR", ModeZP0, amZP0, iEOR, 3),
	0x46: op("LSR", ModeZP0, amZP0, iLSR, 5),
	0x47: op("*SRE", ModeZP0, amZP0, iSRE, 5),
	0x48: op("PHA", ModeIMP, amIMP, iPHA, 3),
	0x49: op("EOR", ModeIMM, amIMM, iEOR, 2),
	0x4A: op("LSR", ModeACC, amACC, iLSR, 2),
	0x4B: op("*ALR", ModeIMM, amIMM, iALR, 2),
	0x4C: op("JMP", ModeABS, amABS, iJMP, 3),
	0x4D: op("EOR", ModeABS, amABS, iEOR, 4),
	0x4E: op("LSR", ModeABS, amABS, iLSR, 6),
	0x4F: op("*SRE", ModeABS, amABS, iSRE, 6),

	// 0x5_
	0x50: op("BVC", ModeREL, amREL, iBVC, 2),
	0x51: op("EOR", ModeIZY, amIZY, iEOR, 5),
	0x52: jam("JAM"),
	0x53: op("*SRE", ModeIZY, amIZY, iSRE, 8),
	0x54: op("*NOP", ModeZPX, amZPX, iNOP, 4),
	0x55: op("EOR", ModeZPX, amZPX, iEOR, 4),
	0x56: op("LSR", ModeZPX, amZPX, iLSR, 6),
	0x57: op("*SRE", ModeZPX, amZPX, iSRE, 6),
	0x58: op("CLI", ModeIMP, amIMP, iCLI, 2),
	0x59: op("EOR", ModeABY, amABY, iEOR, 4),
	0x5A: op("*NOP", ModeIMP, amIMP, iNOP, 2),
	0x5B: op("*SRE", ModeABY, amABY, iSRE, 7),
	0x5C: op("*NOP", ModeABX, amABX, iNOP, 4),
	0x5D: op("EOR", ModeABX, amABX, iEOR, 4),
	0x5E: op("LSR", ModeABX, amABX, iLSR, 7),
	0x5F: op("*SRE", ModeABX, amABX, iSRE, 7),

	// 0x6_
	0x60: op("RTS", ModeIMP, amIMP, iRTS, 6),
	0x61: op("ADC", ModeIZX, amIZX, iADC, 6),
	0x62: jam("JAM"),
	0x63: op("*RRA", ModeIZX, amIZX, iRRA, 8),
	0x64: op("*NOP", ModeZP0, amZP0, iNOP, 3),
	0x65: op("ADC", ModeZP0, amZP0, iADC, 3),
	0x66: op("ROR", ModeZP0, amZP0, iROR, 5),
	0x67: op("*RRA", ModeZP0, amZP0, iRRA, 5),
	0x68: op("PLA", ModeIMP, amIMP, iPLA, 4),
	0x69: op("ADC", ModeIMM, amIMM, iADC, 2),
	0x6A: op("ROR", ModeACC, amACC, iROR, 2),
	0x6B: op("*ARR", ModeIMM, amIMM, iARR, 2),
	0x6C: op("JMP", ModeIND, amIND, iJMP, 5),
	0x6D: op("ADC", ModeABS, amABS, iADC, 4),
	0x6E: op("ROR", ModeABS, amABS, iROR, 6),
	0x6F: op("*RRA", ModeABS, amABS, iRRA, 6),

	// 0x7_
	0x70: op("BVS", ModeREL, amREL, iBVS, 2),
	0x71: op("ADC", ModeIZY, amIZY, iADC, 5),
	0x72: jam("JAM"),
	0x73: op("*RRA", ModeIZY, amIZY, iRRA, 8),
	0x74: op("*NOP", ModeZPX, amZPX, iNOP, 4),
	0x75: op("ADC", ModeZPX, amZPX, iADC, 4),
	0x76: op("ROR", ModeZPX, amZPX, iROR, 6),
	0x77: op("*RRA", ModeZPX, amZPX, iRRA, 6),
	0x78: op("SEI", ModeIMP, amIMP, iSEI, 2),
	0x79: op("ADC", ModeABY, amABY, iADC, 4),
	0x7A: op("*NOP", ModeIMP, amIMP, iNOP, 2),
	0x7B: op("*RRA", ModeABY, amABY, iRRA, 7),
	0x7C: op("*NOP", ModeABX, amABX, iNOP, 4),
	0x7D: op("ADC", ModeABX, amABX, iADC, 4),
	0x7E: op("ROR", ModeABX, amABX, iROR, 7),
	0x7F: op("*RRA", ModeABX, amABX, iRRA, 7),

	// 0x8_
	0x80: op("*NOP", ModeIMM, amIMM, iNOP, 2),
	0x81: op("STA", ModeIZX, amIZX, iSTA, 6),
	0x82: op("*NOP", ModeIMM, amIMM, iNOP, 2),
	0x83: op("*SAX", ModeIZX, amIZX, iSAX, 6),
	0x84: op("STY", ModeZP0, amZP0, iSTY, 3),
	0x85: op("STA", ModeZP0, amZP0, iSTA, 3),
	0x86: op("STX", ModeZP0, amZP0, iSTX, 3),
	0x87: op("*SAX", ModeZP0, amZP0, iSAX, 3),
	0x88: op("DEY", ModeIMP, amIMP, iDEY, 2),
	0x89: op("*NOP", ModeIMM, amIMM, iNOP, 2),
	0x8A: op("TXA", ModeIMP, amIMP, iTXA, 2),
	0x8B: jam("ANE"),
	0x8C: op("STY", ModeABS, amABS, iSTY, 4),
	0x8D: op("STA", ModeABS, amABS, iSTA, 4),
	0x8E: op("STX", ModeABS, amABS, iSTX, 4),
	0x8F: op("*SAX", ModeABS, amABS, iSAX, 4),

	// 0x9_
	0x90: op("BCC", ModeREL, amREL, iBCC, 2),
	0x91: op("STA", ModeIZY, amIZY, iSTA, 6),
	0x92: jam("JAM"),
	0x93: jam("SHA"),
	0x94: op("STY", ModeZPX, amZPX, iSTY, 4),
	0x95: op("STA", ModeZPX, amZPX, iSTA, 4),
	0x96: op("STX", ModeZPY, amZPY, iSTX, 4),
	0x97: op("*SAX", ModeZPY, amZPY, iSAX, 4),
	0x98: op("TYA", ModeIMP, amIMP, iTYA, 2),
	0x99: op("STA", ModeABY, amABY, iSTA, 5),
	0x9A: op("TXS", ModeIMP, amIMP, iTXS, 2),
	0x9B: jam("TAS"),
	0x9C: jam("SHY"),
	0x9D: op("STA", ModeABX, amABX, iSTA, 5),
	0x9E: jam("SHX"),
	0x9F: jam("SHA"),

	// 0xA_
	0xA0: op("LDY", ModeIMM, amIMM, iLDY, 2),
	0xA1: op("LDA", ModeIZX, amIZX, iLDA, 6),
	0xA2: op("LDX", ModeIMM, amIMM, iLDX, 2),
	0xA3: op("*LAX", ModeIZX, amIZX, iLAX, 6),
	0xA4: op("LDY", ModeZP0, amZP0, iLDY, 3),
	0xA5: op("LDA", ModeZP0, amZP0, iLDA, 3),
	0xA6: op("LDX", ModeZP0, amZP0, iLDX, 3),
	0xA7: op("*LAX", ModeZP0, amZP0, iLAX, 3),
	0xA8: op("TAY", ModeIMP, amIMP, iTAY, 2),
	0xA9: op("LDA", ModeIMM, amIMM, iLDA, 2),
	0xAA: op("TAX", ModeIMP, amIMP, iTAX, 2),
	0xAB: jam("LXA"),
	0xAC: op("LDY", ModeABS, amABS, iLDY, 4),
	0xAD: op("LDA", ModeABS, amABS, iLDA, 4),
	0xAE: op("LDX", ModeABS, amABS, iLDX, 4),
	0xAF: op("*LAX", ModeABS, amABS, iLAX, 4),

	// 0xB_
	0xB0: op("BCS", ModeREL, amREL, iBCS, 2),
	0xB1: op("LDA", ModeIZY, amIZY, iLDA, 5),
	0xB2: jam("JAM"),
	0xB3: op("*LAX", ModeIZY, amIZY, iLAX, 5),
	0xB4: op("LDY", ModeZPX, amZPX, iLDY, 4),
	0xB5: op("LDA", ModeZPX, amZPX, iLDA, 4),
	0xB6: op("LDX", ModeZPY, amZPY, iLDX, 4),
	0xB7: op("*LAX", ModeZPY, amZPY, iLAX, 4),
	0xB8: op("CLV", ModeIMP, amIMP, iCLV, 2),
	0xB9: op("LDA", ModeABY, amABY, iLDA, 4),
	0xBA: op("TSX", ModeIMP, amIMP, iTSX, 2),
	0xBB: op("*LAS", ModeABY, amABY, iLAS, 4),
	0xBC: op("LDY", ModeABX, amABX, iLDY, 4),
	0xBD: op("LDA", ModeABX, amABX, iLDA, 4),
	0xBE: op("LDX", ModeABY, amABY, iLDX, 4),
	0xBF: op("*LAX", ModeABY, amABY, iLAX, 4),

	// 0xC_
	0xC0: op("CPY", ModeIMM, amIMM, iCPY, 2),
	0xC1: op("CMP", ModeIZX, amIZX, iCMP, 6),
	0xC2: op("*NOP", ModeIMM, amIMM, iNOP, 2),
	0xC3: op("*DCP", ModeIZX, amIZX, iDCP, 8),
	0xC4: op("CPY", ModeZP0, amZP0, iCPY, 3),
	0xC5: op("CMP", ModeZP0, amZP0, iCMP, 3),
	0xC6: op("DEC", ModeZP0, amZP0, iDEC, 5),
	0xC7: op("*DCP", ModeZP0, amZP0, iDCP, 5),
	0xC8: op("INY", ModeIMP, amIMP, iINY, 2),
	0xC9: op("CMP", ModeIMM, amIMM, iCMP, 2),
	0xCA: op("DEX", ModeIMP, amIMP, iDEX, 2),
	0xCB: op("*SBX", ModeIMM, amIMM, iSBX, 2),
	0xCC: op("CPX", ModeABS, amABS, iCPX, 4),
	0xCD: op("CMP", ModeABS, amABS, iCMP, 4),
	0xCE: op("DEC", ModeABS, amABS, iDEC, 6),
	0xCF: op("*DCP", ModeABS, amABS, iDCP, 6),

	// 0xD_
	0xD0: op("BNE", ModeREL, amREL, iBNE, 2),
	0xD1: op("CMP", ModeIZY, amIZY, iCMP, 5),
	0xD2: jam("JAM"),
	0xD3: op("*DCP", ModeIZY, amIZY, iDCP, 8),
	0xD4: op("*NOP", ModeZPX, amZPX, iNOP, 4),
	0xD5: op("CMP", ModeZPX, amZPX, iCMP, 4),
	0xD6: op("DEC", ModeZPX, amZPX, iDEC, 6),
	0xD7: op("*DCP", ModeZPX, amZPX, iDCP, 6),
	0xD8: op("CLD", ModeIMP, amIMP, iCLD, 2),
	0xD9: op("CMP", ModeABY, amABY, iCMP, 4),
	0xDA: op("*NOP", ModeIMP, amIMP, iNOP, 2),
	0xDB: op("*DCP", ModeABY, amABY, iDCP, 7),
	0xDC: op("*NOP", ModeABX, amABX, iNOP, 4),
	0xDD: op("CMP", ModeABX, amABX, iCMP, 4),
	0xDE: op("DEC", ModeABX, amABX, iDEC, 7),
	0xDF: op("*DCP", ModeABX, amABX, iDCP, 7),

	// 0xE_
	0xE0: op("CPX", ModeIMM, amIMM, iCPX, 2),
	0xE1: op("SBC", ModeIZX, amIZX, iSBC, 6),
	0xE2: op("*NOP", ModeIMM, amIMM, iNOP, 2),
	0xE3: op("*ISC", ModeIZX, amIZX, iISC, 8),
	0xE4: op("CPX", ModeZP0, amZP0, iCPX, 3),
	0xE5: op("SBC", ModeZP0, amZP0, iSBC, 3),
	0xE6: op("INC", ModeZP0, amZP0, iINC, 5),
	0xE7: op("*ISC", ModeZP0, amZP0, iISC, 5),
	0xE8: op("INX", ModeIMP, amIMP, iINX, 2),
	0xE9: op("SBC", ModeIMM, amIMM, iSBC, 2),
	0xEA: op("NOP", ModeIMP, amIMP, iNOP, 2),
	0xEB: op("*SBC", ModeIMM, amIMM, iSBC, 2),
	0xEC: op("CPX", ModeABS, amABS, iCPX, 4),
	0xED: op("SBC", ModeABS, amABS, iSBC, 4),
	0xEE: op("INC", ModeABS, amABS, iINC, 6),
	0xEF: op("*ISC", ModeABS, amABS, iISC, 6),

	// 0xF_
	0xF0: op("BEQ", ModeREL, amREL, iBEQ, 2),
	0xF1: op("SBC", ModeIZY, amIZY, iSBC, 5),
	0xF2: jam("JAM"),
	0xF3: op("*ISC", ModeIZY, amIZY, iISC, 8),
	0xF4: op("*NOP", ModeZPX, amZPX, iNOP, 4),
	0xF5: op("SBC", ModeZPX, amZPX, iSBC, 4),
	0xF6: op("INC", ModeZPX, amZPX, iINC, 6),
	0xF7: op("*ISC", ModeZPX, amZPX, iISC, 6),
	0xF8: op("SED", ModeIMP, amIMP, iSED, 2),
	0xF9: op("SBC", ModeABY, amABY, iSBC, 4),
	0xFA: op("*NOP", ModeIMP, amIMP, iNOP, 2),
	0xFB: op("*ISC", ModeABY, amABY, iISC, 7),
	0xFC: op("*NOP", ModeABX, amABX, iNOP, 4),
	0xFD: op("SBC", ModeABX, amABX, iSBC, 4),
	0xFE: op("INC", ModeABX, amABX, iINC, 7),
	0xFF: op("*ISC", ModeABX, amABX, iISC, 7),
}
