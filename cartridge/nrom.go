package cartridge

import "nesengine/elog"

// nrom is mapper 0: a fixed PRG/CHR mirror with no bank switching,
// grounded on hw/mappers/nrom.go. PRG reads are masked into the
// cartridge's single or double 16 KiB bank; PRG writes are dropped; CHR
// reads pass straight through; CHR writes are dropped (CHR-ROM carts
// have no writable backing store).
type nrom struct {
	c       *Cartridge
	prgMask uint16
}

func newNROM(c *Cartridge) (Mapper, error) {
	n := &nrom{c: c}
	if len(c.PRG) <= 0x4000 {
		n.prgMask = 0x3FFF
	} else {
		n.prgMask = 0x7FFF
	}
	return n, nil
}

func (n *nrom) PRGRead(addr uint16) uint8 {
	off := addr & n.prgMask
	if int(off) >= len(n.c.PRG) {
		return 0
	}
	return n.c.PRG[off]
}

func (n *nrom) PRGWrite(addr uint16, v uint8) {
	// ROM is read-only; NROM silently drops CPU writes.
	elog.ModCartridge.DebugZ("dropped PRG write").Hex16("addr", addr).Hex8("val", v).End()
}

func (n *nrom) CHRRead(addr uint16) uint8 {
	if int(addr) >= len(n.c.CHR) {
		return 0
	}
	return n.c.CHR[addr]
}

func (n *nrom) CHRWrite(addr uint16, v uint8) {
	// CHR-ROM is read-only for NROM.
}
