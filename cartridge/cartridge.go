// Package cartridge models a loaded NES cartridge: its immutable PRG/CHR
// ROM banks, a mapper performing address translation, and the nametable
// mirroring mode the mapper (or the iNES header, for NROM) selects.
package cartridge

import (
	"github.com/go-faster/errors"

	"nesengine/elog"
	"nesengine/ines"
)

// Mapper translates CPU- and PPU-space addresses into offsets within a
// cartridge's PRG/CHR byte vectors, or rejects writes to read-only media.
// It is total: every address in its respective range must resolve.
type Mapper interface {
	// PRGRead returns the byte the CPU observes when reading addr
	// (0x4020-0xFFFF range; addr is passed un-translated).
	PRGRead(addr uint16) uint8
	// PRGWrite attempts to write v at addr; NROM and other ROM-only
	// mappers silently drop the write per the core's error-handling
	// policy for ROM writes.
	PRGWrite(addr uint16, v uint8)
	// CHRRead returns the byte the PPU observes when reading addr
	// (0x0000-0x1FFF PPU-bus range).
	CHRRead(addr uint16) uint8
	// CHRWrite attempts to write v at addr; dropped for CHR-ROM carts.
	CHRWrite(addr uint16, v uint8)
}

// Cartridge owns the cartridge's ROM data, its mapper, and the nametable
// mirroring mode observed by the PPU bus router.
type Cartridge struct {
	PRG []byte
	CHR []byte

	Mapper    Mapper
	Mirroring ines.NTMirroring
}

// Load decodes and wires up a cartridge from a parsed iNES ROM. Only
// mapper 0 (NROM) is supported; any other mapper number is a fatal
// cartridge-format error per the core's error policy.
func Load(rom *ines.Rom) (*Cartridge, error) {
	if rom.IsNES20() {
		return nil, errors.New("NES 2.0 roms are not supported")
	}

	c := &Cartridge{
		PRG:       rom.PRG,
		CHR:       rom.CHR,
		Mirroring: rom.Mirroring(),
	}

	ctor, ok := mapperTable[rom.Mapper()]
	if !ok {
		return nil, errors.Errorf("unsupported mapper: %d", rom.Mapper())
	}
	m, err := ctor(c)
	if err != nil {
		return nil, errors.Wrapf(err, "loading mapper %d", rom.Mapper())
	}
	c.Mapper = m

	elog.ModCartridge.InfoZ("cartridge loaded").
		Hex8("mapper", rom.Mapper()).
		Hex16("prg_size", uint16(len(c.PRG))).
		Hex16("chr_size", uint16(len(c.CHR))).
		End()
	return c, nil
}

// PRGRead delegates to the mapper.
func (c *Cartridge) PRGRead(addr uint16) uint8 { return c.Mapper.PRGRead(addr) }

// PRGWrite delegates to the mapper.
func (c *Cartridge) PRGWrite(addr uint16, v uint8) { c.Mapper.PRGWrite(addr, v) }

// CHRRead delegates to the mapper.
func (c *Cartridge) CHRRead(addr uint16) uint8 { return c.Mapper.CHRRead(addr) }

// CHRWrite delegates to the mapper.
func (c *Cartridge) CHRWrite(addr uint16, v uint8) { c.Mapper.CHRWrite(addr, v) }

// Sprite returns an 8x8 tile of 2-bit palette indices read from CHR
// memory, per the core's pattern-table bit-plane layout: two 8-byte
// planes starting at (rightTable ? 0x1000 : 0) + tile*16, with the MSB
// plane shifted left by one and OR'd with the LSB plane for each pixel.
func (c *Cartridge) Sprite(tile uint8, rightTable bool) [8][8]uint8 {
	var base uint16
	if rightTable {
		base = 0x1000
	}
	base += uint16(tile) * 16

	var out [8][8]uint8
	for row := 0; row < 8; row++ {
		lo := c.CHRRead(base + uint16(row))
		hi := c.CHRRead(base + uint16(row) + 8)
		for col := 0; col < 8; col++ {
			shift := 7 - col
			loBit := (lo >> shift) & 1
			hiBit := (hi >> shift) & 1
			out[row][col] = (hiBit << 1) | loBit
		}
	}
	return out
}
