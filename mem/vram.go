package mem

import "nesengine/ines"

// VRAM is the PPU's 2 KiB of nametable storage, with a mirror function
// selected at construction from the cartridge's mirroring mode.
type VRAM struct {
	data      [0x800]byte
	mirroring ines.NTMirroring
}

// NewVRAM constructs a VRAM using the given nametable mirroring mode.
func NewVRAM(m ines.NTMirroring) *VRAM {
	return &VRAM{mirroring: m}
}

// SetMirroring changes the mirroring mode (mappers may switch it at
// runtime, e.g. on a bank-switch write, though NROM never does).
func (v *VRAM) SetMirroring(m ines.NTMirroring) { v.mirroring = m }

// mirror removes bits 10 and 11 from a nametable-range address, then
// re-inserts one bit selecting which of the two physical 1 KiB pages the
// address resolves to.
func (v *VRAM) mirror(a uint16) uint16 {
	a &= 0x0FFF
	page := a & 0x03FF
	switch v.mirroring {
	case ines.VertMirroring:
		if a&0x0400 != 0 {
			page |= 0x0400
		}
	case ines.HorzMirroring:
		if a&0x0800 != 0 {
			page |= 0x0400
		}
	case ines.OnlyAScreen:
		// page already selects the first physical page.
	case ines.OnlyBScreen:
		page |= 0x0400
	default:
		// FourScreen would need a 4 KiB backing store; this core treats
		// it like vertical mirroring since no in-scope mapper declares it.
		if a&0x0400 != 0 {
			page |= 0x0400
		}
	}
	return page
}

// Read returns the nametable byte at address a (0x2000-0x2FFF range;
// mirrors at 0x3000-0x3EFF fold onto it, since mirror keeps only the low
// 12 address bits).
func (v *VRAM) Read(a uint16) uint8 {
	return v.data[v.mirror(a)]
}

// Write stores v at address a.
func (v *VRAM) Write(a uint16, val uint8) {
	v.data[v.mirror(a)] = val
}
