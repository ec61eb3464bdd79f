package mem

// Palette is the PPU's 32-byte palette RAM: 8 palettes (4 background, 4
// sprite) of 4 entries each, with the background-color slots of the
// sprite palettes aliased onto the background palettes' slot 0.
type Palette struct {
	data [32]byte
}

// fold applies the background-mirror rule from the core's palette design:
// addresses 0x10/0x14/0x18/0x1C alias 0x00/0x04/0x08/0x0C.
func fold(a uint16) uint16 {
	if a&0x13 == 0x10 {
		a &^= 0x10
	}
	return a & 0x1F
}

// Read returns the palette byte at address a (already masked into the
// 0x3F00-0x3FFF PPU bus range by the caller; only the low bits matter).
func (p *Palette) Read(a uint16) uint8 {
	return p.data[fold(a)]
}

// Write stores v at address a.
func (p *Palette) Write(a uint16, v uint8) {
	p.data[fold(a)] = v
}

// EntryColor looks up the NTSC master palette color for palette slot
// `palette` (0-7), entry `index` (0-3), going through the same 0x3F00
// addressing scheme a PPU bus read would use.
func (p *Palette) EntryColor(palette, index uint8) RGB {
	idx := p.data[fold(uint16(palette)<<2|uint16(index&3))]
	return NTSCPalette[idx&0x3F]
}

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R, G, B uint8
}

// NTSCPalette is the fixed 64-entry NTSC 2C02 color lookup table, indexed
// by the 6-bit color code stored in palette RAM.
var NTSCPalette = [64]RGB{
	{0x66, 0x66, 0x66}, {0x00, 0x2A, 0x88}, {0x14, 0x12, 0xA7}, {0x3B, 0x00, 0xA4},
	{0x5C, 0x00, 0x7E}, {0x6E, 0x00, 0x40}, {0x6C, 0x06, 0x00}, {0x56, 0x1D, 0x00},
	{0x33, 0x35, 0x00}, {0x0B, 0x48, 0x00}, {0x00, 0x52, 0x00}, {0x00, 0x4F, 0x08},
	{0x00, 0x40, 0x4D}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xAD, 0xAD, 0xAD}, {0x15, 0x5F, 0xD9}, {0x42, 0x40, 0xFF}, {0x75, 0x27, 0xFE},
	{0xA0, 0x1A, 0xCC}, {0xB7, 0x1E, 0x7B}, {0xB5, 0x31, 0x20}, {0x99, 0x4E, 0x00},
	{0x6B, 0x6D, 0x00}, {0x38, 0x87, 0x00}, {0x0C, 0x93, 0x00}, {0x00, 0x8F, 0x32},
	{0x00, 0x7C, 0x8D}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFE, 0xFF}, {0x64, 0xB0, 0xFF}, {0x92, 0x90, 0xFF}, {0xC6, 0x76, 0xFF},
	{0xF3, 0x6A, 0xFF}, {0xFE, 0x6E, 0xCC}, {0xFE, 0x81, 0x70}, {0xEA, 0x9E, 0x22},
	{0xBC, 0xBE, 0x00}, {0x88, 0xD8, 0x00}, {0x5C, 0xE4, 0x30}, {0x45, 0xE0, 0x82},
	{0x48, 0xCD, 0xDE}, {0x4F, 0x4F, 0x4F}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFE, 0xFF}, {0xC0, 0xDF, 0xFF}, {0xD3, 0xD2, 0xFF}, {0xE8, 0xC8, 0xFF},
	{0xFB, 0xC2, 0xFF}, {0xFE, 0xC4, 0xEA}, {0xFE, 0xCC, 0xC5}, {0xF7, 0xD8, 0xA5},
	{0xE4, 0xE5, 0x94}, {0xCF, 0xEF, 0x96}, {0xBD, 0xF4, 0xAB}, {0xB3, 0xF3, 0xCC},
	{0xB5, 0xEB, 0xF2}, {0xB8, 0xB8, 0xB8}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
}
