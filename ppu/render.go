package ppu

import "nesengine/mem"

// tileBitplane reads one 8x8 tile's two bit-planes from CHR space
// starting at base and interleaves them into palette-index pixels (0-3),
// mirroring cartridge.Cartridge.Sprite's interleave but operating
// against the PPU's own bus rather than a concrete Cartridge, since a
// PPU only ever sees the 0x0000..0x1FFF CHR window of its bus.
func tileBitplane(bus Bus, base uint16) [8][8]uint8 {
	var tile [8][8]uint8
	for row := 0; row < 8; row++ {
		lo := bus.Read8(base + uint16(row))
		hi := bus.Read8(base + uint16(row) + 8)
		for col := 0; col < 8; col++ {
			shift := 7 - col
			loBit := (lo >> shift) & 1
			hiBit := (hi >> shift) & 1
			tile[row][col] = hiBit<<1 | loBit
		}
	}
	return tile
}

func (p *PPU) colorFor(group uint8, index uint8) mem.RGB {
	addr := uint16(0x3F00) | uint16(group)<<2 | uint16(index&3)
	code := p.Bus.Read8(addr) & 0x3F
	return mem.NTSCPalette[code]
}

// RenderPatternTable produces the 128x128 image of all 256 tiles in the
// given CHR pattern table (0 or 1), palette-mapped with the given
// background palette group (0-3).
func (p *PPU) RenderPatternTable(table int, palette uint8) [128][128]mem.RGB {
	var img [128][128]mem.RGB
	base := uint16(table) * 0x1000
	for tile := 0; tile < 256; tile++ {
		tx := (tile % 16) * 8
		ty := (tile / 16) * 8
		bm := tileBitplane(p.Bus, base+uint16(tile)*16)
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				img[ty+row][tx+col] = p.colorFor(palette, bm[row][col])
			}
		}
	}
	return img
}

// RenderNametable walks nametable idx (0-3) and its attribute table,
// returning the 256x240 palette-index grid (pre color lookup) so callers
// can inspect raw tile/attribute resolution as well as full color.
func (p *PPU) RenderNametable(idx uint8) [240][256]uint8 {
	var grid [240][256]uint8
	ntBase := uint16(0x2000) + uint16(idx)*0x400
	attrBase := ntBase + 0x3C0
	patternBase := uint16(p.bgPatternTable()) * 0x1000

	for ty := 0; ty < 30; ty++ {
		for tx := 0; tx < 32; tx++ {
			tileIdx := p.Bus.Read8(ntBase + uint16(ty*32+tx))
			attrByte := p.Bus.Read8(attrBase + uint16((ty/4)*8+(tx/4)))
			quadShift := uint8(0)
			if tx%4 >= 2 {
				quadShift += 2
			}
			if ty%4 >= 2 {
				quadShift += 4
			}
			palGroup := (attrByte >> quadShift) & 0x03

			bm := tileBitplane(p.Bus, patternBase+uint16(tileIdx)*16)
			for row := 0; row < 8; row++ {
				for col := 0; col < 8; col++ {
					py, px := ty*8+row, tx*8+col
					if py < 240 && px < 256 {
						idxVal := bm[row][col]
						grid[py][px] = palGroup<<2 | idxVal
					}
				}
			}
		}
	}
	return grid
}

// RenderBackground composites the current nametable into a full-color
// 256x240 frame, honoring PPUMASK.ShowBackground.
func (p *PPU) RenderBackground() [240][256]mem.RGB {
	var img [240][256]mem.RGB
	if !p.showBackground() {
		return img
	}
	grid := p.RenderNametable(p.NametableIndex())
	for y := 0; y < 240; y++ {
		for x := 0; x < 256; x++ {
			cell := grid[y][x]
			img[y][x] = p.colorFor(cell>>2, cell&3)
		}
	}
	return img
}

// spriteEntry is one 4-byte OAM record.
type spriteEntry struct {
	y, tile, attr, x uint8
}

func (p *PPU) oamEntry(i int) spriteEntry {
	base := i * 4
	return spriteEntry{
		y:    p.OAM[base],
		tile: p.OAM[base+1],
		attr: p.OAM[base+2],
		x:    p.OAM[base+3],
	}
}

// RenderSprites overlays OAM's 64 sprites onto bg in place, honoring
// PPUMASK.ShowSprites, PPUCTRL.SpriteSize and each sprite's priority,
// horizontal/vertical flip and palette-group attribute bits.
func (p *PPU) RenderSprites(bg *[240][256]mem.RGB) {
	if !p.showSprites() {
		return
	}
	height := 8
	if p.spritesAre8x16() {
		height = 16
	}
	for i := 0; i < 64; i++ {
		s := p.oamEntry(i)
		flipH := s.attr&0x40 != 0
		flipV := s.attr&0x80 != 0
		behindBg := s.attr&0x20 != 0
		palGroup := 4 + s.attr&0x03

		tile := s.tile
		table := p.spritePatternTable()
		if height == 16 {
			table = int(tile & 1)
			tile &^= 1
		}

		for row := 0; row < height; row++ {
			effRow := row
			if flipV {
				effRow = height - 1 - row
			}
			half := effRow / 8
			subRow := effRow % 8
			t := tile + uint8(half)

			bm := tileBitplane(p.Bus, uint16(table)*0x1000+uint16(t)*16)
			for col := 0; col < 8; col++ {
				srcCol := col
				if flipH {
					srcCol = 7 - col
				}
				idxVal := bm[subRow][srcCol]
				if idxVal == 0 {
					continue // transparent
				}
				py := int(s.y) + row + 1 // OAM Y is sprite top minus one scanline
				px := int(s.x) + col
				if py < 0 || py >= 240 || px < 0 || px >= 256 {
					continue
				}
				if behindBg && bg[py][px] != (mem.RGB{}) {
					continue
				}
				bg[py][px] = p.colorFor(palGroup, idxVal)
			}
		}
	}
}
