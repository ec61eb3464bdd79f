package cartridge

import (
	"bytes"
	"testing"

	"nesengine/ines"
)

func newTestRom(prgBanks, chrBanks int) *ines.Rom {
	rom := new(ines.Rom)
	rom.PRG = make([]byte, prgBanks*16384)
	rom.CHR = make([]byte, chrBanks*8192)
	for i := range rom.PRG {
		rom.PRG[i] = byte(i)
	}
	for i := range rom.CHR {
		rom.CHR[i] = byte(i)
	}
	return rom
}

func TestNROMSingleBankMirrors(t *testing.T) {
	c := &Cartridge{PRG: newTestRom(1, 1).PRG}
	m, err := newNROM(c)
	if err != nil {
		t.Fatal(err)
	}
	c.Mapper = m

	if got, want := c.PRGRead(0x8000), c.PRG[0]; got != want {
		t.Errorf("PRGRead(0x8000) = %#x, want %#x", got, want)
	}
	if got, want := c.PRGRead(0xC000), c.PRG[0]; got != want {
		t.Errorf("PRGRead(0xC000) = %#x, want %#x (single bank mirror)", got, want)
	}
}

func TestNROMWritesDropped(t *testing.T) {
	c := &Cartridge{PRG: newTestRom(1, 1).PRG}
	m, _ := newNROM(c)
	c.Mapper = m
	before := c.PRGRead(0x8000)
	c.PRGWrite(0x8000, before+1)
	if got := c.PRGRead(0x8000); got != before {
		t.Errorf("write to ROM mutated data: got %#x, want %#x", got, before)
	}
}

func TestSpriteBitplaneInterleave(t *testing.T) {
	c := &Cartridge{CHR: make([]byte, 0x2000)}
	m, _ := newNROM(c)
	c.Mapper = m

	// tile 0, row 0: lo-plane bit7=1, hi-plane bit7=1 -> pixel 0 = 0b11 = 3
	c.CHR[0] = 0x80 // lo plane, row 0
	c.CHR[8] = 0x80 // hi plane, row 0

	tile := c.Sprite(0, false)
	if tile[0][0] != 3 {
		t.Errorf("tile[0][0] = %d, want 3", tile[0][0])
	}
	if tile[0][1] != 0 {
		t.Errorf("tile[0][1] = %d, want 0", tile[0][1])
	}
}

func TestLoadUnsupportedMapper(t *testing.T) {
	// Build a minimal header pointing at mapper 1 (unsupported).
	hdr := make([]byte, 16)
	copy(hdr, ines.Magic)
	hdr[4], hdr[5] = 1, 1
	hdr[6] = 0x10 // mapper low nibble = 1
	full := append(hdr, make([]byte, 16384+8192)...)

	r := new(ines.Rom)
	if _, err := r.ReadFrom(bytes.NewReader(full)); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(r); err == nil {
		t.Fatal("expected error loading unsupported mapper")
	}
}
