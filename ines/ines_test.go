package ines

import (
	"bytes"
	"testing"
)

func buildHeader(prgBanks, chrBanks, flags6, flags7 byte) []byte {
	h := make([]byte, 16)
	copy(h, Magic)
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestDecodeBasicNROM(t *testing.T) {
	h := buildHeader(2, 1, 0x01, 0x00) // vertical mirroring, mapper 0
	body := append(h, make([]byte, 2*16384+8192)...)

	rom := new(Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(body)); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(rom.PRG) != 2*16384 {
		t.Errorf("PRG len = %d, want %d", len(rom.PRG), 2*16384)
	}
	if len(rom.CHR) != 8192 {
		t.Errorf("CHR len = %d, want %d", len(rom.CHR), 8192)
	}
	if rom.Mapper() != 0 {
		t.Errorf("Mapper() = %d, want 0", rom.Mapper())
	}
	if rom.Mirroring() != VertMirroring {
		t.Errorf("Mirroring() = %v, want VertMirroring", rom.Mirroring())
	}
}

func TestDecodeBadMagic(t *testing.T) {
	body := bytes.Repeat([]byte{0x00}, 16)
	rom := new(Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(body)); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestDecodeTruncatedPRG(t *testing.T) {
	h := buildHeader(1, 1, 0, 0)
	rom := new(Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(h)); err == nil {
		t.Fatal("expected error for truncated PRG section")
	}
}

func TestMapperHighNibble(t *testing.T) {
	h := buildHeader(1, 1, 0x10, 0x40) // mapper low nibble 1, high nibble 4 -> mapper 65
	body := append(h, make([]byte, 16384+8192)...)
	rom := new(Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(body)); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if got, want := rom.Mapper(), uint8(65); got != want {
		t.Errorf("Mapper() = %d, want %d", got, want)
	}
}

func TestFourScreenOverridesMirrorBit(t *testing.T) {
	h := buildHeader(1, 1, 0x09, 0) // bit0 (vertical) + bit3 (four-screen)
	body := append(h, make([]byte, 16384+8192)...)
	rom := new(Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(body)); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if rom.Mirroring() != FourScreen {
		t.Errorf("Mirroring() = %v, want FourScreen", rom.Mirroring())
	}
}
