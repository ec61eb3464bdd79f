// Package ines decodes the iNES ROM file format used to distribute NES
// binary programs, per the byte-exact layout in section 6 of the core
// specification this emulator implements.
package ines

import (
	"io"
	"os"

	"github.com/go-faster/errors"
)

// NTMirroring selects how the PPU's two physical nametable pages are
// mapped onto the four logical nametable slots.
type NTMirroring uint8

const (
	HorzMirroring NTMirroring = iota
	VertMirroring
	FourScreen
	OnlyAScreen
	OnlyBScreen
)

const Magic = "NES\x1a"

// Rom holds a fully decoded iNES cartridge image.
type Rom struct {
	header
	Trainer []byte // 512 bytes if present, else empty.
	PRG     []byte // length is a multiple of 16 KiB.
	CHR     []byte // length is a multiple of 8 KiB (may be empty for CHR-RAM carts).
}

type header struct {
	raw   [16]byte
	prgsz int
	chrsz int
}

// Open reads and decodes a ROM from the given path.
func Open(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open rom %q", path)
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, errors.Wrapf(err, "decode rom %q", path)
	}
	return rom, nil
}

// ReadFrom implements io.ReaderFrom.
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, "read rom data")
	}

	var off int
	if err := rom.decode(buf); err != nil {
		return 0, errors.Wrap(err, "decode header")
	}
	off += 16

	if rom.HasTrainer() {
		if len(buf) < off+512 {
			return 0, errors.New("incomplete TRAINER section")
		}
		rom.Trainer = buf[off : off+512]
		off += 512
	}

	if len(buf) < off+rom.prgsz {
		return 0, errors.New("incomplete PRG section")
	}
	rom.PRG = buf[off : off+rom.prgsz]
	off += rom.prgsz

	if len(buf) < off+rom.chrsz {
		return 0, errors.New("incomplete CHR section")
	}
	rom.CHR = buf[off : off+rom.chrsz]
	off += rom.chrsz

	return int64(len(buf)), nil
}

func (hdr *header) decode(p []byte) error {
	if len(p) < 16 {
		return errors.New("file too small: needs at least 16 bytes")
	}
	if string(p[:4]) != Magic {
		return errors.New("invalid magic number")
	}
	copy(hdr.raw[:], p[:16])

	hdr.prgsz = int(hdr.raw[4]) * 16384
	hdr.chrsz = int(hdr.raw[5]) * 8192
	return nil
}

// HasTrainer reports the presence of a 512-byte trainer section.
func (hdr *header) HasTrainer() bool { return hdr.raw[6]&0x04 != 0 }

// HasPersistent reports the presence of battery-backed persistent memory.
func (hdr *header) HasPersistent() bool { return hdr.raw[6]&0x02 != 0 }

// IsNES20 reports whether this header uses the NES 2.0 extension
// (bits 2-3 of byte 7 equal 0b10). NES 2.0 ROMs are not supported.
func (hdr *header) IsNES20() bool { return hdr.raw[7]&0x0C == 0x08 }

// Mapper returns the full 8-bit iNES mapper number (low nibble from byte 6,
// high nibble from byte 7).
func (hdr *header) Mapper() uint8 {
	return (hdr.raw[6] >> 4) | (hdr.raw[7] & 0xF0)
}

// Mirroring returns the nametable mirroring mode encoded in the header.
func (hdr *header) Mirroring() NTMirroring {
	if hdr.raw[6]&0x08 != 0 {
		return FourScreen
	}
	if hdr.raw[6]&0x01 != 0 {
		return VertMirroring
	}
	return HorzMirroring
}

// PRGBanks returns the number of 16 KiB PRG-ROM banks.
func (hdr *header) PRGBanks() int { return int(hdr.raw[4]) }

// CHRBanks returns the number of 8 KiB CHR-ROM banks (0 means CHR-RAM).
func (hdr *header) CHRBanks() int { return int(hdr.raw[5]) }
