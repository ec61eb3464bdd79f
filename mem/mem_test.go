package mem

import (
	"testing"

	"nesengine/ines"
)

func TestRAMMirroring(t *testing.T) {
	r := NewRAM(0x0800)
	r.Write(0x0000, 0x42)
	for n := 0; n < 4; n++ {
		a := uint16(0x0800 * n)
		if got := r.Read(a); got != 0x42 {
			t.Errorf("Read(%#x) = %#x, want 0x42", a, got)
		}
	}
}

func TestRAMInvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-power-of-two size")
		}
	}()
	NewRAM(300)
}

func TestPaletteMirror(t *testing.T) {
	p := &Palette{}
	p.Write(0x10, 0x2A)
	if got := p.Read(0x00); got != 0x2A {
		t.Errorf("Read(0x00) = %#x, want 0x2A", got)
	}
	p.Write(0x1C, 0x11)
	if got := p.Read(0x0C); got != 0x11 {
		t.Errorf("Read(0x0C) = %#x, want 0x11", got)
	}
}

func TestVRAMVerticalMirroring(t *testing.T) {
	v := NewVRAM(ines.VertMirroring)
	for k := uint16(0); k < 0x400; k += 0x37 {
		v.Write(0x2000+k, byte(k))
		if got, want := v.Read(0x2800+k), byte(k); got != want {
			t.Errorf("vertical: Read(0x2800+%#x) = %#x, want %#x", k, got, want)
		}
	}
}

func TestVRAMHorizontalMirroring(t *testing.T) {
	v := NewVRAM(ines.HorzMirroring)
	for k := uint16(0); k < 0x400; k += 0x41 {
		v.Write(0x2000+k, byte(k))
		if got, want := v.Read(0x2400+k), byte(k); got != want {
			t.Errorf("horizontal: Read(0x2400+%#x) = %#x, want %#x", k, got, want)
		}
	}
}
