package ppu

import (
	"testing"

	"nesengine/ines"
	"nesengine/mem"
)

// testBus is a minimal PPU-bus stand-in: CHR backed by flat RAM, VRAM and
// palette backed by the real mem package types. The System's full
// address routing is covered separately.
type testBus struct {
	chr     [0x2000]byte
	vram    *mem.VRAM
	palette mem.Palette
}

func newTestBus() *testBus {
	return &testBus{vram: mem.NewVRAM(ines.VertMirroring)}
}

func (b *testBus) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.chr[addr]
	case addr < 0x3F00:
		return b.vram.Read(addr)
	default:
		return b.palette.Read(addr)
	}
}

func (b *testBus) Write8(addr uint16, v uint8) {
	switch {
	case addr < 0x2000:
		b.chr[addr] = v
	case addr < 0x3F00:
		b.vram.Write(addr, v)
	default:
		b.palette.Write(addr, v)
	}
}

func TestFrameTimingInvariant(t *testing.T) {
	bus := newTestBus()
	p := NewPPU(bus)
	p.Reset()
	for i := 0; i < 1000; i++ {
		p.Tick()
		want := uint64(p.Scanline+1)*NumDots + uint64(p.Dot)
		if p.Cycles() != want {
			t.Fatalf("Cycles() = %d, want %d at iteration %d", p.Cycles(), want, i)
		}
	}
}

func TestVBlankSetsAtScanline241AndRequestsNMI(t *testing.T) {
	bus := newTestBus()
	p := NewPPU(bus)
	p.Reset()
	p.WriteController(0x80) // GenerateNMI

	// Advance until scanline 241 dot 0 has just been entered.
	for p.Scanline != 241 || p.Dot != 0 {
		p.Tick()
		if p.Scanline > 241 {
			t.Fatalf("overshot scanline 241 without observing it")
		}
	}
	if p.status&statusVBlank == 0 {
		t.Fatalf("VBlank not set on entering scanline 241")
	}
	if !p.ConsumeNMI() {
		t.Fatalf("NMI not requested on entering scanline 241 with GenerateNMI set")
	}
}

func TestPreRenderClearsStatusAndMarksFrameComplete(t *testing.T) {
	bus := newTestBus()
	p := NewPPU(bus)
	p.Reset()
	p.status = statusVBlank | statusSprite0 | statusOverflow

	p.Tick() // leave the pre-render position Reset starts at
	for p.Scanline != -1 || p.Dot != 0 {
		p.Tick()
	}
	if p.status != 0 {
		t.Fatalf("status = %#02x, want 0 after entering pre-render", p.status)
	}
	if !p.FrameCompleted {
		t.Fatalf("FrameCompleted not set on entering pre-render")
	}
}

func TestPaletteMirrorThroughBus(t *testing.T) {
	bus := newTestBus()
	p := NewPPU(bus)
	p.Reset()
	p.WriteAddress(0x3F)
	p.WriteAddress(0x10)
	p.WriteData(0x2A)

	p.WriteAddress(0x3F)
	p.WriteAddress(0x00)
	if got := p.ReadData(); got != 0x2A {
		t.Fatalf("ReadData() = %#02x, want 0x2A (0x3F10 mirrors 0x3F00)", got)
	}
}

func TestDataReadIsBufferedExceptForPalette(t *testing.T) {
	bus := newTestBus()
	p := NewPPU(bus)
	p.Reset()
	bus.vram.Write(0x2000, 0x77)

	p.WriteAddress(0x20)
	p.WriteAddress(0x00)
	first := p.ReadData()
	if first == 0x77 {
		t.Fatalf("first ReadData() returned the target byte immediately; want the stale buffered byte")
	}
	second := p.ReadData() // now past 0x2000, but buffer should now hold 0x77
	if second != 0x77 {
		t.Fatalf("second ReadData() = %#02x, want 0x77 (buffered from the first read)", second)
	}
}

func TestDataReadPaletteIsImmediate(t *testing.T) {
	bus := newTestBus()
	p := NewPPU(bus)
	p.Reset()
	bus.palette.Write(0x3F00, 0x11)

	p.WriteAddress(0x3F)
	p.WriteAddress(0x00)
	if got := p.ReadData(); got != 0x11 {
		t.Fatalf("ReadData() over palette range = %#02x, want 0x11 on the very next read", got)
	}
}

func TestScrollWriteTwoStep(t *testing.T) {
	bus := newTestBus()
	p := NewPPU(bus)
	p.Reset()
	p.WriteScroll(0x11) // coarseX=2, fineX=1
	if p.coarseX != 2 || p.fineX != 1 {
		t.Fatalf("coarseX=%d fineX=%d, want 2,1", p.coarseX, p.fineX)
	}
	p.WriteScroll(0x22) // coarseY=4, fineY=2
	if p.coarseY != 4 || p.fineY != 2 {
		t.Fatalf("coarseY=%d fineY=%d, want 4,2", p.coarseY, p.fineY)
	}
}

func TestOAMDataWriteIncrementsAddr(t *testing.T) {
	bus := newTestBus()
	p := NewPPU(bus)
	p.Reset()
	p.WriteOAMAddr(0xFE)
	p.WriteOAMData(0x11)
	p.WriteOAMData(0x22) // wraps to 0xFF then 0x00
	if p.OAM[0xFE] != 0x11 || p.OAM[0xFF] != 0x22 {
		t.Fatalf("OAM[0xFE]=%#02x OAM[0xFF]=%#02x, want 0x11,0x22", p.OAM[0xFE], p.OAM[0xFF])
	}
	if p.oamAddr != 0x00 {
		t.Fatalf("oamAddr = %#02x, want 0x00 after wrapping", p.oamAddr)
	}
}

func TestIncrementModeStepsBy32(t *testing.T) {
	bus := newTestBus()
	p := NewPPU(bus)
	p.Reset()
	p.WriteController(0x04) // IncrementMode
	p.WriteAddress(0x20)
	p.WriteAddress(0x00)
	p.ReadData()
	if p.vramAddr != 0x2020 {
		t.Fatalf("vramAddr = %#04x, want 0x2020 after a +32 increment", p.vramAddr)
	}
}
