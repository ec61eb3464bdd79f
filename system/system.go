// Package system wires a CPU, a PPU, cartridge-backed memory and the
// stubbed controller/APU peripherals into the single-threaded console
// described by the core's memory map and master clock.
//
// Grounded on arl-nestor's root nes.go (the PowerUp/Reset/Run shape) and
// emu/mem.go's range-dispatching MemMap/MemRegion, reworked from a
// generic radix-tree router into two small purpose-built bus adapters
// since every range this System dispatches is static and known at
// construction time.
package system

import (
	"nesengine/cartridge"
	"nesengine/cpu"
	"nesengine/ines"
	"nesengine/mem"
	"nesengine/ppu"

	"github.com/go-faster/errors"
)

// System owns every sub-component and is the sole mutator of shared
// state; CPU and PPU reach it only through the narrow cpu.Bus/ppu.Bus
// interfaces passed in at construction, never through a literal
// back-pointer, avoiding a cyclic ownership dependency.
type System struct {
	RAM     *mem.RAM
	VRAM    *mem.VRAM
	Palette mem.Palette
	Cart    *cartridge.Cartridge

	CPU *cpu.CPU
	PPU *ppu.PPU

	Controllers [2]*Controller
	APU         *APUStub

	clockCounter  uint64
	apuClockCount int
}

// NewSystem decodes rom, constructs a mapper for it, and wires the full
// CPU/PPU/memory graph. It does not reset the CPU or PPU; call Reset
// before the first Cycle()/RunUntilFrame().
func NewSystem(rom *ines.Rom) (*System, error) {
	cart, err := cartridge.Load(rom)
	if err != nil {
		return nil, errors.Wrap(err, "load cartridge")
	}

	sys := &System{
		RAM:  mem.NewRAM(0x0800),
		VRAM: mem.NewVRAM(cart.Mirroring),
		Cart: cart,
		APU:  NewAPUStub(),
	}
	sys.Controllers[0] = NewController()
	sys.Controllers[1] = NewController()
	sys.CPU = cpu.NewCPU((*cpuBus)(sys))
	sys.PPU = ppu.NewPPU((*ppuBus)(sys))
	return sys, nil
}

// Reset forwards the reset signal to the CPU and PPU.
func (s *System) Reset() {
	s.CPU.Reset()
	s.PPU.Reset()
	s.clockCounter = 0
	s.apuClockCount = 0
}

// SetButton forwards a button press/release to the controller plugged
// into the given port (0 or 1).
func (s *System) SetButton(port int, b Button, pressed bool) {
	s.Controllers[port].SetButton(b, pressed)
}

// Cycle advances exactly one master cycle: the PPU ticks every cycle,
// the CPU ticks every fourth, and a pending PPU NMI is delivered to the
// CPU immediately after — in that order, since reversing PPU/CPU
// ordering would let an NMI fire in the same cycle VBlank is set. On the
// cycle a frame completes, the APU stub's mixer buffers are advanced by
// the CPU-clock count accumulated over that frame, keeping blip's
// resampling state consistent even though no channel ever emits a delta.
func (s *System) Cycle() {
	s.PPU.Tick()
	if s.clockCounter%4 == 0 {
		s.CPU.Cycle()
		s.apuClockCount++
	}
	if s.PPU.ConsumeNMI() {
		s.CPU.NMI()
	}
	s.clockCounter++

	if s.PPU.FrameCompleted {
		s.APU.MixSilence(s.apuClockCount)
		s.apuClockCount = 0
	}
}

// RunUntilFrame repeats Cycle until the PPU reports a completed frame.
func (s *System) RunUntilFrame() {
	for {
		s.Cycle()
		if s.PPU.FrameCompleted {
			return
		}
	}
}
