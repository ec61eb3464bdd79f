package system

import "github.com/arl/blip"

// APUStub is a no-op audio processing unit: it accepts every register
// write a real 2A03 exposes and returns open-bus/0 on every read except
// $4015 (which reads back the last value written there), but
// keeps a real mixer buffer pair wired up so the dependency has a
// concrete call site, per the core's design notes that the APU ship as
// "a no-op shim with a stable interface". Register offsets mirror
// arl-nestor's hw/apu.go ($4000-$4013 channels, $4015 status, $4017
// frame counter) without reproducing any of its synthesis.
type APUStub struct {
	pulse1, pulse2 [4]uint8 // $4000-$4003, $4004-$4007
	triangle       [3]uint8 // $4008-$400A
	noise          [3]uint8 // $400C-$400E
	dmc            [4]uint8 // $4010-$4013
	status         uint8    // $4015
	frameCounter   uint8    // $4017

	left, right *blip.Buffer
}

const apuSampleRate = 44100

func NewAPUStub() *APUStub {
	return &APUStub{
		left:  blip.NewBuffer(apuSampleRate / 30),
		right: blip.NewBuffer(apuSampleRate / 30),
	}
}

// Write accepts a write to any address in 0x4000..0x4013 or 0x4015/0x4017.
func (a *APUStub) Write(addr uint16, v uint8) {
	switch {
	case addr >= 0x4000 && addr <= 0x4003:
		a.pulse1[addr-0x4000] = v
	case addr >= 0x4004 && addr <= 0x4007:
		a.pulse2[addr-0x4004] = v
	case addr >= 0x4008 && addr <= 0x400A:
		a.triangle[addr-0x4008] = v
	case addr >= 0x400C && addr <= 0x400E:
		a.noise[addr-0x400C] = v
	case addr >= 0x4010 && addr <= 0x4013:
		a.dmc[addr-0x4010] = v
	case addr == 0x4015:
		a.status = v
	case addr == 0x4017:
		a.frameCounter = v
	}
}

// Read returns the channel-enable status on $4015; every other address
// in the APU's range is write-only on real hardware and returns open
// bus here, approximated as 0.
func (a *APUStub) Read(addr uint16) uint8 {
	if addr == 0x4015 {
		return a.status
	}
	return 0
}

// MixSilence pushes a frame's worth of silence into both mixer buffers,
// exercising the resampling pipeline without ever emitting a delta.
func (a *APUStub) MixSilence(clocks int) {
	a.left.EndFrame(clocks)
	a.right.EndFrame(clocks)
}
