// Package elog is a small module-gated wrapper around logrus, grounded
// on arl-nestor's emu/log package: CPU-instruction-level tracing is on
// the hottest path in this program, so every level below Warn is gated
// by a bitmask check before any field closure runs.
package elog

import "gopkg.in/Sirupsen/logrus.v0"

// Module identifies a log source so it can be selectively enabled via
// the CLI's --log flag.
type Module uint

const (
	ModSystem Module = iota
	ModCPU
	ModPPU
	ModCartridge
	ModAPU

	endModules
)

// ModuleMask is a bitset over Module values.
type ModuleMask uint64

const ModuleMaskAll ModuleMask = 1<<uint(endModules) - 1

var modNames = [...]string{"system", "cpu", "ppu", "cartridge", "apu"}

var activeMask ModuleMask

// ModuleByName resolves one of modNames (as used by --log cpu,ppu); ok is
// false for an unrecognized name.
func ModuleByName(name string) (Module, bool) {
	for i, n := range modNames {
		if n == name {
			return Module(i), true
		}
	}
	return 0, false
}

// EnableModules ORs mask into the set of modules whose Debug-level calls
// actually reach logrus, and lowers logrus's own level to Debug so those
// calls are printed.
func EnableModules(mask ModuleMask) {
	activeMask |= mask
	if activeMask != 0 {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// DisableModules clears mask from the active set.
func DisableModules(mask ModuleMask) { activeMask &^= mask }

func (m Module) Mask() ModuleMask { return 1 << ModuleMask(m) }

// enabled reports whether this module should log at the given logrus
// level. Warn and above always pass; Debug/Info are gated by activeMask
// so that disabled trace lines cost nothing beyond this one bit test.
func (m Module) enabled(level logrus.Level) bool {
	if level <= logrus.WarnLevel {
		return true
	}
	return activeMask&m.Mask() != 0
}

func (m Module) String() string {
	if int(m) < len(modNames) {
		return modNames[m]
	}
	return "<unknown>"
}
