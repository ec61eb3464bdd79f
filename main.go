package main

import (
	"fmt"
	"os"

	"github.com/go-faster/jx"

	"nesengine/config"
	"nesengine/elog"
	"nesengine/ines"
	"nesengine/system"
)

func main() {
	cli, ctx, cfg := parseArgs(os.Args[1:])

	switch ctx.Command() {
	case "run <rom>":
		runRom(cli.Run, cfg)
	case "rom-info <rom>":
		romInfo(cli.RomInfo, cfg)
	}
}

// runRom loads rom, powers the system up, and either runs it to a frame
// budget or, with no budget given, until it traps on an illegal opcode.
// With --trace set, every retired instruction is disassembled to the
// trace sink before it executes, mirroring the teacher's RunDisasm path.
// A completed, explicitly-bounded run persists its frame budget so the
// next invocation reuses it by default.
func runRom(cmd RunCmd, cfg config.Config) {
	path, err := resolveRomPath(cmd.RomPath, cfg)
	checkf(err, "failed to locate rom")

	rom, err := ines.Open(path)
	checkf(err, "failed to open rom")

	sys, err := system.NewSystem(rom)
	checkf(err, "failed to power up cartridge")
	sys.Reset()

	if cmd.Trace != nil {
		defer cmd.Trace.Close()
	}

	var frames uint64
	tracedAt := ^uint64(0) // CPU cycle count at the last trace line
	for {
		if cmd.Trace != nil && sys.CPU.Idle() && sys.CPU.Cycles != tracedAt {
			tracedAt = sys.CPU.Cycles
			line, _ := sys.CPU.Disassemble(sys.CPU.PC)
			fmt.Fprintln(cmd.Trace, line)
		}

		sys.Cycle()

		if sys.CPU.Err != nil {
			elog.ModSystem.FatalZ("cpu trapped").Err(sys.CPU.Err).End()
			fatalf("run aborted: %s", sys.CPU.Err)
		}
		if sys.PPU.FrameCompleted {
			frames++
			if cmd.Frames != 0 && frames >= cmd.Frames {
				break
			}
		}
	}

	if cmd.Frames != 0 && cmd.Frames != cfg.Run.Frames {
		cfg.Run.Frames = cmd.Frames
		if err := config.Save(cfg); err != nil {
			elog.ModSystem.WarnZ("failed to save config").Err(err).End()
		}
	}
}

// romInfo decodes rom's iNES header and prints it as JSON.
func romInfo(cmd RomInfoCmd, cfg config.Config) {
	path, err := resolveRomPath(cmd.RomPath, cfg)
	checkf(err, "failed to locate rom")

	rom, err := ines.Open(path)
	checkf(err, "failed to open rom")

	w := jx.Writer{}
	w.ObjStart()
	w.FieldStart("mapper")
	w.UInt8(rom.Mapper())
	w.FieldStart("mirroring")
	w.Str(mirroringName(rom.Mirroring()))
	w.FieldStart("prg_banks")
	w.Int(rom.PRGBanks())
	w.FieldStart("chr_banks")
	w.Int(rom.CHRBanks())
	w.FieldStart("has_trainer")
	w.Bool(rom.HasTrainer())
	w.FieldStart("has_persistent_memory")
	w.Bool(rom.HasPersistent())
	w.FieldStart("is_nes20")
	w.Bool(rom.IsNES20())
	w.ObjEnd()

	os.Stdout.Write(w.Buf)
	fmt.Println()
}

func mirroringName(m ines.NTMirroring) string {
	switch m {
	case ines.HorzMirroring:
		return "horizontal"
	case ines.VertMirroring:
		return "vertical"
	case ines.FourScreen:
		return "four-screen"
	case ines.OnlyAScreen:
		return "single-screen-a"
	case ines.OnlyBScreen:
		return "single-screen-b"
	default:
		return "unknown"
	}
}
