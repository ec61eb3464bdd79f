// Package config loads and saves the CLI's persisted settings, grounded
// on arl-nestor's emu/config.go: a TOML file under an OS-specific config
// directory resolved via kirsle/configdir.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
	"github.com/go-faster/errors"
)

// Config is the full set of persisted CLI defaults.
type Config struct {
	Run     RunConfig     `toml:"run"`
	General GeneralConfig `toml:"general"`
}

// RunConfig holds defaults for the `run` subcommand.
type RunConfig struct {
	Frames    uint64 `toml:"frames"`
	LogModule string `toml:"log_modules"`
}

// GeneralConfig holds settings that apply regardless of subcommand.
type GeneralConfig struct {
	TraceDefault bool   `toml:"trace_default"`
	RomDir       string `toml:"rom_dir"`
}

const cfgFilename = "config.toml"

var dirOnce sync.Once
var dir string

// Dir returns (creating if necessary) the OS-specific directory this
// program's config file lives in.
func Dir() (string, error) {
	var err error
	dirOnce.Do(func() {
		dir = configdir.LocalConfig("nesengine")
		err = configdir.MakePath(dir)
	})
	if err != nil {
		return "", errors.Wrap(err, "create config directory")
	}
	return dir, nil
}

// LoadOrDefault loads the persisted config, falling back to a
// zero-value Config if no file exists yet or it fails to parse.
func LoadOrDefault() Config {
	d, err := Dir()
	if err != nil {
		return Config{}
	}
	var cfg Config
	if _, err := toml.DecodeFile(filepath.Join(d, cfgFilename), &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// Save persists cfg to the config directory.
func Save(cfg Config) error {
	d, err := Dir()
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(d, cfgFilename))
	if err != nil {
		return errors.Wrap(err, "create config file")
	}
	defer f.Close()
	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "encode config")
	}
	return nil
}
