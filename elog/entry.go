package elog

import (
	"fmt"

	"gopkg.in/Sirupsen/logrus.v0"
)

// Entry is a nullable *logrus.Entry builder: when the owning module is
// disabled at the requested level, every chained call is a cheap no-op
// and no field is ever formatted.
type Entry struct {
	mod    Module
	level  logrus.Level
	msg    string
	active bool
	fields logrus.Fields
}

func newEntry(mod Module, level logrus.Level, msg string) *Entry {
	return &Entry{mod: mod, level: level, msg: msg, active: mod.enabled(level), fields: logrus.Fields{}}
}

// DebugZ, InfoZ, WarnZ, ErrorZ and FatalZ start a chain-call builder,
// matching the teacher's chained structured field style
// (emu/log/fields.go). A disabled entry formats no fields, but each call
// still allocates the Entry and its field map.
func (m Module) DebugZ(msg string) *Entry { return newEntry(m, logrus.DebugLevel, msg) }
func (m Module) InfoZ(msg string) *Entry  { return newEntry(m, logrus.InfoLevel, msg) }
func (m Module) WarnZ(msg string) *Entry  { return newEntry(m, logrus.WarnLevel, msg) }
func (m Module) ErrorZ(msg string) *Entry { return newEntry(m, logrus.ErrorLevel, msg) }
func (m Module) FatalZ(msg string) *Entry { return newEntry(m, logrus.FatalLevel, msg) }

func (e *Entry) String(key, val string) *Entry {
	if e.active {
		e.fields[key] = val
	}
	return e
}

func (e *Entry) Uint16(key string, val uint16) *Entry {
	if e.active {
		e.fields[key] = val
	}
	return e
}

func (e *Entry) Hex8(key string, val uint8) *Entry {
	if e.active {
		e.fields[key] = fmt.Sprintf("%02x", val)
	}
	return e
}

func (e *Entry) Hex16(key string, val uint16) *Entry {
	if e.active {
		e.fields[key] = fmt.Sprintf("%04x", val)
	}
	return e
}

func (e *Entry) Err(err error) *Entry {
	if e.active {
		e.fields["err"] = err
	}
	return e
}

// End flushes the entry to logrus. A no-op if the module/level pair was
// disabled at construction time.
func (e *Entry) End() {
	if !e.active {
		return
	}
	final := logrus.WithField("_mod", e.mod.String()).WithFields(e.fields)
	switch e.level {
	case logrus.DebugLevel:
		final.Debug(e.msg)
	case logrus.InfoLevel:
		final.Info(e.msg)
	case logrus.WarnLevel:
		final.Warn(e.msg)
	case logrus.ErrorLevel:
		final.Error(e.msg)
	case logrus.FatalLevel:
		final.Fatal(e.msg)
	}
}
