package logger

import (
	"strings"

	"userkit/pkg/env"
)

// Default prefixes for the Dev logger.
const (
	PrefixLog   = "🔧"
	PrefixInfo  = "ℹ️"
	PrefixWarn  = "⚠️"
	PrefixError = "❌"
)

// Options is a single Dev log call.
type Options struct {
	Message string
	// Data is attached as the "data" field when non-nil.
	Data any
	// Prefix replaces the level's default prefix.
	Prefix string
}

// Dev writes only while the environment reports a development build. The
// check runs on every call.
type Dev struct {
	env  *env.Environment
	sink Sugared
}

func NewDev(e *env.Environment, sink Sugared) *Dev {
	return &Dev{env: e, sink: sink}
}

// Log writes at debug level.
func (d *Dev) Log(o Options) { d.write(d.sink.Debugw, PrefixLog, o) }

func (d *Dev) Info(o Options) { d.write(d.sink.Infow, PrefixInfo, o) }

func (d *Dev) Warn(o Options) { d.write(d.sink.Warnw, PrefixWarn, o) }

func (d *Dev) Error(o Options) { d.write(d.sink.Errorw, PrefixError, o) }

func (d *Dev) write(out func(string, ...any), prefix string, o Options) {
	if !d.env.Development() {
		return
	}
	if o.Prefix != "" {
		prefix = o.Prefix
	}
	msg := prefix + " " + o.Message
	if o.Data != nil {
		out(msg, "data", o.Data)
		return
	}
	out(msg)
}

// Level is one of the Leveled logger's levels.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelEmoji = map[Level]string{
	LevelDebug: "🐛",
	LevelInfo:  "ℹ️",
	LevelWarn:  "⚠️",
	LevelError: "❌",
}

// Leveled formats "<emoji> <LEVEL>: <message>" and is gated by
// env.LoggingEnabled, read on every call. Extra args are attached as
// alternating key/value fields.
type Leveled struct {
	env  *env.Environment
	sink Sugared
}

func NewLeveled(e *env.Environment, sink Sugared) *Leveled {
	return &Leveled{env: e, sink: sink}
}

func (l *Leveled) Debug(msg string, kv ...any) { l.log(LevelDebug, msg, kv) }
func (l *Leveled) Info(msg string, kv ...any)  { l.log(LevelInfo, msg, kv) }
func (l *Leveled) Warn(msg string, kv ...any)  { l.log(LevelWarn, msg, kv) }
func (l *Leveled) Error(msg string, kv ...any) { l.log(LevelError, msg, kv) }

func (l *Leveled) log(level Level, msg string, kv []any) {
	if l == nil || !l.env.LoggingEnabled() {
		return
	}
	line := levelEmoji[level] + " " + strings.ToUpper(string(level)) + ": " + msg
	switch level {
	case LevelDebug:
		l.sink.Debugw(line, kv...)
	case LevelInfo:
		l.sink.Infow(line, kv...)
	case LevelWarn:
		l.sink.Warnw(line, kv...)
	default:
		l.sink.Errorw(line, kv...)
	}
}
