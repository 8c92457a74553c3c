package logging

import (
	"io"
	"strings"

	"github.com/phuslu/log"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

func New(w io.Writer, level, format string) *log.Logger {
	var writer log.Writer
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		writer = &log.IOWriter{Writer: w}
	default:
		writer = &log.ConsoleWriter{
			Writer:         w,
			ColorOutput:    log.IsTerminal(2),
			QuoteString:    true,
			EndWithMessage: true,
		}
	}

	return &log.Logger{
		Level:      log.ParseLevel(strings.ToLower(strings.TrimSpace(level))),
		TimeFormat: "2006-01-02 15:04:05",
		Writer:     writer,
	}
}

// Discard returns a logger that drops everything, for tests and commands
// that must keep stdout clean.
func Discard() *log.Logger {
	return &log.Logger{Level: log.PanicLevel, Writer: &log.IOWriter{Writer: io.Discard}}
}

// With returns a child logger carrying the given string fields on every
// entry, keeping the parent's fields.
func With(parent *log.Logger, kv ...string) *log.Logger {
	child := *parent
	ctx := log.NewContext(append([]byte(nil), parent.Context...))
	for i := 0; i+1 < len(kv); i += 2 {
		ctx = ctx.Str(kv[i], kv[i+1])
	}
	child.Context = ctx.Value()
	return &child
}
