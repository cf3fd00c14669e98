package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. It discards everything until Init runs.
var Logger = zerolog.Nop()

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init sets up Logger writing human-readable lines to w (stderr if nil).
func Init(level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    w != os.Stderr,
	}).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// For returns a sub-logger tagged with the component name.
func For(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}
