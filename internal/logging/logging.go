// Package logging configures the zerolog logger shared by the binaries.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel   = "SIPFRAME_LOG_LEVEL"
	EnvLogNoColor = "SIPFRAME_LOG_NOCOLOR"
)

// New returns a console logger tagged by the app name, writing into out. The level defaults
// to info and is overridden by EnvLogLevel. The returned logger also becomes the global one.
func New(app string, out io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor(os.Getenv(EnvLogNoColor)),
	}

	logger := zerolog.New(output).
		Level(Level(os.Getenv(EnvLogLevel))).
		With().Timestamp().Str("app", app).Logger()
	log.Logger = logger

	return logger
}

// Level parses the level name, falling back to info if it's empty or unrecognized.
func Level(raw string) zerolog.Level {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if len(raw) == 0 {
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

func noColor(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}
