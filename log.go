package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger wraps zerolog for console logging.
type logger struct {
	z zerolog.Logger
}

// newLogger creates a logger writing to stderr.
func newLogger() *logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if fi, err := os.Stderr.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}
	return newLoggerTo(os.Stderr, noColor)
}

func newLoggerTo(w io.Writer, noColor bool) *logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	zl := zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	return &logger{z: zl}
}

// setVerbose enables debug output.
func (l *logger) setVerbose(v bool) {
	if v {
		l.z = l.z.Level(zerolog.DebugLevel)
	}
}

func (l *logger) debug(msg string) { l.z.Debug().Msg(msg) }
func (l *logger) info(msg string)  { l.z.Info().Msg(msg) }
func (l *logger) warn(msg string)  { l.z.Warn().Msg(msg) }
func (l *logger) ok(msg string)    { l.z.Info().Msg(msg) }
func (l *logger) err(msg string)   { l.z.Error().Msg(msg) }

func (l *logger) debugf(format string, args ...any) { l.debug(fmt.Sprintf(format, args...)) }
func (l *logger) infof(format string, args ...any)  { l.info(fmt.Sprintf(format, args...)) }
func (l *logger) warnf(format string, args ...any)  { l.warn(fmt.Sprintf(format, args...)) }
func (l *logger) okf(format string, args ...any)    { l.ok(fmt.Sprintf(format, args...)) }
