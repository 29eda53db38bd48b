// Package log is a leveled console logger.
package log

import (
	"io"
	"strings"
	"time"

	"conlog/pkg/color"

	"github.com/pkg/errors"
)

// Level is a severity level.
type Level string

const (
	DebugLevel  Level = "debug"
	LogLevel    Level = "log"
	InfoLevel   Level = "info"
	WarnLevel   Level = "warn"
	SevereLevel Level = "severe"
	FatalLevel  Level = "fatal"
)

var levels = []Level{DebugLevel, LogLevel, InfoLevel, WarnLevel, SevereLevel, FatalLevel}

// Levels returns every level, least important first.
func Levels() []Level {
	return append([]Level(nil), levels...)
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, level := range levels {
		if l == level {
			return level, nil
		}
	}
	return "", errors.Errorf("unknown log level %q", s)
}

// Stream is the console stream a level is written to.
type Stream string

const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// ParseStream parses stdout or stderr.
func ParseStream(s string) (Stream, error) {
	switch st := Stream(strings.ToLower(strings.TrimSpace(s))); st {
	case Stdout, Stderr:
		return st, nil
	}
	return "", errors.Errorf("unknown stream %q", s)
}

// DefaultLevels enables every level.
func DefaultLevels() map[Level]bool {
	m := make(map[Level]bool, len(levels))
	for _, level := range levels {
		m[level] = true
	}
	return m
}

// DefaultRoutes gives each level its conventional stream.
func DefaultRoutes() map[Level]Stream {
	return map[Level]Stream{
		DebugLevel:  Stdout,
		LogLevel:    Stdout,
		InfoLevel:   Stdout,
		WarnLevel:   Stderr,
		SevereLevel: Stderr,
		FatalLevel:  Stderr,
	}
}

// LegacyRoutes sends info and warn to the stream of the log level.
func LegacyRoutes() map[Level]Stream {
	m := DefaultRoutes()
	m[InfoLevel] = m[LogLevel]
	m[WarnLevel] = m[LogLevel]
	return m
}

// LoggerInterface is implemented by Logger.
type LoggerInterface interface {
	Debug(a ...any)
	Log(a ...any)
	Info(a ...any)
	Warn(a ...any)
	Severe(a ...any)
	Fatal(a ...any)
	Debugf(format string, a ...any)
	Logf(format string, a ...any)
	Infof(format string, a ...any)
	Warnf(format string, a ...any)
	Severef(format string, a ...any)
	Fatalf(format string, a ...any)
}

// Options configures a Logger. The zero value enables every level and
// writes to the console.
type Options struct {
	Name        string
	Levels      map[Level]bool
	Routes      map[Level]Stream
	Output      io.Writer
	ErrOutput   io.Writer
	Color       color.Mode
	DisableTime bool
	Now         func() time.Time
}

// Logger writes leveled lines to the console streams.
type Logger struct {
	name    string
	levels  map[Level]bool
	routes  map[Level]Stream
	outputs map[Stream]io.Writer
	color   map[Stream]bool
	time    bool
	now     func() time.Time
}
