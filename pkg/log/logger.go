package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"conlog/pkg/color"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

var levelStyles = map[Level][]color.Style{
	DebugLevel: {color.Blue},
	LogLevel:   {color.Cyan},
	InfoLevel:  {color.BrightGreen},
	WarnLevel:  {color.Yellow},
}

// failureStyles holds the label and body styles of severe and fatal.
var failureStyles = map[Level]struct{ label, body color.Style }{
	SevereLevel: {label: color.Red, body: color.Yellow},
	FatalLevel:  {label: color.BrightRed, body: color.Red},
}

// NewLogger creates a Logger.
//
// A non-nil opts.Levels is completed in place with DefaultLevels and kept
// without a copy, so later changes to it take effect.
func NewLogger(opts Options) *Logger {
	output, errOutput := opts.Output, opts.ErrOutput
	colorOut, colorErr := color.Enabled(opts.Color, output), color.Enabled(opts.Color, errOutput)
	if output == nil && errOutput == nil {
		colorOut, colorErr = color.Enabled(opts.Color, os.Stdout), color.Enabled(opts.Color, os.Stderr)
		output = color.NewWriter(os.Stdout, opts.Color)
		errOutput = color.NewWriter(os.Stderr, opts.Color)
	} else if output == nil && errOutput != nil {
		output, colorOut = errOutput, colorErr
	} else if output != nil && errOutput == nil {
		errOutput, colorErr = output, colorOut
	}

	levels := opts.Levels
	if levels == nil {
		levels = DefaultLevels()
	} else {
		for level, enabled := range DefaultLevels() {
			if _, ok := levels[level]; !ok {
				levels[level] = enabled
			}
		}
	}

	routes := DefaultRoutes()
	for level, stream := range opts.Routes {
		routes[level] = stream
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Logger{
		name:   opts.Name,
		levels: levels,
		routes: routes,
		outputs: map[Stream]io.Writer{
			Stdout: output,
			Stderr: errOutput,
		},
		color: map[Stream]bool{
			Stdout: colorOut,
			Stderr: colorErr,
		},
		time: !opts.DisableTime,
		now:  now,
	}
}

// Name returns the label the logger was created with.
func (l *Logger) Name() string {
	return l.name
}

// Levels returns the live enabled-levels map.
func (l *Logger) Levels() map[Level]bool {
	return l.levels
}

// Routes returns the live stream routing table.
func (l *Logger) Routes() map[Level]Stream {
	return l.routes
}

// Enabled reports whether lines of level are written.
func (l *Logger) Enabled(level Level) bool {
	return l.levels[level]
}

func (l *Logger) stream(level Level) Stream {
	if s, ok := l.routes[level]; ok && s == Stderr {
		return Stderr
	}
	return Stdout
}

func (l *Logger) paint(stream Stream, s string, styles ...color.Style) string {
	if !l.color[stream] {
		return s
	}
	for _, st := range styles {
		s = st.Apply(s)
	}
	return s
}

func (l *Logger) print(level Level, label string, body string) {
	stream := l.stream(level)
	var b strings.Builder
	if l.time {
		b.WriteString(l.paint(stream, "["+l.now().UTC().Format(timeLayout)+"]", color.Gray))
		b.WriteString(" | ")
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(body)
	b.WriteByte('\n')
	_, _ = io.WriteString(l.outputs[stream], b.String())
}

// join joins a with single spaces.
func join(a ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(a...), "\n")
}

func (l *Logger) plain(level Level, message string) {
	l.print(level, l.paint(l.stream(level), string(level), levelStyles[level]...), message)
}

// failure writes a severe or fatal line. A single error argument is
// written with its name and stack, anything else with the caller's stack.
func (l *Logger) failure(level Level, a []any) {
	if len(a) == 1 {
		if err, ok := a[0].(error); ok && !isNilError(err) {
			l.failureError(level, err)
			return
		}
	}
	l.failureMessage(level, join(a...))
}

func (l *Logger) failureError(level Level, err error) {
	stream, st := l.stream(level), failureStyles[level]
	body := err.Error()
	if stack := errorStack(err); stack != "" {
		body += "\n" + stack
	}
	label := fmt.Sprintf("%s [%s]", level, errorName(err))
	l.print(level, l.paint(stream, label, st.label), l.paint(stream, body, st.body))
}

func (l *Logger) failureMessage(level Level, message string) {
	stream, st := l.stream(level), failureStyles[level]
	body := message + "\n" + l.paint(stream, callerStack(), color.Italic)
	l.print(level, l.paint(stream, string(level), st.label, color.Bold), l.paint(stream, body, st.body))
}

func (l *Logger) Debug(a ...any) {
	if l.levels[DebugLevel] {
		l.plain(DebugLevel, join(a...))
	}
}

func (l *Logger) Log(a ...any) {
	if l.levels[LogLevel] {
		l.plain(LogLevel, join(a...))
	}
}

func (l *Logger) Info(a ...any) {
	if l.levels[InfoLevel] {
		l.plain(InfoLevel, join(a...))
	}
}

func (l *Logger) Warn(a ...any) {
	if l.levels[WarnLevel] {
		l.plain(WarnLevel, join(a...))
	}
}

// Severe logs a severe failure. Pass a single error to log it with its
// own name and stack.
func (l *Logger) Severe(a ...any) {
	if l.levels[SevereLevel] {
		l.failure(SevereLevel, a)
	}
}

// Fatal logs a fatal failure like Severe. It does not exit.
func (l *Logger) Fatal(a ...any) {
	if l.levels[FatalLevel] {
		l.failure(FatalLevel, a)
	}
}

func (l *Logger) Debugf(format string, a ...any) {
	if l.levels[DebugLevel] {
		l.plain(DebugLevel, fmt.Sprintf(format, a...))
	}
}

func (l *Logger) Logf(format string, a ...any) {
	if l.levels[LogLevel] {
		l.plain(LogLevel, fmt.Sprintf(format, a...))
	}
}

func (l *Logger) Infof(format string, a ...any) {
	if l.levels[InfoLevel] {
		l.plain(InfoLevel, fmt.Sprintf(format, a...))
	}
}

func (l *Logger) Warnf(format string, a ...any) {
	if l.levels[WarnLevel] {
		l.plain(WarnLevel, fmt.Sprintf(format, a...))
	}
}

func (l *Logger) Severef(format string, a ...any) {
	if l.levels[SevereLevel] {
		l.failureMessage(SevereLevel, fmt.Sprintf(format, a...))
	}
}

func (l *Logger) Fatalf(format string, a ...any) {
	if l.levels[FatalLevel] {
		l.failureMessage(FatalLevel, fmt.Sprintf(format, a...))
	}
}
