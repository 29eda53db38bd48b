// Package color renders VT100 color codes and picks console writers
// which can display them.
package color

import (
	"io"
	"os"
	"strings"

	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Style is a pair of VT100 codes which switch an attribute on and off.
type Style struct {
	open  string
	close string
}

func style(open, close string) Style {
	return Style{open: "\x1b[" + open + "m", close: "\x1b[" + close + "m"}
}

// VT100 styles
var (
	Bold   = style("1", "22")
	Italic = style("3", "23")

	Red    = style("31", "39")
	Green  = style("32", "39")
	Yellow = style("33", "39")
	Blue   = style("34", "39")
	Cyan   = style("36", "39")
	Gray   = style("90", "39")

	BrightRed   = style("91", "39")
	BrightGreen = style("92", "39")
)

// Apply wraps s in the style. A nested close code of the same kind
// re-opens the style so the rest of s keeps it.
func (st Style) Apply(s string) string {
	return st.open + strings.ReplaceAll(s, st.close, st.close+st.open) + st.close
}

// Mode controls when colors are written.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode parses auto, always or never, case-insensitively. An empty
// string is auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	}
	return "", errors.Errorf("unknown color mode %q", s)
}

// String implements pflag.Value
func (m *Mode) String() string {
	if *m == "" {
		return string(ModeAuto)
	}
	return string(*m)
}

// Set implements pflag.Value
func (m *Mode) Set(s string) error {
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Type implements pflag.Value
func (m *Mode) Type() string {
	return "mode"
}

// Enabled reports whether escape codes should be written to w.
//
// In auto mode that is only when w is a terminal and NO_COLOR is unset.
func Enabled(mode Mode, w io.Writer) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewWriter wraps f so escape codes work on every platform, or are
// stripped when colors are disabled for it.
func NewWriter(f *os.File, mode Mode) io.Writer {
	if Enabled(mode, f) {
		return colorable.NewColorable(f)
	}
	return colorable.NewNonColorable(f)
}
