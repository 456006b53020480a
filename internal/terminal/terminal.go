// Package terminal inspects the output stream the CLI writes to. The
// rendering packages never call it; they take the results as parameters.
package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/arthur-debert/outstanding/pkg/logging"
	"github.com/arthur-debert/outstanding/pkg/theme"
)

// DefaultWidth is used when the width cannot be detected.
const DefaultWidth = 80

// Info describes an output stream.
type Info struct {
	IsTTY         bool
	SupportsColor bool
	Profile       termenv.Profile
	Width         int
	ColorMode     theme.ColorMode
}

// Detect inspects f. Background detection queries the terminal, so it only
// runs when f is a color-capable TTY; otherwise ColorMode is Dark.
func Detect(f *os.File) Info {
	tty := IsTerminal(f)
	out := termenv.NewOutput(f)
	profile := out.EnvColorProfile()

	info := Info{
		IsTTY:         tty,
		SupportsColor: supportsColor(os.Getenv("NO_COLOR"), tty, profile),
		Profile:       profile,
		Width:         Width(f),
		ColorMode:     theme.Dark,
	}
	if info.SupportsColor && tty && !out.HasDarkBackground() {
		info.ColorMode = theme.Light
	}

	logger := logging.GetLogger("terminal")
	logger.Debug().
		Bool("tty", info.IsTTY).
		Bool("color", info.SupportsColor).
		Int("profile", int(info.Profile)).
		Int("width", info.Width).
		Str("colorMode", info.ColorMode.String()).
		Msg("Detected terminal")
	return info
}

// IsTerminal reports whether f is a terminal, Cygwin terminals included.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SupportsColor reports whether styles should be applied when writing to f.
func SupportsColor(f *os.File) bool {
	return supportsColor(os.Getenv("NO_COLOR"), IsTerminal(f), termenv.NewOutput(f).EnvColorProfile())
}

func supportsColor(noColor string, tty bool, profile termenv.Profile) bool {
	if noColor != "" {
		return false
	}
	if !tty {
		return false
	}
	return profile != termenv.Ascii
}

// Width returns the column count of the terminal behind f, then $COLUMNS,
// then DefaultWidth.
func Width(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	return widthFromEnv(os.Getenv("COLUMNS"))
}

func widthFromEnv(columns string) int {
	if n, err := strconv.Atoi(columns); err == nil && n > 0 {
		return n
	}
	return DefaultWidth
}
