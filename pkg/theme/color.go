package theme

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/muesli/termenv"
)

// Color is a color specification: a name ("green", "bright-red"), an ANSI
// index ("0" to "255"), or a hex RGB value ("#ff8800" or "#f80").
type Color string

var namedColors = map[string]int{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"bright-black":   8,
	"gray":           8,
	"grey":           8,
	"bright-red":     9,
	"bright-green":   10,
	"bright-yellow":  11,
	"bright-blue":    12,
	"bright-magenta": 13,
	"bright-cyan":    14,
	"bright-white":   15,
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// index returns the ANSI index for named and numeric colors.
func (c Color) index() (int, bool) {
	key := strings.ReplaceAll(strings.ToLower(string(c)), "_", "-")
	if idx, ok := namedColors[key]; ok {
		return idx, true
	}
	if n, err := strconv.Atoi(string(c)); err == nil && n >= 0 && n <= 255 {
		return n, true
	}
	return 0, false
}

// Validate reports whether c is a color this package understands.
func (c Color) Validate() error {
	if c == "" {
		return nil
	}
	if _, ok := c.index(); ok {
		return nil
	}
	if hexColor.MatchString(string(c)) {
		return nil
	}
	return errors.Newf(errors.ErrInvalidColor, "invalid color %q", string(c)).
		WithDetail("color", string(c))
}

// termenv converts c to a termenv color, or nil for unset or unknown colors.
func (c Color) termenv() termenv.Color {
	if c == "" {
		return nil
	}
	if idx, ok := c.index(); ok {
		if idx < 16 {
			return termenv.ANSIColor(idx)
		}
		return termenv.ANSI256Color(idx)
	}
	if hexColor.MatchString(string(c)) {
		return termenv.RGBColor(expandHex(string(c)))
	}
	return nil
}

// lipgloss returns the value lipgloss.Color expects: an ANSI index or a hex
// string.
func (c Color) lipgloss() string {
	if idx, ok := c.index(); ok {
		return strconv.Itoa(idx)
	}
	return expandHex(string(c))
}

func expandHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
}
