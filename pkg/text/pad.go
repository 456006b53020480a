package text

import (
	"fmt"
	"strings"
)

// Align positions text inside a wider field.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// String returns the string representation of the alignment
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseAlign parses "left", "right" or "center".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	default:
		return AlignLeft, fmt.Errorf("unknown alignment: %s", s)
	}
}

// Pad fills s with spaces up to width columns. Strings already at least
// width wide are returned as is. Center puts the odd space on the right.
func Pad(s string, width int, align Align) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Fit clips or pads s so that it is exactly width columns wide.
func Fit(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	return Pad(Clip(s, width), width, align)
}
