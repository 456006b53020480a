package text

import "fmt"

// Position selects which part of a string Truncate removes.
type Position int

const (
	// End keeps the beginning of the string.
	End Position = iota
	// Start keeps the end of the string.
	Start
	// Middle keeps both ends and drops the center.
	Middle
)

// String returns the string representation of the position
func (p Position) String() string {
	switch p {
	case End:
		return "end"
	case Start:
		return "start"
	case Middle:
		return "middle"
	default:
		return "unknown"
	}
}

// ParsePosition parses "end", "start" or "middle".
func ParsePosition(s string) (Position, error) {
	switch s {
	case "end", "":
		return End, nil
	case "start":
		return Start, nil
	case "middle":
		return Middle, nil
	default:
		return End, fmt.Errorf("unknown truncate position: %s", s)
	}
}

// DefaultEllipsis is appended by truncation when callers do not pick one.
const DefaultEllipsis = "…"

// Truncate shortens s to at most max columns, marking the cut with
// ellipsis. Strings that already fit are returned unchanged. When max is
// not wider than the ellipsis, the ellipsis itself is clipped to max.
//
// Escape sequences inside the kept fragments survive; those in the removed
// part are dropped, and a fragment that leaves colors on is closed with a
// reset so styling never crosses the cut.
func Truncate(s string, max int, ellipsis string, pos Position) string {
	if max <= 0 {
		return ""
	}
	if Width(s) <= max {
		return s
	}

	ew := Width(ellipsis)
	if max <= ew {
		return Clip(ellipsis, max)
	}

	budget := max - ew
	switch pos {
	case Start:
		return ellipsis + keepSuffix(s, budget)
	case Middle:
		head := (budget + 1) / 2
		tail := budget / 2
		return keepPrefix(s, head) + ellipsis + keepSuffix(s, tail)
	default:
		return keepPrefix(s, budget) + ellipsis
	}
}

// Clip cuts s to at most max columns without any marker.
func Clip(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Width(s) <= max {
		return s
	}
	return keepPrefix(s, max)
}

func keepPrefix(s string, width int) string {
	off, _ := OffsetForWidth(s, width)
	return closeStyles(s[:off])
}

func keepSuffix(s string, width int) string {
	off, _ := suffixOffset(s, width)
	return closeStyles(s[off:])
}
