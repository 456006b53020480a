package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

const esc = 0x1b

// segment is either one escape sequence or one grapheme cluster.
type segment struct {
	start  int
	text   string
	width  int
	escape bool
}

func (g segment) end() int { return g.start + len(g.text) }

// isSGR reports whether an escape segment is a CSI ... m sequence.
func (g segment) isSGR() bool {
	return g.escape && len(g.text) >= 3 && g.text[1] == '[' && g.text[len(g.text)-1] == 'm'
}

// isReset reports whether an SGR segment clears all attributes.
func (g segment) isReset() bool {
	if !g.isSGR() {
		return false
	}
	params := g.text[2 : len(g.text)-1]
	return params == "" || params == "0"
}

// escapeLen returns the byte length of the escape sequence starting at
// s[0], which must be ESC. Unterminated sequences run to the end of s.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	switch s[1] {
	case '[':
		// CSI: parameter and intermediate bytes, then a final byte in 0x40..0x7e.
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return len(s)
	case ']', 'P', 'X', '^', '_':
		// OSC and the other string sequences end at BEL or ST.
		for i := 2; i < len(s); i++ {
			if s[i] == 0x07 {
				return i + 1
			}
			if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return len(s)
	default:
		i := 1
		for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2f {
			i++
		}
		if i < len(s) {
			i++
		}
		return i
	}
}

// segments splits s into escape sequences and grapheme clusters.
func segments(s string) []segment {
	segs := make([]segment, 0, len(s))
	state := -1
	pos := 0
	rest := s
	for len(rest) > 0 {
		if rest[0] == esc {
			n := escapeLen(rest)
			segs = append(segs, segment{start: pos, text: rest[:n], escape: true})
			pos += n
			rest = rest[n:]
			state = -1
			continue
		}

		// A grapheme never spans an ESC since control characters always
		// break clusters.
		cluster, tail, width, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster[0] < 0x20 || cluster[0] == 0x7f {
			width = 0
		}
		segs = append(segs, segment{start: pos, text: cluster, width: width})
		pos += len(cluster)
		rest = tail
		state = newState
	}
	return segs
}

// Width returns the number of terminal columns s occupies. Escape sequences
// count zero, wide glyphs two, combining marks zero.
func Width(s string) int {
	if isASCIIPrintable(s) {
		return len(s)
	}
	w := 0
	for _, g := range segments(s) {
		w += g.width
	}
	return w
}

// Strip removes all escape sequences from s.
func Strip(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	return ansi.Strip(s)
}

// OffsetForWidth returns the byte offset of the longest prefix of s whose
// display width does not exceed target, along with that width. The offset
// never falls inside a grapheme cluster or an escape sequence.
func OffsetForWidth(s string, target int) (offset, width int) {
	if target <= 0 {
		return 0, 0
	}
	for _, g := range segments(s) {
		if g.escape {
			continue
		}
		if width+g.width > target {
			return offset, width
		}
		width += g.width
		offset = g.end()
	}
	// Everything fit, trailing escapes included.
	return len(s), width
}

// suffixOffset returns the byte offset where the longest suffix of s with
// display width at most target begins, along with that width.
func suffixOffset(s string, target int) (offset, width int) {
	segs := segments(s)
	offset = len(s)
	if target <= 0 {
		return offset, 0
	}
	for i := len(segs) - 1; i >= 0; i-- {
		g := segs[i]
		if g.escape {
			continue
		}
		if width+g.width > target {
			break
		}
		width += g.width
		offset = g.start
	}
	return offset, width
}

// closeStyles appends a reset when frag leaves SGR attributes switched on.
func closeStyles(frag string) string {
	if strings.IndexByte(frag, esc) < 0 {
		return frag
	}
	open := false
	for _, g := range segments(frag) {
		if g.isSGR() {
			open = !g.isReset()
		}
	}
	if open {
		return frag + "\x1b[0m"
	}
	return frag
}

// openStyles returns the SGR sequences still in effect at the end of s.
func openStyles(s string) string {
	var b strings.Builder
	for _, g := range segments(s) {
		if !g.isSGR() {
			continue
		}
		if g.isReset() {
			b.Reset()
			continue
		}
		b.WriteString(g.text)
	}
	return b.String()
}

func isASCIIPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
