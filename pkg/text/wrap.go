package text

import "strings"

// Wrap breaks s into lines no wider than max using greedy word wrapping.
// Words are separated by whitespace, which collapses to a single space
// inside a line. Newlines in s always start a new line. A word wider than
// max is split at grapheme boundaries. SGR attributes still on at the end
// of a line are reset there and reopened on the next line.
func Wrap(s string, max int) []string {
	if max < 1 {
		max = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, max)...)
	}
	if strings.IndexByte(s, esc) >= 0 {
		lines = carryStyles(lines)
	}
	return lines
}

// carryStyles closes each line that leaves SGR attributes on and repeats
// them at the start of the following line. Empty lines carry nothing.
func carryStyles(lines []string) []string {
	active := ""
	for i, line := range lines {
		if line == "" {
			continue
		}
		line = active + line
		active = openStyles(line)
		lines[i] = closeStyles(line)
	}
	return lines
}

func wrapParagraph(p string, max int) []string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	started := false

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
		started = false
	}

	for _, word := range words {
		ww := Width(word)

		if ww > max {
			if started {
				flush()
			}
			pieces := hardSplit(word, max)
			lines = append(lines, pieces[:len(pieces)-1]...)
			last := pieces[len(pieces)-1]
			line.WriteString(last)
			lineWidth = Width(last)
			started = true
			continue
		}

		switch {
		case !started:
			line.WriteString(word)
			lineWidth = ww
			started = true
		case lineWidth+1+ww <= max:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + ww
		default:
			flush()
			line.WriteString(word)
			lineWidth = ww
			started = true
		}
	}
	if started {
		flush()
	}
	return lines
}

// hardSplit cuts word into pieces of at most max columns. A single grapheme
// wider than max becomes a piece of its own.
func hardSplit(word string, max int) []string {
	var pieces []string
	rest := word
	for rest != "" {
		if Width(rest) <= max {
			pieces = append(pieces, rest)
			break
		}
		off, _ := OffsetForWidth(rest, max)
		if off == 0 {
			off = firstGraphemeEnd(rest)
		}
		pieces = append(pieces, rest[:off])
		rest = rest[off:]
	}
	if len(pieces) == 0 {
		pieces = append(pieces, "")
	}
	return pieces
}

// firstGraphemeEnd returns the offset just past the first printable
// grapheme of s, escape sequences before it included.
func firstGraphemeEnd(s string) int {
	for _, g := range segments(s) {
		if !g.escape {
			return g.end()
		}
	}
	return len(s)
}
