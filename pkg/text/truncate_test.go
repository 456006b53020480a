package text_test

import (
	"testing"

	"github.com/arthur-debert/outstanding/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		ellipsis string
		pos      text.Position
		want     string
	}{
		{"fits unchanged", "short", 10, "…", text.End, "short"},
		{"exact fit unchanged", "exact", 5, "…", text.End, "exact"},
		{"end", "Hello, World!", 8, "…", text.End, "Hello, …"},
		{"start", "Hello, World!", 8, "…", text.Start, "… World!"},
		{"middle", "Hello, World!", 8, "…", text.Middle, "Hell…ld!"},
		{"multi char ellipsis", "abcdefghij", 6, "...", text.End, "abc..."},
		{"degenerate clips ellipsis", "abcdef", 2, "...", text.End, ".."},
		{"degenerate equal to ellipsis", "abcdef", 3, "...", text.Middle, "..."},
		{"zero width", "abcdef", 0, "…", text.End, ""},
		{"wide glyphs", "日本語テキスト", 5, "…", text.End, "日本…"},
		{"wide glyph not split", "日本語テキスト", 4, "…", text.End, "日…"},
		{"escape inside kept region", "\x1b[31mredish\x1b[0m", 4, "…", text.End, "\x1b[31mred\x1b[0m…"},
		{"escape outside kept region dropped", "\x1b[31mredish\x1b[0m", 4, "…", text.Start, "…ish\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Truncate(tt.input, tt.max, tt.ellipsis, tt.pos))
		})
	}
}

func TestTruncateNeverExceedsWidth(t *testing.T) {
	inputs := []string{
		"Implement authentication",
		"日本語テキストです",
		"\x1b[1mbold\x1b[0m and plain",
		"café au lait",
	}
	for _, s := range inputs {
		for _, pos := range []text.Position{text.End, text.Start, text.Middle} {
			for w := 0; w <= text.Width(s)+2; w++ {
				got := text.Truncate(s, w, "…", pos)
				require.LessOrEqual(t, text.Width(got), w, "%q at %d (%s)", s, w, pos)
				if text.Width(s) <= w {
					assert.Equal(t, s, got)
				}
			}
		}
	}
}

func TestTruncateMiddleKeepsBothEnds(t *testing.T) {
	s := "abcdefghijklmnopqrstuvwxyz"
	for w := 2; w < len(s); w++ {
		got := text.Truncate(s, w, "~", text.Middle)
		k := w - 1
		head := (k + 1) / 2
		tail := k / 2
		assert.Equal(t, s[:head]+"~"+s[len(s)-tail:], got, "width %d", w)
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, "hel", text.Clip("hello", 3))
	assert.Equal(t, "hello", text.Clip("hello", 9))
	assert.Equal(t, "", text.Clip("日本", 1))
	assert.Equal(t, "\x1b[32mgr\x1b[0m", text.Clip("\x1b[32mgreen\x1b[0m", 2))
}

func TestParsePosition(t *testing.T) {
	for _, pos := range []text.Position{text.End, text.Start, text.Middle} {
		got, err := text.ParsePosition(pos.String())
		require.NoError(t, err)
		assert.Equal(t, pos, got)
	}
	_, err := text.ParsePosition("sideways")
	assert.Error(t, err)
}
