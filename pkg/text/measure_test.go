package text_test

import (
	"testing"

	"github.com/arthur-debert/outstanding/pkg/text"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"cjk", "日本語", 6},
		{"precomposed accent", "caf\u00e9", 4},
		{"combining accent", "cafe\u0301", 4},
		{"sgr colored", "\x1b[31mred\x1b[0m", 3},
		{"osc hyperlink", "\x1b]8;;https://example.com\x07link\x1b]8;;\x07", 4},
		{"fullwidth", "ＡＢ", 4},
		{"mixed", "a日b", 4},
		{"control chars", "a\tb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Width(tt.input))
		})
	}
}

func TestWidthAgreesWithAnsiPackage(t *testing.T) {
	for _, s := range []string{"hello", "日本語", "café", "\x1b[1;32mok\x1b[0m", "ＡＢ c"} {
		assert.Equal(t, ansi.StringWidth(s), text.Width(s), s)
	}
}

func TestWidthIsAdditive(t *testing.T) {
	parts := []string{"", "abc", "日本", "café", "x", "テスト", " "}
	for _, a := range parts {
		for _, b := range parts {
			assert.Equal(t, text.Width(a)+text.Width(b), text.Width(a+b), "%q + %q", a, b)
		}
	}
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "red", text.Strip("\x1b[31mred\x1b[0m"))
	assert.Equal(t, "plain", text.Strip("plain"))
	assert.Equal(t, "link", text.Strip("\x1b]8;;https://example.com\x07link\x1b]8;;\x07"))
}

func TestOffsetForWidth(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		target     int
		wantOffset int
		wantWidth  int
	}{
		{"ascii prefix", "hello", 3, 3, 3},
		{"fits entirely", "hello", 10, 5, 5},
		{"zero target", "hello", 0, 0, 0},
		{"wide glyph not split", "日本語", 3, 3, 2},
		{"wide glyph exact", "日本語", 4, 6, 4},
		{"escape kept before glyph", "\x1b[31mred\x1b[0m", 2, 7, 2},
		{"trailing escape kept when all fit", "\x1b[31mred\x1b[0m", 3, 12, 3},
		{"combining mark stays with base", "cafe\u0301s", 4, 6, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, w := text.OffsetForWidth(tt.input, tt.target)
			assert.Equal(t, tt.wantOffset, off)
			assert.Equal(t, tt.wantWidth, w)
		})
	}
}
