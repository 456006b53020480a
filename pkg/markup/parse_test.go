package markup_test

import (
	"testing"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type names map[string]bool

func (n names) Has(name string) bool { return n[name] }

func TestParse(t *testing.T) {
	lookup := names{"ok": true, "bold": true}

	t.Run("text only", func(t *testing.T) {
		doc, err := markup.Parse("plain text", lookup)
		require.NoError(t, err)
		require.Len(t, doc.Nodes, 1)
		assert.Equal(t, markup.TextNode, doc.Nodes[0].Kind)
		assert.Equal(t, "plain text", doc.Nodes[0].Text)
	})

	t.Run("empty input", func(t *testing.T) {
		doc, err := markup.Parse("", lookup)
		require.NoError(t, err)
		assert.Empty(t, doc.Nodes)
	})

	t.Run("nested tags", func(t *testing.T) {
		doc, err := markup.Parse("a[ok]b[bold]c[/bold][/ok]d", lookup)
		require.NoError(t, err)
		require.Len(t, doc.Nodes, 3)

		ok := doc.Nodes[1]
		assert.Equal(t, markup.TagNode, ok.Kind)
		assert.Equal(t, "ok", ok.Name)
		assert.Equal(t, 1, ok.Offset)
		assert.True(t, ok.Known)
		require.Len(t, ok.Children, 2)
		assert.Equal(t, "b", ok.Children[0].Text)

		bold := ok.Children[1]
		assert.Equal(t, "bold", bold.Name)
		require.Len(t, bold.Children, 1)
		assert.Equal(t, "c", bold.Children[0].Text)

		assert.Equal(t, "d", doc.Nodes[2].Text)
	})

	t.Run("unknown tags are marked", func(t *testing.T) {
		doc, err := markup.Parse("[nope]x[/nope]", lookup)
		require.NoError(t, err)
		require.Len(t, doc.Nodes, 1)
		assert.False(t, doc.Nodes[0].Known)
	})

	t.Run("nil lookup", func(t *testing.T) {
		doc, err := markup.Parse("[ok]x[/ok]", nil)
		require.NoError(t, err)
		assert.False(t, doc.Nodes[0].Known)
	})

	t.Run("empty tag", func(t *testing.T) {
		doc, err := markup.Parse("[ok][/ok]", lookup)
		require.NoError(t, err)
		require.Len(t, doc.Nodes, 1)
		assert.Empty(t, doc.Nodes[0].Children)
	})
}

func TestParseLiteralBrackets(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"number", "item [1] of 3"},
		{"spaces", "[ ok ]"},
		{"lone open", "a [ b"},
		{"lone close", "a ] b"},
		{"empty brackets", "[]"},
		{"empty closing", "[/]"},
		{"leading digit", "[1abc]"},
		{"leading hyphen", "[-x]"},
		{"unterminated", "[ok"},
		{"punctuation", "[ok!]"},
		{"double open", "[[ok]x[/ok]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := markup.Parse(tt.input, names{"ok": true})
			require.NoError(t, err)
			assert.Equal(t, tt.input, doc.Source())
		})
	}

	t.Run("bracket before tag", func(t *testing.T) {
		doc, err := markup.Parse("[[ok]x[/ok]", names{"ok": true})
		require.NoError(t, err)
		require.Len(t, doc.Nodes, 2)
		assert.Equal(t, "[", doc.Nodes[0].Text)
		assert.Equal(t, "ok", doc.Nodes[1].Name)
	})
}

func TestParseUnbalanced(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tag    string
		offset int
	}{
		{"mismatched close", "[ok][bold]x[/ok][/bold]", "ok", 11},
		{"close without open", "x[/ok]", "ok", 1},
		{"never closed", "ab[ok]x", "ok", 2},
		{"unknown mismatched", "[a]x[/b]", "b", 4},
		{"inner never closed", "[ok][bold]x[/ok]", "ok", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := markup.Parse(tt.input, names{"ok": true, "bold": true})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnbalancedTag))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.tag, details["name"])
			assert.Equal(t, tt.offset, details["offset"])
		})
	}

	t.Run("mismatch names the expected tag", func(t *testing.T) {
		_, err := markup.Parse("[ok][bold]x[/ok][/bold]", names{"ok": true, "bold": true})
		require.Error(t, err)
		assert.Equal(t, "bold", errors.GetErrorDetails(err)["expected"])
	})
}

func TestValidate(t *testing.T) {
	lookup := names{"ok": true}

	assert.NoError(t, markup.Validate("[ok]fine[/ok] [1]", lookup))

	err := markup.Validate("x [ok][typo]y[/typo][/ok]", lookup)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTag))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "typo", details["name"])
	assert.Equal(t, 6, details["offset"])

	err = markup.Validate("[ok]x", lookup)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnbalancedTag))
}

func TestDocumentTextAndSource(t *testing.T) {
	input := "say [ok]hello [bold]world[/bold][/ok] [ x ]! [1]"
	doc, err := markup.Parse(input, names{"ok": true, "bold": true})
	require.NoError(t, err)

	assert.Equal(t, "say hello world [ x ]! [1]", doc.Text())
	assert.Equal(t, input, doc.Source())
}
