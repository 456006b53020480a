package markup_test

import (
	"io"
	"os"
	"testing"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/markup"
	"github.com/arthur-debert/outstanding/pkg/text"
	"github.com/arthur-debert/outstanding/pkg/theme"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTheme(t *testing.T) *theme.Theme {
	t.Helper()
	th, err := theme.New(
		theme.Def{Name: "ok", Style: theme.Plain(theme.Attrs{Fg: "green"})},
		theme.Def{Name: "bold", Style: theme.Plain(theme.Attrs{Bold: true})},
		theme.Def{Name: "red", Style: theme.Plain(theme.Attrs{Fg: "red"})},
		theme.Def{Name: "success", Style: theme.Alias("ok")},
		theme.Def{Name: "muted", Style: theme.Adaptive(
			theme.Attrs{Fg: "black"},
			theme.Attrs{Fg: "white"},
		)},
		theme.Def{Name: "broken", Style: theme.Alias("missing")},
	)
	require.NoError(t, err)
	return th
}

func TestRenderModes(t *testing.T) {
	r := markup.NewRenderer(testTheme(t))
	input := "[ok]Done[/ok]"

	tests := []struct {
		name          string
		mode          markup.OutputMode
		supportsColor bool
		expected      string
	}{
		{"term", markup.Term, false, "\x1b[32mDone\x1b[0m"},
		{"text", markup.Text, true, "Done"},
		{"debug", markup.TermDebug, true, "[ok]Done[/ok]"},
		{"auto with color", markup.Auto, true, "\x1b[32mDone\x1b[0m"},
		{"auto without color", markup.Auto, false, "Done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(input, tt.mode, tt.supportsColor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderApply(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no tags",
			input:    "plain",
			expected: "plain",
		},
		{
			name:     "sibling text is unstyled",
			input:    "[ok]a[/ok]b",
			expected: "\x1b[32ma\x1b[0mb",
		},
		{
			name:     "nested styles compose",
			input:    "[bold]x[red]y[/red]z[/bold]",
			expected: "\x1b[1mx\x1b[0m\x1b[1;31my\x1b[0m\x1b[1mz\x1b[0m",
		},
		{
			name:     "inner color overrides outer",
			input:    "[ok][red]x[/red][/ok]",
			expected: "\x1b[31mx\x1b[0m",
		},
		{
			name:     "unchanged state is not re-emitted",
			input:    "[ok]a[ok]b[/ok]c[/ok]",
			expected: "\x1b[32mabc\x1b[0m",
		},
		{
			name:     "adjacent siblings",
			input:    "[ok]a[/ok][red]b[/red]",
			expected: "\x1b[32ma\x1b[0m\x1b[31mb\x1b[0m",
		},
		{
			name:     "alias",
			input:    "[success]yes[/success]",
			expected: "\x1b[32myes\x1b[0m",
		},
		{
			name:     "adaptive dark by default",
			input:    "[muted]m[/muted]",
			expected: "\x1b[37mm\x1b[0m",
		},
		{
			name:     "empty tag emits nothing",
			input:    "a[ok][/ok]b",
			expected: "ab",
		},
		{
			name:     "literal brackets kept",
			input:    "[ok][1][/ok]",
			expected: "\x1b[32m[1]\x1b[0m",
		},
	}

	r := markup.NewRenderer(testTheme(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderTransform(tt.input, markup.Apply)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderOptions(t *testing.T) {
	th := testTheme(t)

	t.Run("light color mode", func(t *testing.T) {
		r := markup.NewRenderer(th, markup.WithColorMode(theme.Light))
		out, err := r.RenderTransform("[muted]m[/muted]", markup.Apply)
		require.NoError(t, err)
		assert.Equal(t, "\x1b[30mm\x1b[0m", out)
	})

	t.Run("ascii profile drops colors", func(t *testing.T) {
		r := markup.NewRenderer(th, markup.WithProfile(termenv.Ascii))
		out, err := r.RenderTransform("[ok]a[/ok] [bold]b[/bold]", markup.Apply)
		require.NoError(t, err)
		assert.Equal(t, "a \x1b[1mb\x1b[0m", out)
	})
}

func TestRenderUnknownTags(t *testing.T) {
	th := testTheme(t)
	input := "[ok][typo]hi[/typo][/ok]"

	tests := []struct {
		name     string
		policy   markup.UnknownTagPolicy
		tr       markup.Transform
		expected string
	}{
		{"passthrough apply", markup.Passthrough, markup.Apply, "\x1b[32m[typo?]hi[/typo?]\x1b[0m"},
		{"passthrough remove", markup.Passthrough, markup.Remove, "hi"},
		{"passthrough keep", markup.Passthrough, markup.Keep, input},
		{"strip apply", markup.StripUnknown, markup.Apply, "\x1b[32mhi\x1b[0m"},
		{"strip remove", markup.StripUnknown, markup.Remove, "hi"},
		{"strip keep", markup.StripUnknown, markup.Keep, input},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := markup.NewRenderer(th, markup.WithUnknownTags(tt.policy))
			out, err := r.RenderTransform(input, tt.tr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("unstyled passthrough", func(t *testing.T) {
		out, err := markup.NewRenderer(th).RenderTransform("a [typo]b[/typo]", markup.Apply)
		require.NoError(t, err)
		assert.Equal(t, "a [typo?]b[/typo?]", out)
	})
}

func TestRenderErrors(t *testing.T) {
	r := markup.NewRenderer(testTheme(t))

	t.Run("unbalanced is fatal in every transform", func(t *testing.T) {
		for _, tr := range []markup.Transform{markup.Apply, markup.Remove, markup.Keep} {
			_, err := r.RenderTransform("[ok]x[/red]", tr)
			require.Error(t, err, tr.String())
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnbalancedTag))
		}
	})

	t.Run("dangling alias", func(t *testing.T) {
		_, err := r.RenderTransform("ab[broken]x[/broken]", markup.Apply)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDanglingAlias))
		details := errors.GetErrorDetails(err)
		assert.Equal(t, "missing", details["target"])
		assert.Equal(t, 2, details["offset"])
	})
}

func TestRenderProperties(t *testing.T) {
	r := markup.NewRenderer(testTheme(t))
	inputs := []string{
		"[ok]Done[/ok]",
		"[bold]x[red]y[/red]z[/bold] tail",
		"[success]日本語[/success] [1] and [ok]café[/ok]",
		"no tags at all",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			doc, err := markup.Parse(input, testTheme(t))
			require.NoError(t, err)

			applied, err := r.RenderTransform(input, markup.Apply)
			require.NoError(t, err)
			removed, err := r.RenderTransform(input, markup.Remove)
			require.NoError(t, err)
			kept, err := r.RenderTransform(input, markup.Keep)
			require.NoError(t, err)

			assert.Equal(t, doc.Text(), removed)
			assert.Equal(t, input, kept)
			assert.Equal(t, removed, text.Strip(applied))
		})
	}
}

func TestStripTags(t *testing.T) {
	out, err := markup.StripTags("[a]x[b]y[/b][/a] [2]")
	require.NoError(t, err)
	assert.Equal(t, "xy [2]", out)

	_, err = markup.StripTags("[a]x")
	assert.Error(t, err)
}

func TestPackageRender(t *testing.T) {
	out, err := markup.Render("[ok]Done[/ok]", testTheme(t), markup.Auto, true)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32mDone\x1b[0m", out)
}

func TestParseOutputMode(t *testing.T) {
	tests := []struct {
		input    string
		expected markup.OutputMode
		wantErr  bool
	}{
		{"auto", markup.Auto, false},
		{"", markup.Auto, false},
		{"term", markup.Term, false},
		{"TEXT", markup.Text, false},
		{"term-debug", markup.TermDebug, false},
		{"html", markup.Auto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := markup.ParseOutputMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}

	for _, m := range []markup.OutputMode{markup.Auto, markup.Term, markup.Text, markup.TermDebug} {
		parsed, err := markup.ParseOutputMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseUnknownTagPolicy(t *testing.T) {
	p, err := markup.ParseUnknownTagPolicy("strip")
	require.NoError(t, err)
	assert.Equal(t, markup.StripUnknown, p)

	p, err = markup.ParseUnknownTagPolicy("")
	require.NoError(t, err)
	assert.Equal(t, markup.Passthrough, p)

	_, err = markup.ParseUnknownTagPolicy("keep")
	assert.Error(t, err)
}

func TestRenderUnknownTagWritesNothingToStderr(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = stderr })

	out, err := markup.NewRenderer(testTheme(t)).RenderTransform("[nope]hi[/nope]", markup.Apply)
	require.NoError(t, err)
	assert.Equal(t, "[nope?]hi[/nope?]", out)

	os.Stderr = stderr
	require.NoError(t, w.Close())
	written, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, string(written))
}
