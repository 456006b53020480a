package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Lipgloss builds the equivalent lipgloss style, for callers that render
// through lipgloss instead of markup. Hidden has no lipgloss counterpart
// and is ignored.
func (a Attrs) Lipgloss() lipgloss.Style {
	style := lipgloss.NewStyle()

	if a.Bold {
		style = style.Bold(true)
	}
	if a.Dim {
		style = style.Faint(true)
	}
	if a.Italic {
		style = style.Italic(true)
	}
	if a.Underline {
		style = style.Underline(true)
	}
	if a.Blink {
		style = style.Blink(true)
	}
	if a.Reverse {
		style = style.Reverse(true)
	}
	if a.Strikethrough {
		style = style.Strikethrough(true)
	}

	if a.Fg != "" {
		style = style.Foreground(lipgloss.Color(a.Fg.lipgloss()))
	}
	if a.Bg != "" {
		style = style.Background(lipgloss.Color(a.Bg.lipgloss()))
	}

	return style
}

// LipglossStyles resolves every entry of the theme for mode and returns
// them keyed by name.
func (t *Theme) LipglossStyles(mode ColorMode) (map[string]lipgloss.Style, error) {
	styles := make(map[string]lipgloss.Style, len(t.names))
	for _, name := range t.names {
		attrs, err := t.Resolve(name, mode)
		if err != nil {
			return nil, err
		}
		styles[name] = attrs.Lipgloss()
	}
	return styles, nil
}
