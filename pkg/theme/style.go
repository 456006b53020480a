package theme

import "strings"

// Attrs is a concrete set of terminal text attributes. The zero value means
// "no styling".
type Attrs struct {
	Fg            Color
	Bg            Color
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

// IsZero reports whether a carries no styling at all.
func (a Attrs) IsZero() bool {
	return a == Attrs{}
}

// Merge layers over on top of a. Colors set in over replace those of a;
// flags accumulate.
func (a Attrs) Merge(over Attrs) Attrs {
	out := a
	if over.Fg != "" {
		out.Fg = over.Fg
	}
	if over.Bg != "" {
		out.Bg = over.Bg
	}
	out.Bold = a.Bold || over.Bold
	out.Dim = a.Dim || over.Dim
	out.Italic = a.Italic || over.Italic
	out.Underline = a.Underline || over.Underline
	out.Blink = a.Blink || over.Blink
	out.Reverse = a.Reverse || over.Reverse
	out.Hidden = a.Hidden || over.Hidden
	out.Strikethrough = a.Strikethrough || over.Strikethrough
	return out
}

// String lists the attributes set in a, such as "fg=green bold".
func (a Attrs) String() string {
	var parts []string
	if a.Fg != "" {
		parts = append(parts, "fg="+string(a.Fg))
	}
	if a.Bg != "" {
		parts = append(parts, "bg="+string(a.Bg))
	}
	flags := []struct {
		on   bool
		name string
	}{
		{a.Bold, "bold"},
		{a.Dim, "dim"},
		{a.Italic, "italic"},
		{a.Underline, "underline"},
		{a.Blink, "blink"},
		{a.Reverse, "reverse"},
		{a.Hidden, "hidden"},
		{a.Strikethrough, "strikethrough"},
	}
	for _, f := range flags {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, " ")
}

// Kind tells the three style forms apart.
type Kind int

const (
	KindPlain Kind = iota
	KindAlias
	KindAdaptive
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindAlias:
		return "alias"
	case KindAdaptive:
		return "adaptive"
	default:
		return "unknown"
	}
}

// Style is a theme entry: concrete attributes, an alias, or an adaptive
// light/dark pair.
type Style struct {
	kind   Kind
	attrs  Attrs
	dark   Attrs
	target string
}

// Plain returns a style with fixed attributes.
func Plain(a Attrs) Style {
	return Style{kind: KindPlain, attrs: a}
}

// Alias returns a style that stands for the style named target.
func Alias(target string) Style {
	return Style{kind: KindAlias, target: target}
}

// Adaptive returns a style whose attributes depend on the terminal
// background.
func Adaptive(light, dark Attrs) Style {
	return Style{kind: KindAdaptive, attrs: light, dark: dark}
}

// Kind returns the form of the style.
func (s Style) Kind() Kind { return s.kind }

// Target returns the aliased name, or "" for non-alias styles.
func (s Style) Target() string { return s.target }

// For returns the concrete attributes for the given color mode. Aliases
// have no attributes of their own; resolve them through a Theme.
func (s Style) For(mode ColorMode) Attrs {
	switch s.kind {
	case KindAdaptive:
		if mode == Light {
			return s.attrs
		}
		return s.dark
	case KindPlain:
		return s.attrs
	default:
		return Attrs{}
	}
}

// ColorMode picks the variant of adaptive styles.
type ColorMode int

const (
	Dark ColorMode = iota
	Light
)

// String returns the string representation of the color mode
func (m ColorMode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}
