package markup

import (
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/logging"
	"github.com/arthur-debert/outstanding/pkg/theme"
	"github.com/muesli/termenv"
)

// Renderer turns markup into final text using a theme.
type Renderer struct {
	theme   *theme.Theme
	mode    theme.ColorMode
	profile termenv.Profile
	unknown UnknownTagPolicy
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColorMode selects the light or dark variant of adaptive styles.
func WithColorMode(mode theme.ColorMode) Option {
	return func(r *Renderer) { r.mode = mode }
}

// WithProfile sets the color profile colors are degraded to.
func WithProfile(profile termenv.Profile) Option {
	return func(r *Renderer) { r.profile = profile }
}

// WithUnknownTags sets the policy for tags missing from the theme.
func WithUnknownTags(policy UnknownTagPolicy) Option {
	return func(r *Renderer) { r.unknown = policy }
}

// NewRenderer creates a renderer for t. Defaults: dark color mode,
// true color profile, passthrough for unknown tags.
func NewRenderer(t *theme.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		theme:   t,
		mode:    theme.Dark,
		profile: termenv.TrueColor,
		unknown: Passthrough,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render parses input and renders it with the transform mode implies.
func (r *Renderer) Render(input string, mode OutputMode, supportsColor bool) (string, error) {
	return r.RenderTransform(input, mode.Transform(supportsColor))
}

// RenderTransform parses input and renders it with an explicit transform.
func (r *Renderer) RenderTransform(input string, tr Transform) (string, error) {
	doc, err := Parse(input, r.theme)
	if err != nil {
		return "", err
	}
	return r.RenderDocument(doc, tr)
}

// RenderDocument renders an already parsed document.
func (r *Renderer) RenderDocument(doc *Document, tr Transform) (string, error) {
	switch tr {
	case Keep:
		return doc.Source(), nil
	case Remove:
		return doc.Text(), nil
	}

	a := &applier{r: r}
	if err := a.walk(doc.Nodes, theme.Attrs{}); err != nil {
		return "", err
	}
	a.sync("")
	return a.out.String(), nil
}

// applier emits escape sequences while walking the tree, tracking the
// sequence currently in effect so unchanged state is never re-issued.
type applier struct {
	r       *Renderer
	out     strings.Builder
	current string
}

func (a *applier) walk(nodes []*Node, composed theme.Attrs) error {
	for _, n := range nodes {
		if n.Kind == TextNode {
			if n.Text == "" {
				continue
			}
			a.sync(composed.Sequence(a.r.profile))
			a.out.WriteString(n.Text)
			continue
		}

		if !n.Known {
			if err := a.unknownTag(n, composed); err != nil {
				return err
			}
			continue
		}

		attrs, err := a.r.theme.Resolve(n.Name, a.r.mode)
		if err != nil {
			var e *errors.Error
			if stderrors.As(err, &e) {
				e.WithDetail("offset", n.Offset)
			}
			return err
		}
		// The child's composed state is a copy, so leaving the node
		// restores the parent's state for the next sibling.
		if err := a.walk(n.Children, composed.Merge(attrs)); err != nil {
			return err
		}
	}
	return nil
}

func (a *applier) unknownTag(n *Node, composed theme.Attrs) error {
	logger := logging.GetLogger("markup")
	logger.Debug().
		Str("tag", n.Name).
		Int("offset", n.Offset).
		Str("policy", a.r.unknown.String()).
		Msg("Unknown style tag")

	if a.r.unknown == StripUnknown {
		return a.walk(n.Children, composed)
	}

	seq := composed.Sequence(a.r.profile)
	a.sync(seq)
	a.out.WriteString("[" + n.Name + "?]")
	if err := a.walk(n.Children, composed); err != nil {
		return err
	}
	a.sync(seq)
	a.out.WriteString("[/" + n.Name + "?]")
	return nil
}

// sync switches the output to seq, resetting first when leaving a styled
// state.
func (a *applier) sync(seq string) {
	if seq == a.current {
		return
	}
	if a.current != "" {
		a.out.WriteString(theme.Reset)
	}
	a.out.WriteString(seq)
	a.current = seq
}

// Render is a convenience wrapper around a default Renderer for t.
func Render(input string, t *theme.Theme, mode OutputMode, supportsColor bool) (string, error) {
	return NewRenderer(t).Render(input, mode, supportsColor)
}

// StripTags removes every tag from input, leaving only the text.
func StripTags(input string) (string, error) {
	doc, err := Parse(input, nil)
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}
