package theme

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/logging"
)

// Def is one named entry handed to New.
type Def struct {
	Name  string
	Style Style
}

// Theme is an ordered, immutable mapping of names to styles.
type Theme struct {
	names  []string
	styles map[string]Style
}

// New builds a theme from defs, keeping their order. Names must be
// identifiers (see IsIdentifier) and unique, and every color must parse.
// Aliases are not checked here; call Validate for that.
func New(defs ...Def) (*Theme, error) {
	t := &Theme{
		names:  make([]string, 0, len(defs)),
		styles: make(map[string]Style, len(defs)),
	}
	for _, d := range defs {
		if _, dup := t.styles[d.Name]; dup {
			return nil, errors.Newf(errors.ErrInvalidTheme, "style %q defined twice", d.Name).
				WithDetail("name", d.Name)
		}
		if err := checkDef(d); err != nil {
			return nil, err
		}
		t.names = append(t.names, d.Name)
		t.styles[d.Name] = d.Style
	}
	return t, nil
}

// With returns a new theme where defs replace same-named entries in place
// and new names are appended.
func (t *Theme) With(defs ...Def) (*Theme, error) {
	merged := make([]Def, 0, len(t.names)+len(defs))
	index := make(map[string]int, len(t.names))
	for _, name := range t.names {
		index[name] = len(merged)
		merged = append(merged, Def{Name: name, Style: t.styles[name]})
	}
	for _, d := range defs {
		if i, ok := index[d.Name]; ok {
			merged[i] = d
			continue
		}
		index[d.Name] = len(merged)
		merged = append(merged, d)
	}
	return New(merged...)
}

// Merge layers over on top of t, as With does for over's entries in
// their declaration order.
func (t *Theme) Merge(over *Theme) (*Theme, error) {
	names := over.Names()
	defs := make([]Def, 0, len(names))
	for _, name := range names {
		defs = append(defs, Def{Name: name, Style: over.styles[name]})
	}
	return t.With(defs...)
}

func checkDef(d Def) error {
	if !IsIdentifier(d.Name) {
		return errors.Newf(errors.ErrInvalidTheme, "invalid style name %q", d.Name).
			WithDetail("name", d.Name)
	}
	switch d.Style.kind {
	case KindAlias:
		if !IsIdentifier(d.Style.target) {
			return errors.Newf(errors.ErrInvalidTheme, "style %q aliases invalid name %q", d.Name, d.Style.target).
				WithDetail("name", d.Name)
		}
	case KindAdaptive:
		if err := checkAttrs(d.Name, d.Style.attrs); err != nil {
			return err
		}
		return checkAttrs(d.Name, d.Style.dark)
	default:
		return checkAttrs(d.Name, d.Style.attrs)
	}
	return nil
}

func checkAttrs(name string, a Attrs) error {
	for _, c := range []Color{a.Fg, a.Bg} {
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidTheme, "style %q", name).
				WithDetail("name", name)
		}
	}
	return nil
}

// Has reports whether name is defined.
func (t *Theme) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.styles[name]
	return ok
}

// Names returns the style names in declaration order.
func (t *Theme) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Style returns the raw entry for name, without following aliases.
func (t *Theme) Style(name string) (Style, bool) {
	if t == nil {
		return Style{}, false
	}
	s, ok := t.styles[name]
	return s, ok
}

// Resolve follows aliases from name and returns the concrete attributes
// for mode.
func (t *Theme) Resolve(name string, mode ColorMode) (Attrs, error) {
	s, err := t.follow(name)
	if err != nil {
		return Attrs{}, err
	}
	return s.For(mode), nil
}

// Validate walks every entry in declaration order and returns the first
// dangling alias or alias cycle found.
func (t *Theme) Validate() error {
	log := logging.GetLogger("theme")
	names := t.Names()
	for _, name := range names {
		if _, err := t.follow(name); err != nil {
			log.Debug().Err(err).Str("style", name).Msg("Theme validation failed")
			return err
		}
	}
	log.Trace().Int("styles", len(names)).Msg("Theme validated")
	return nil
}

// follow walks the alias chain starting at name until a non-alias style.
func (t *Theme) follow(name string) (Style, error) {
	visited := make(map[string]bool)
	var path []string
	current := name
	for {
		s, ok := t.Style(current)
		if !ok {
			if len(path) == 0 {
				return Style{}, errors.Newf(errors.ErrUnknownStyle, "unknown style %q", name).
					WithDetail("name", name)
			}
			from := path[len(path)-1]
			return Style{}, errors.Newf(errors.ErrDanglingAlias, "style %q aliases undefined style %q", from, current).
				WithDetail("name", from).
				WithDetail("target", current)
		}
		if visited[current] {
			cycle := append([]string{}, path[indexOf(path, current):]...)
			cycle = append(cycle, current)
			return Style{}, errors.Newf(errors.ErrAliasCycle, "alias cycle: %s", strings.Join(cycle, " -> ")).
				WithDetail("name", name).
				WithDetail("path", cycle)
		}
		visited[current] = true
		path = append(path, current)

		if s.kind != KindAlias {
			return s, nil
		}
		current = s.target
	}
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}

// IsIdentifier reports whether name is a valid style name: a letter
// followed by letters, digits, hyphens or underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '_'):
		default:
			return false
		}
	}
	return true
}

// ParseColorMode parses "dark" or "light".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "dark", "":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Dark, fmt.Errorf("unknown color mode: %s", s)
	}
}
