package theme

import (
	"fmt"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AttrsDef is the YAML form of Attrs.
type AttrsDef struct {
	Fg            string `yaml:"fg,omitempty"`
	Bg            string `yaml:"bg,omitempty"`
	Bold          bool   `yaml:"bold,omitempty"`
	Dim           bool   `yaml:"dim,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Blink         bool   `yaml:"blink,omitempty"`
	Reverse       bool   `yaml:"reverse,omitempty"`
	Hidden        bool   `yaml:"hidden,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
}

// StyleDef is the YAML form of a style entry. Light and Dark make the
// style adaptive, each variant layered over the shared attributes.
type StyleDef struct {
	AttrsDef `yaml:",inline"`
	Alias    string    `yaml:"alias,omitempty"`
	Light    *AttrsDef `yaml:"light,omitempty"`
	Dark     *AttrsDef `yaml:"dark,omitempty"`
}

func (d AttrsDef) attrs() Attrs {
	return Attrs{
		Fg:            Color(d.Fg),
		Bg:            Color(d.Bg),
		Bold:          d.Bold,
		Dim:           d.Dim,
		Italic:        d.Italic,
		Underline:     d.Underline,
		Blink:         d.Blink,
		Reverse:       d.Reverse,
		Hidden:        d.Hidden,
		Strikethrough: d.Strikethrough,
	}
}

// Style converts the definition into a Style.
func (d StyleDef) Style() Style {
	if d.Alias != "" {
		return Alias(d.Alias)
	}
	base := d.AttrsDef.attrs()
	if d.Light == nil && d.Dark == nil {
		return Plain(base)
	}
	light, dark := base, base
	if d.Light != nil {
		light = base.Merge(d.Light.attrs())
	}
	if d.Dark != nil {
		dark = base.Merge(d.Dark.attrs())
	}
	return Adaptive(light, dark)
}

// LoadYAML decodes a stylesheet into a theme, keeping declaration order.
// The document is a mapping of style names to either a string, which is an
// alias for another style, or a StyleDef mapping:
//
//	title:
//	  fg: "#ffffff"
//	  bold: true
//	heading: title
//	muted:
//	  italic: true
//	  light: {fg: "#6c757d"}
//	  dark: {fg: "#adb5bd"}
func LoadYAML(data []byte) (*Theme, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidTheme, "failed to parse stylesheet")
	}
	if len(doc.Content) == 0 {
		return New()
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrInvalidTheme, "stylesheet must be a mapping of style names")
	}

	defs := make([]Def, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		style, err := decodeStyle(value)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidTheme, "style %q (line %d)", key.Value, key.Line).
				WithDetail("name", key.Value).
				WithDetail("line", key.Line)
		}
		defs = append(defs, Def{Name: key.Value, Style: style})
	}
	return New(defs...)
}

func decodeStyle(node *yaml.Node) (Style, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return Alias(node.Value), nil
	case yaml.MappingNode:
		var def StyleDef
		if err := node.Decode(&def); err != nil {
			return Style{}, err
		}
		return def.Style(), nil
	default:
		return Style{}, fmt.Errorf("expected a style name or mapping")
	}
}
