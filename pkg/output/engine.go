package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/text"
)

// TemplateEngine expands a template with data into tagged text. The output
// may contain style tags, which the renderer handles afterwards.
type TemplateEngine interface {
	Render(tmpl string, data any) (string, error)
}

// GoTemplates is a TemplateEngine on text/template with helpers for
// terminal layout.
type GoTemplates struct {
	funcs template.FuncMap
}

// NewGoTemplates returns an engine with the built-in helpers plus extra,
// which win on name clashes.
func NewGoTemplates(extra template.FuncMap) *GoTemplates {
	funcs := DefaultFuncs()
	for name, fn := range extra {
		funcs[name] = fn
	}
	return &GoTemplates{funcs: funcs}
}

// Render parses and executes tmpl with data.
func (g *GoTemplates) Render(tmpl string, data any) (string, error) {
	t, err := template.New("output").Funcs(g.funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTemplate, "failed to parse template")
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, errors.ErrTemplate, "failed to execute template")
	}
	return buf.String(), nil
}

// DefaultFuncs returns the helpers available to every GoTemplates engine:
//
//	style NAME VALUE    wraps VALUE in [NAME]...[/NAME]
//	truncate MAX VALUE  shortens VALUE to MAX columns with an ellipsis
//	pad WIDTH VALUE     left-aligns VALUE in WIDTH columns
//	rpad WIDTH VALUE    right-aligns VALUE in WIDTH columns
//	width VALUE         display width of VALUE
//	repeat N VALUE      VALUE repeated N times
func DefaultFuncs() template.FuncMap {
	return template.FuncMap{
		"style": func(name string, v any) string {
			return "[" + name + "]" + fmt.Sprint(v) + "[/" + name + "]"
		},
		"truncate": func(max int, v any) string {
			return text.Truncate(fmt.Sprint(v), max, text.DefaultEllipsis, text.End)
		},
		"pad": func(width int, v any) string {
			return text.Pad(fmt.Sprint(v), width, text.AlignLeft)
		},
		"rpad": func(width int, v any) string {
			return text.Pad(fmt.Sprint(v), width, text.AlignRight)
		},
		"width": func(v any) int {
			return text.Width(fmt.Sprint(v))
		},
		"repeat": func(n int, v any) string {
			if n <= 0 {
				return ""
			}
			return strings.Repeat(fmt.Sprint(v), n)
		},
	}
}
