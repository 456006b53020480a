// Package tablespec reads table layouts from TOML files:
//
//	separator = "  "
//
//	[[columns]]
//	name = "n"
//	width = 4
//
//	[[columns]]
//	name = "title"
//	header = "Title"
//	width = "fill"
//	overflow = "wrap"
//
//	[[columns]]
//	name = "status"
//	width = "6..12"
//	align = "right"
//	anchor = "right"
//	style = "muted"
//
// Widths are an integer (fixed), "fill", "MIN..MAX" (bounded) or "Nfr"
// (fraction). A column can carry a [columns.sub] table with its own
// separator and columns, one level deep.
package tablespec

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/table"
	"github.com/arthur-debert/outstanding/pkg/text"
)

// File is the decoded form of a spec file.
type File struct {
	Separator *string     `toml:"separator"`
	Prefix    string      `toml:"prefix"`
	Suffix    string      `toml:"suffix"`
	Columns   []ColumnDef `toml:"columns"`
}

// ColumnDef is one [[columns]] entry.
type ColumnDef struct {
	Name     string  `toml:"name"`
	Header   string  `toml:"header"`
	Width    any     `toml:"width"`
	Align    string  `toml:"align"`
	Overflow string  `toml:"overflow"`
	Ellipsis *string `toml:"ellipsis"`
	Anchor   string  `toml:"anchor"`
	Style    string  `toml:"style"`
	Sub      *SubDef `toml:"sub"`
}

// SubDef is a [columns.sub] table.
type SubDef struct {
	Separator string      `toml:"separator"`
	Columns   []ColumnDef `toml:"columns"`
}

// Options supplies values the file may leave out.
type Options struct {
	Separator string
	Ellipsis  string
}

// Load reads and parses the spec file at path.
func Load(path string, opts Options) (*table.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read column spec %s", path).
			WithDetail("path", path)
	}
	return Parse(data, opts)
}

// Parse decodes a spec file and builds the table spec. Unknown keys are
// errors.
func Parse(data []byte, opts Options) (*table.Spec, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		wrapped := errors.Wrap(err, errors.ErrConfigParse, "failed to parse column spec")
		var de *toml.DecodeError
		if stderrors.As(err, &de) {
			row, col := de.Position()
			wrapped.WithDetail("line", row).WithDetail("column", col)
		}
		return nil, wrapped
	}
	return f.Spec(opts)
}

// Spec converts the decoded file into a validated table.Spec.
func (f *File) Spec(opts Options) (*table.Spec, error) {
	cols, err := convertColumns(f.Columns, opts)
	if err != nil {
		return nil, err
	}

	sep := opts.Separator
	if f.Separator != nil {
		sep = *f.Separator
	}
	return table.NewSpec(cols,
		table.WithSeparator(sep),
		table.WithPrefix(f.Prefix),
		table.WithSuffix(f.Suffix))
}

func convertColumns(defs []ColumnDef, opts Options) ([]table.Column, error) {
	cols := make([]table.Column, 0, len(defs))
	for i, d := range defs {
		c, err := d.column(opts)
		if err != nil {
			label := d.Name
			if label == "" {
				label = fmt.Sprintf("#%d", i)
			}
			return nil, errors.Wrapf(err, errors.ErrInvalidColumn, "column %s", label).
				WithDetail("column", label)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func (d ColumnDef) column(opts Options) (table.Column, error) {
	width, err := ParseWidth(d.Width)
	if err != nil {
		return table.Column{}, err
	}
	align, err := text.ParseAlign(d.Align)
	if err != nil {
		return table.Column{}, err
	}
	ellipsis := opts.Ellipsis
	if d.Ellipsis != nil {
		ellipsis = *d.Ellipsis
	}
	overflow, err := ParseOverflow(d.Overflow, ellipsis)
	if err != nil {
		return table.Column{}, err
	}
	anchor, err := parseAnchor(d.Anchor)
	if err != nil {
		return table.Column{}, err
	}

	c := table.Column{
		Name:     d.Name,
		Header:   d.Header,
		Width:    width,
		Align:    align,
		Overflow: overflow,
		Anchor:   anchor,
		Style:    d.Style,
	}
	if d.Sub != nil {
		subCols, err := convertColumns(d.Sub.Columns, opts)
		if err != nil {
			return table.Column{}, err
		}
		c.Sub = &table.SubColumns{Columns: subCols, Separator: d.Sub.Separator}
	}
	return c, nil
}

// ParseWidth reads a width: an integer for Fixed, "fill", "MIN..MAX" for
// Bounded or "Nfr" for Fraction. A missing width is Fill.
func ParseWidth(v any) (table.Width, error) {
	switch w := v.(type) {
	case nil:
		return table.Fill(), nil
	case int64:
		return table.Fixed(int(w)), nil
	case int:
		return table.Fixed(w), nil
	case string:
		return parseWidthString(strings.TrimSpace(w))
	default:
		return table.Width{}, fmt.Errorf("width must be a number or a string, got %T", v)
	}
}

func parseWidthString(s string) (table.Width, error) {
	switch {
	case s == "fill" || s == "*":
		return table.Fill(), nil
	case strings.HasSuffix(s, "fr"):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "fr"))
		if err != nil {
			return table.Width{}, fmt.Errorf("invalid fraction %q", s)
		}
		return table.Fraction(n), nil
	case strings.Contains(s, ".."):
		lo, hi, _ := strings.Cut(s, "..")
		min, err1 := strconv.Atoi(lo)
		max, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil {
			return table.Width{}, fmt.Errorf("invalid bounds %q", s)
		}
		return table.Bounded(min, max), nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return table.Width{}, fmt.Errorf("invalid width %q", s)
		}
		return table.Fixed(n), nil
	}
}

// ParseOverflow reads "truncate" (or "truncate-end"), "truncate-start",
// "truncate-middle", "wrap", "clip" or "expand".
func ParseOverflow(s, ellipsis string) (table.Overflow, error) {
	switch strings.ToLower(s) {
	case "", "truncate", "truncate-end":
		return table.TruncateWith(text.End, ellipsis), nil
	case "truncate-start":
		return table.TruncateWith(text.Start, ellipsis), nil
	case "truncate-middle":
		return table.TruncateWith(text.Middle, ellipsis), nil
	case "wrap":
		return table.Wrap(), nil
	case "clip":
		return table.Clip(), nil
	case "expand":
		return table.Expand(), nil
	default:
		return table.Overflow{}, fmt.Errorf("unknown overflow: %s", s)
	}
}

func parseAnchor(s string) (table.Anchor, error) {
	switch strings.ToLower(s) {
	case "", "none", "left":
		return table.AnchorNone, nil
	case "right":
		return table.AnchorRight, nil
	default:
		return table.AnchorNone, fmt.Errorf("unknown anchor: %s", s)
	}
}
