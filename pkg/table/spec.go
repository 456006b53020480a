package table

import (
	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/text"
)

// DefaultSeparator is placed between columns unless WithSeparator says
// otherwise.
const DefaultSeparator = " "

// Spec is a validated, immutable column layout.
type Spec struct {
	columns   []Column
	separator string
	prefix    string
	suffix    string
}

// SpecOption configures a Spec.
type SpecOption func(*Spec)

// WithSeparator sets the string between adjacent columns.
func WithSeparator(sep string) SpecOption {
	return func(s *Spec) { s.separator = sep }
}

// WithPrefix sets a string printed before the first column of every line.
func WithPrefix(prefix string) SpecOption {
	return func(s *Spec) { s.prefix = prefix }
}

// WithSuffix sets a string printed after the last column of every line.
func WithSuffix(suffix string) SpecOption {
	return func(s *Spec) { s.suffix = suffix }
}

// NewSpec validates columns and builds a Spec. Width parameters must be in
// range, style names must be identifiers, and sub-column groups must hold
// exactly one Fill column and no further nesting.
func NewSpec(columns []Column, opts ...SpecOption) (*Spec, error) {
	if len(columns) == 0 {
		return nil, errors.New(errors.ErrInvalidColumn, "a table needs at least one column")
	}
	for i, c := range columns {
		if err := validateColumn(c, i, false); err != nil {
			return nil, err
		}
	}

	s := &Spec{
		columns:   cloneColumns(columns),
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func cloneColumns(columns []Column) []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	for i, c := range out {
		if c.Sub != nil {
			sub := *c.Sub
			sub.Columns = cloneColumns(c.Sub.Columns)
			out[i].Sub = &sub
		}
	}
	return out
}

// Columns returns a copy of the column definitions.
func (s *Spec) Columns() []Column { return cloneColumns(s.columns) }

// Separator returns the column separator.
func (s *Spec) Separator() string { return s.separator }

// Overhead returns the width taken by prefix, suffix and separators.
func (s *Spec) Overhead() int {
	return overhead(len(s.columns), s.separator, s.prefix, s.suffix)
}

func overhead(n int, sep, prefix, suffix string) int {
	o := text.Width(prefix) + text.Width(suffix)
	if n > 1 {
		o += (n - 1) * text.Width(sep)
	}
	return o
}

// LineWidth returns the display width of a formatted line under rw,
// ignoring Expand overflow.
func (s *Spec) LineWidth(rw ResolvedWidths) int {
	w := s.Overhead() + rw.Gap
	for _, cw := range rw.Widths {
		w += cw
	}
	return w
}
