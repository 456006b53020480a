package table

import (
	"strings"

	"github.com/arthur-debert/outstanding/pkg/text"
)

// DefaultRule is the glyph Rule draws with when given none.
const DefaultRule = "─"

// Table binds a Spec to widths resolved once, so every row lines up.
type Table struct {
	spec   *Spec
	widths ResolvedWidths
}

// NewTable resolves spec for total columns using samples and returns a
// table ready to format rows.
func NewTable(spec *Spec, total int, samples []Row) (*Table, error) {
	rw, err := spec.Resolve(total, samples)
	if err != nil {
		return nil, err
	}
	return &Table{spec: spec, widths: rw}, nil
}

// Spec returns the layout the table was built from.
func (t *Table) Spec() *Spec { return t.spec }

// Widths returns the resolved widths.
func (t *Table) Widths() ResolvedWidths { return t.widths }

// Row formats one row, lines joined by newlines.
func (t *Table) Row(cells ...Cell) (string, error) {
	return t.spec.FormatRowString(t.widths, Row(cells))
}

// Header formats the column headers on one line. Headers are truncated at
// the end and unstyled; a column with sub-columns shows the sub-column
// headers.
func (t *Table) Header() (string, error) {
	cols := t.spec.Columns()
	row := make(Row, len(cols))
	for i := range cols {
		cols[i] = headerColumn(cols[i])
		if cols[i].Sub == nil {
			row[i] = Text(cols[i].Header)
			continue
		}
		parts := make([]string, len(cols[i].Sub.Columns))
		for j, sc := range cols[i].Sub.Columns {
			parts[j] = sc.Header
			cols[i].Sub.Columns[j] = headerColumn(sc)
		}
		row[i] = Parts(parts...)
	}
	header, err := NewSpec(cols,
		WithSeparator(t.spec.separator),
		WithPrefix(t.spec.prefix),
		WithSuffix(t.spec.suffix))
	if err != nil {
		return "", err
	}
	return header.FormatRowString(t.widths, row)
}

func headerColumn(c Column) Column {
	c.Overflow = Truncate(text.End)
	c.Style = ""
	return c
}

// Rule draws a horizontal line as wide as a row, between the prefix and
// suffix.
func (t *Table) Rule(glyph string) string {
	if glyph == "" {
		glyph = DefaultRule
	}
	inner := t.spec.LineWidth(t.widths) - text.Width(t.spec.prefix) - text.Width(t.spec.suffix)
	gw := text.Width(glyph)
	if gw <= 0 || inner <= 0 {
		return t.spec.prefix + strings.Repeat(" ", max(inner, 0)) + t.spec.suffix
	}
	line := strings.Repeat(glyph, inner/gw) + strings.Repeat(" ", inner%gw)
	return t.spec.prefix + line + t.spec.suffix
}
