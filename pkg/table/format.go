package table

import (
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/text"
)

// Cell is the content of one column in a row: a single string, or ordered
// parts for a column with sub-columns.
type Cell struct {
	Text  string
	Parts []string
}

// Text returns a single-string cell.
func Text(s string) Cell { return Cell{Text: s} }

// Parts returns a cell split over sub-columns.
func Parts(parts ...string) Cell {
	if parts == nil {
		parts = []string{}
	}
	return Cell{Parts: parts}
}

// Row is one line of table data. Missing trailing cells are empty.
type Row []Cell

// Cells builds a row of single-string cells.
func Cells(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Text(v)
	}
	return row
}

// FormatRow lays row out under rw. Every returned line is exactly
// s.LineWidth(rw) columns wide unless a column uses Expand overflow.
// Wrapping columns can produce several lines; on continuation lines the
// other columns are blank and separators are repeated.
func (s *Spec) FormatRow(rw ResolvedWidths, row Row) ([]string, error) {
	if len(rw.Widths) != len(s.columns) {
		return nil, errors.Newf(errors.ErrInvalidInput, "resolved widths cover %d columns, spec has %d", len(rw.Widths), len(s.columns))
	}
	if len(row) > len(s.columns) {
		return nil, errors.Newf(errors.ErrInvalidRow, "row has %d cells, spec has %d columns", len(row), len(s.columns)).
			WithDetail("cells", len(row)).
			WithDetail("columns", len(s.columns))
	}
	return layoutRow(s.columns, s.separator, s.prefix, s.suffix, rw.Widths, rw.Gap, row, false)
}

// FormatRowString is FormatRow with the lines joined by newlines.
func (s *Spec) FormatRowString(rw ResolvedWidths, row Row) (string, error) {
	lines, err := s.FormatRow(rw, row)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func layoutRow(cols []Column, sep, prefix, suffix string, widths []int, gap int, row Row, nested bool) ([]string, error) {
	blocks := make([][]string, len(cols))
	height := 1
	for i, c := range cols {
		var cell Cell
		if i < len(row) {
			cell = row[i]
		}
		lines, err := formatCell(c, c.label(i), widths[i], cell, nested)
		if err != nil {
			return nil, err
		}
		blocks[i] = lines
		height = max(height, len(lines))
	}

	var order []int
	left := 0
	for i, c := range cols {
		if c.Anchor != AnchorRight {
			order = append(order, i)
			left++
		}
	}
	for i, c := range cols {
		if c.Anchor == AnchorRight {
			order = append(order, i)
		}
	}

	out := make([]string, height)
	for k := range out {
		var b strings.Builder
		b.WriteString(prefix)
		for pos, i := range order {
			if pos == left && gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			if pos > 0 {
				b.WriteString(sep)
			}
			if k < len(blocks[i]) {
				b.WriteString(blocks[i][k])
			} else {
				b.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
		b.WriteString(suffix)
		out[k] = b.String()
	}
	return out, nil
}

func formatCell(c Column, label string, width int, cell Cell, nested bool) ([]string, error) {
	var lines []string
	if c.Sub != nil {
		sub, err := formatSub(c, label, width, cell)
		if err != nil {
			return nil, err
		}
		lines = sub
	} else {
		if cell.Parts != nil {
			return nil, errors.Newf(errors.ErrInvalidRow, "column %s has no sub-columns for %d parts", label, len(cell.Parts)).
				WithDetail("column", label)
		}
		lines = fitCell(c, width, cell.Text, nested)
	}

	if c.Style != "" {
		for i, line := range lines {
			lines[i] = "[" + c.Style + "]" + line + "[/" + c.Style + "]"
		}
	}
	return lines, nil
}

// fitCell applies the overflow policy and alignment for one simple cell.
// Tabs read as spaces. Newlines only break lines in wrapping columns;
// elsewhere they read as spaces too.
func fitCell(c Column, width int, s string, nested bool) []string {
	policy := c.Overflow.kind
	if policy == expandOverflow && nested {
		policy = clipOverflow
	}
	if width <= 0 && policy != expandOverflow {
		return []string{""}
	}
	s = strings.ReplaceAll(s, "\t", " ")
	if policy != wrapOverflow {
		s = strings.ReplaceAll(s, "\n", " ")
	}

	var lines []string
	switch policy {
	case wrapOverflow:
		for _, line := range text.Wrap(s, width) {
			clipped := text.Clip(line, width)
			// A glyph wider than the column leaves a marker behind.
			if text.Width(clipped) == 0 && text.Width(line) > 0 {
				clipped = text.Clip(text.DefaultEllipsis, width)
			}
			lines = append(lines, clipped)
		}
	case clipOverflow:
		lines = []string{text.Clip(s, width)}
	case expandOverflow:
		lines = []string{s}
	default:
		lines = []string{text.Truncate(s, width, c.Overflow.Ellipsis(), c.Overflow.position)}
	}

	for i, line := range lines {
		lines[i] = text.Pad(line, width, c.Align)
	}
	return lines
}

// formatSub resolves the sub-columns of c against this row's parts only and
// lays them out in exactly width columns. Sub-columns that come out zero
// wide are dropped together with their separator.
func formatSub(c Column, label string, width int, cell Cell) ([]string, error) {
	if width <= 0 {
		return []string{""}, nil
	}
	sub := c.Sub
	parts := cell.Parts
	if parts == nil {
		parts = []string{cell.Text}
	}
	if len(parts) > len(sub.Columns) {
		return nil, errors.Newf(errors.ErrInvalidRow, "column %s has %d sub-columns, cell has %d parts", label, len(sub.Columns), len(parts)).
			WithDetail("column", label)
	}

	cols := sub.Columns
	row := make(Row, len(cols))
	for j, p := range parts {
		row[j] = Text(p)
	}

	widths, gap, err := resolve(cols, sub.Separator, "", "", width, []Row{row})
	if err != nil {
		return nil, withColumn(err, label)
	}

	var activeCols []Column
	var activeRow Row
	for j, sc := range cols {
		if widths[j] > 0 || sc.Width.kind == fillWidth {
			activeCols = append(activeCols, sc)
			activeRow = append(activeRow, row[j])
		}
	}
	if len(activeCols) < len(cols) {
		widths, gap, err = resolve(activeCols, sub.Separator, "", "", width, []Row{activeRow})
		if err != nil {
			return nil, withColumn(err, label)
		}
		cols, row = activeCols, activeRow
	}

	return layoutRow(cols, sub.Separator, "", "", widths, gap, row, true)
}

func withColumn(err error, label string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		e.WithDetail("column", label)
	}
	return err
}
