package table

import (
	"strings"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/logging"
	"github.com/arthur-debert/outstanding/pkg/text"
)

// ResolvedWidths holds concrete column widths for one total width.
type ResolvedWidths struct {
	// Widths is parallel to the spec's columns. A column with sub-columns
	// has one slot for its full width.
	Widths []int
	// Gap is the leftover space placed before right-anchored columns. It is
	// always zero when the spec has a flexible column or no anchored one.
	Gap int
	// Total is the width the layout was resolved for.
	Total int
}

// Resolve computes column widths for total display columns. Samples, when
// given, size Bounded columns to their widest cell.
//
// Fixed widths come first, then Bounded ones. If those do not fit, Bounded
// columns give back space down to their minimum, rightmost first, and a
// layout that still does not fit fails with WIDTH_OVERFLOW. What is left
// goes to Fill and Fraction columns by weight: each gets the floor of its
// share and the remainder is handed out one column at a time from the
// left. Without flexible columns the rightmost unanchored Bounded column
// grows towards its maximum.
func (s *Spec) Resolve(total int, samples []Row) (ResolvedWidths, error) {
	widths, gap, err := resolve(s.columns, s.separator, s.prefix, s.suffix, total, samples)
	if err != nil {
		return ResolvedWidths{}, err
	}
	logger := logging.GetLogger("table")
	logger.Trace().
		Int("total", total).
		Ints("widths", widths).
		Int("gap", gap).
		Int("samples", len(samples)).
		Msg("Resolved column widths")
	return ResolvedWidths{Widths: widths, Gap: gap, Total: total}, nil
}

func resolve(cols []Column, sep, prefix, suffix string, total int, samples []Row) ([]int, int, error) {
	n := len(cols)
	widths := make([]int, n)
	available := total - overhead(n, sep, prefix, suffix)

	for i, c := range cols {
		if c.Width.kind == fixedWidth {
			widths[i] = c.Width.n
			available -= widths[i]
		}
	}

	for i, c := range cols {
		if c.Width.kind != boundedWidth {
			continue
		}
		w := c.Width.min
		if len(samples) > 0 {
			w = clamp(sampleWidth(c, i, samples), c.Width.min, c.Width.max)
		}
		widths[i] = w
		available -= w
	}

	for i := n - 1; i >= 0 && available < 0; i-- {
		c := cols[i]
		if c.Width.kind != boundedWidth {
			continue
		}
		give := min(widths[i]-c.Width.min, -available)
		widths[i] -= give
		available += give
	}
	if available < 0 {
		return nil, 0, errors.Newf(errors.ErrWidthOverflow, "columns need %d more display columns than the %d available", -available, total).
			WithDetail("required", total-available).
			WithDetail("available", total)
	}

	weights := 0
	for _, c := range cols {
		if c.Width.IsFlexible() {
			weights += c.Width.weight
		}
	}
	if weights > 0 {
		distributed := 0
		for i, c := range cols {
			if c.Width.IsFlexible() {
				widths[i] = available * c.Width.weight / weights
				distributed += widths[i]
			}
		}
		for i := 0; distributed < available; i = (i + 1) % n {
			if cols[i].Width.IsFlexible() {
				widths[i]++
				distributed++
			}
		}
		return widths, 0, nil
	}

	for i := n - 1; i >= 0 && available > 0; i-- {
		c := cols[i]
		if c.Width.kind != boundedWidth || c.Anchor == AnchorRight {
			continue
		}
		grow := min(c.Width.max-widths[i], available)
		widths[i] += grow
		available -= grow
		break
	}

	gap := 0
	if hasAnchored(cols) {
		gap = available
	}
	return widths, gap, nil
}

func hasAnchored(cols []Column) bool {
	for _, c := range cols {
		if c.Anchor == AnchorRight {
			return true
		}
	}
	return false
}

// sampleWidth is the widest cell of column i over samples.
func sampleWidth(c Column, i int, samples []Row) int {
	widest := 0
	for _, row := range samples {
		if i >= len(row) {
			continue
		}
		widest = max(widest, cellWidth(c, row[i]))
	}
	return widest
}

func cellWidth(c Column, cell Cell) int {
	if cell.Parts == nil {
		return textWidth(cell.Text)
	}
	sep := ""
	if c.Sub != nil {
		sep = c.Sub.Separator
	}
	w := 0
	for j, p := range cell.Parts {
		if j > 0 {
			w += text.Width(sep)
		}
		w += textWidth(p)
	}
	return w
}

// textWidth measures the widest line of s.
func textWidth(s string) int {
	if !strings.Contains(s, "\n") {
		return text.Width(s)
	}
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, text.Width(line))
	}
	return widest
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
