package table

import (
	"fmt"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/text"
	"github.com/arthur-debert/outstanding/pkg/theme"
)

type widthKind int

const (
	fixedWidth widthKind = iota
	boundedWidth
	fillWidth
	fractionWidth
)

// Width is a column sizing strategy.
type Width struct {
	kind   widthKind
	n      int
	min    int
	max    int
	weight int
}

// Fixed sizes a column to exactly n columns.
func Fixed(n int) Width { return Width{kind: fixedWidth, n: n} }

// Bounded sizes a column to its widest sample cell, clamped to [min, max].
// Without samples the column gets min.
func Bounded(min, max int) Width { return Width{kind: boundedWidth, min: min, max: max} }

// Fill gives a column an equal share of the space left over.
func Fill() Width { return Width{kind: fillWidth, weight: 1} }

// Fraction gives a column a share of the leftover space proportional to
// weight. Fill counts as weight 1.
func Fraction(weight int) Width { return Width{kind: fractionWidth, weight: weight} }

// IsFlexible reports whether the width comes from leftover space.
func (w Width) IsFlexible() bool { return w.kind == fillWidth || w.kind == fractionWidth }

// String returns a compact description such as "fixed(4)" or "fill".
func (w Width) String() string {
	switch w.kind {
	case fixedWidth:
		return fmt.Sprintf("fixed(%d)", w.n)
	case boundedWidth:
		return fmt.Sprintf("bounded(%d,%d)", w.min, w.max)
	case fillWidth:
		return "fill"
	default:
		return fmt.Sprintf("fraction(%d)", w.weight)
	}
}

func (w Width) validate() error {
	switch w.kind {
	case fixedWidth:
		if w.n < 0 {
			return fmt.Errorf("fixed width %d is negative", w.n)
		}
	case boundedWidth:
		if w.min < 0 || w.max < w.min {
			return fmt.Errorf("bounded width needs 0 <= min <= max, got %d,%d", w.min, w.max)
		}
	case fractionWidth:
		if w.weight <= 0 {
			return fmt.Errorf("fraction weight must be positive, got %d", w.weight)
		}
	}
	return nil
}

// Align is the horizontal alignment of a cell inside its column.
type Align = text.Align

const (
	Left   = text.AlignLeft
	Right  = text.AlignRight
	Center = text.AlignCenter
)

type overflowKind int

const (
	truncateOverflow overflowKind = iota
	wrapOverflow
	clipOverflow
	expandOverflow
)

// Overflow says what happens to content wider than its column. The zero
// value truncates at the end with text.DefaultEllipsis.
type Overflow struct {
	kind     overflowKind
	position text.Position
	ellipsis string
}

// Truncate cuts overflowing content at pos and marks the cut with the
// default ellipsis.
func Truncate(pos text.Position) Overflow {
	return Overflow{kind: truncateOverflow, position: pos}
}

// TruncateWith is Truncate with a custom ellipsis.
func TruncateWith(pos text.Position, ellipsis string) Overflow {
	return Overflow{kind: truncateOverflow, position: pos, ellipsis: ellipsis}
}

// Wrap breaks overflowing content over several lines.
func Wrap() Overflow { return Overflow{kind: wrapOverflow} }

// Clip cuts overflowing content without a marker.
func Clip() Overflow { return Overflow{kind: clipOverflow} }

// Expand lets content overflow its column, pushing the rest of the row
// right. It is the one policy that breaks the row width.
func Expand() Overflow { return Overflow{kind: expandOverflow} }

// Ellipsis returns the marker used by truncation.
func (o Overflow) Ellipsis() string {
	if o.ellipsis == "" {
		return text.DefaultEllipsis
	}
	return o.ellipsis
}

// String returns the policy name.
func (o Overflow) String() string {
	switch o.kind {
	case wrapOverflow:
		return "wrap"
	case clipOverflow:
		return "clip"
	case expandOverflow:
		return "expand"
	default:
		return "truncate-" + o.position.String()
	}
}

// Anchor pins a column to an edge of the row.
type Anchor int

const (
	AnchorNone Anchor = iota
	// AnchorRight renders the column flush with the right edge, after all
	// unanchored columns.
	AnchorRight
)

// Column describes one column of a table.
type Column struct {
	Name     string
	Header   string
	Width    Width
	Align    Align
	Overflow Overflow
	Anchor   Anchor
	// Style, when set, names a theme style wrapped around each formatted line.
	Style string
	// Sub splits the column into sub-columns laid out per row.
	Sub *SubColumns
}

// SubColumns is a nested column group sharing one parent column's width.
// It must hold exactly one Fill column and cannot nest further.
type SubColumns struct {
	Columns   []Column
	Separator string
}

func (c Column) label(i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("#%d", i)
}

func validateColumn(c Column, i int, nested bool) error {
	label := c.label(i)
	if err := c.Width.validate(); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidColumn, "column %s", label).
			WithDetail("column", label)
	}
	if c.Style != "" && !theme.IsIdentifier(c.Style) {
		return errors.Newf(errors.ErrInvalidColumn, "column %s: invalid style name %q", label, c.Style).
			WithDetail("column", label)
	}
	if c.Sub == nil {
		return nil
	}
	if nested {
		return invalidSub(label, "sub-columns cannot nest")
	}
	if len(c.Sub.Columns) == 0 {
		return invalidSub(label, "no sub-columns")
	}
	fills := 0
	for j, sc := range c.Sub.Columns {
		if sc.Width.kind == fillWidth {
			fills++
		}
		if err := validateColumn(sc, j, true); err != nil {
			if errors.IsErrorCode(err, errors.ErrInvalidSubColumns) {
				return err
			}
			return errors.Wrapf(err, errors.ErrInvalidSubColumns, "column %s", label).
				WithDetail("column", label).
				WithDetail("reason", err.Error())
		}
	}
	if fills != 1 {
		return invalidSub(label, fmt.Sprintf("need exactly one fill sub-column, found %d", fills))
	}
	return nil
}

func invalidSub(column, reason string) error {
	return errors.Newf(errors.ErrInvalidSubColumns, "column %s: %s", column, reason).
		WithDetail("column", column).
		WithDetail("reason", reason)
}
