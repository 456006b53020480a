// Package table lays out rows of text in columns of terminal cells.
//
// A Spec is an ordered list of Columns plus the separator, prefix and
// suffix printed around them. Each column picks a sizing strategy:
//
//   - Fixed(n): exactly n display columns
//   - Bounded(min, max): as wide as the widest sample cell, within limits
//   - Fill(): an equal share of what is left
//   - Fraction(w): a share of what is left proportional to w
//
// Spec.Resolve turns the strategies into concrete widths for a total
// width, and Spec.FormatRow uses them to format rows. Content that does
// not fit is truncated, clipped, wrapped or allowed to expand according to
// the column's Overflow. All measurement is in display columns, so wide
// glyphs, combining marks and ANSI escape sequences are handled.
//
// A column can be split into sub-columns, which are resolved again for
// every row against that row's parts only:
//
//	spec, _ := table.NewSpec([]table.Column{
//		{Name: "n", Width: table.Fixed(4)},
//		{Name: "title", Width: table.Fill(), Sub: &table.SubColumns{
//			Columns: []table.Column{
//				{Width: table.Fill()},
//				{Width: table.Bounded(0, 12), Align: table.Right},
//			},
//			Separator: " ",
//		}},
//	})
//	t, _ := table.NewTable(spec, 40, nil)
//	line, _ := t.Row(table.Text("1."), table.Parts("Implement auth", "v2"))
//
// Columns with a Style have each formatted line wrapped in a
// "[style]...[/style]" tag, to be rendered later by the markup package.
package table
