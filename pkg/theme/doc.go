// Package theme holds named styles and resolves them to concrete terminal
// attributes.
//
// A Theme maps names to styles, in declaration order. A style is one of:
//
//   - Plain: concrete attributes (colors, bold, italic...)
//   - Alias: the name of another style in the same theme
//   - Adaptive: separate attributes for light and dark terminals
//
// Style names are used as tags in markup:
//
//	[title]Release notes[/title]
//	[muted]generated 2025-08-15[/muted]
//
// Alias chains are walked with a visited set, so a cycle is reported as an
// ALIAS_CYCLE error instead of looping, and an alias naming a missing style
// is a DANGLING_ALIAS error. Validate checks the whole theme up front;
// Resolve runs the same walk lazily for one name.
//
// Themes are immutable once built and safe for concurrent use.
package theme
