// Package text measures, cuts and wraps terminal strings.
//
// All measurements are in display columns: escape sequences (CSI, OSC and
// friends) are zero wide, East Asian wide and fullwidth glyphs take two
// columns and combining marks take none. Offsets returned by this package
// never split a grapheme cluster or an escape sequence.
//
// The table and markup packages build on these primitives; they are also
// usable on their own:
//
//	text.Width("日本語")                          // 6
//	text.Truncate("Hello, World!", 8, "…", text.End) // "Hello, …"
//	text.Wrap("the quick brown fox", 10)          // ["the quick", "brown fox"]
package text
