// Package markup parses and renders semantic style tags.
//
// Markup is plain text with bracketed regions named after theme styles:
//
//	[title]Deploy[/title] finished [ok]3 packs[/ok], [warn]1 skipped[/warn]
//
// A tag name starts with a letter and continues with letters, digits,
// hyphens or underscores. Brackets that do not form a tag ("[1]", "[ x ]",
// "[") are literal text. Tags must nest strictly; anything else is an
// UNBALANCED_TAG error carrying the tag name and byte offset.
//
// Rendering is driven by an OutputMode:
//
//   - Term applies styles as ANSI escape sequences
//   - Text removes the tags
//   - TermDebug keeps the tags verbatim
//   - Auto picks Term or Text from the caller's supportsColor flag
//
// Nested styles compose: the inner style is merged over the outer one and
// the outer one is restored when the inner tag closes. Escape sequences are
// emitted only when the composed style changes.
//
// Tags missing from the theme are passed through as "[name?]" markers when
// styles are applied, or dropped, depending on the UnknownTagPolicy.
// Validate is the strict alternative that rejects them.
package markup
