package markup

import (
	"fmt"
	"strings"
)

// OutputMode represents the render target chosen by the caller
type OutputMode int

const (
	// Auto applies styles when the terminal supports color and strips them otherwise
	Auto OutputMode = iota
	// Term always applies styles
	Term
	// Text renders plain text without any styling
	Text
	// TermDebug echoes the style tags literally
	TermDebug
)

// String returns the string representation of the mode
func (m OutputMode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Term:
		return "term"
	case Text:
		return "text"
	case TermDebug:
		return "term-debug"
	default:
		return "unknown"
	}
}

// ParseOutputMode parses a string into an OutputMode value
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return Auto, nil
	case "term", "terminal":
		return Term, nil
	case "text", "plain":
		return Text, nil
	case "term-debug", "debug":
		return TermDebug, nil
	default:
		return Auto, fmt.Errorf("unknown output mode: %s", s)
	}
}

// Transform is what the renderer does with style tags.
type Transform int

const (
	// Apply turns tags into escape sequences.
	Apply Transform = iota
	// Remove drops tags and keeps their content.
	Remove
	// Keep leaves the tags in place.
	Keep
)

// String returns the string representation of the transform
func (t Transform) String() string {
	switch t {
	case Apply:
		return "apply"
	case Remove:
		return "remove"
	case Keep:
		return "keep"
	default:
		return "unknown"
	}
}

// Transform maps the mode to a transform. Only Auto looks at
// supportsColor.
func (m OutputMode) Transform(supportsColor bool) Transform {
	switch m {
	case Auto:
		if supportsColor {
			return Apply
		}
		return Remove
	case Text:
		return Remove
	case TermDebug:
		return Keep
	default:
		return Apply
	}
}

// UnknownTagPolicy says what happens to tags the theme does not define.
type UnknownTagPolicy int

const (
	// Passthrough keeps the markers with a trailing "?" after the name
	// when applying styles, so typos stay visible.
	Passthrough UnknownTagPolicy = iota
	// StripUnknown drops the markers and keeps the content.
	StripUnknown
)

// String returns the string representation of the policy
func (p UnknownTagPolicy) String() string {
	switch p {
	case Passthrough:
		return "passthrough"
	case StripUnknown:
		return "strip"
	default:
		return "unknown"
	}
}

// ParseUnknownTagPolicy parses "passthrough" or "strip".
func ParseUnknownTagPolicy(s string) (UnknownTagPolicy, error) {
	switch strings.ToLower(s) {
	case "passthrough", "":
		return Passthrough, nil
	case "strip":
		return StripUnknown, nil
	default:
		return Passthrough, fmt.Errorf("unknown tag policy: %s", s)
	}
}
