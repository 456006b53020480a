package theme

import (
	"strings"

	"github.com/muesli/termenv"
)

// hiddenSeq is SGR 8 (conceal), which termenv has no constant for.
const hiddenSeq = "8"

// Reset is the SGR sequence clearing all attributes.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

// Params returns the SGR parameters for a under the given color profile.
// Colors are degraded to what the profile supports; under termenv.Ascii
// they are dropped while text attributes are kept.
func (a Attrs) Params(profile termenv.Profile) []string {
	var params []string
	if a.Bold {
		params = append(params, termenv.BoldSeq)
	}
	if a.Dim {
		params = append(params, termenv.FaintSeq)
	}
	if a.Italic {
		params = append(params, termenv.ItalicSeq)
	}
	if a.Underline {
		params = append(params, termenv.UnderlineSeq)
	}
	if a.Blink {
		params = append(params, termenv.BlinkSeq)
	}
	if a.Reverse {
		params = append(params, termenv.ReverseSeq)
	}
	if a.Hidden {
		params = append(params, hiddenSeq)
	}
	if a.Strikethrough {
		params = append(params, termenv.CrossOutSeq)
	}
	if seq := colorSeq(profile, a.Fg, false); seq != "" {
		params = append(params, seq)
	}
	if seq := colorSeq(profile, a.Bg, true); seq != "" {
		params = append(params, seq)
	}
	return params
}

// Sequence returns the escape sequence switching a on, or "" when a
// produces no parameters under profile.
func (a Attrs) Sequence(profile termenv.Profile) string {
	params := a.Params(profile)
	if len(params) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(params, ";") + "m"
}

func colorSeq(profile termenv.Profile, c Color, bg bool) string {
	tc := c.termenv()
	if tc == nil {
		return ""
	}
	converted := profile.Convert(tc)
	if converted == nil {
		return ""
	}
	return converted.Sequence(bg)
}
