package outstanding

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/theme"
)

func newGuideCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Short:   MsgGuideShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprint(cmd.OutOrStdout(), renderGuide(s, MsgGuide)); err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrWriteOutput)
			}
			return nil
		},
	}
}

// guideStyle picks the glamour style matching the session output.
func guideStyle(s *session) string {
	switch {
	case !s.colored():
		return "notty"
	case s.colorMode == theme.Light:
		return "light"
	default:
		return "dark"
	}
}

// renderGuide renders markdown for the terminal, falling back to the raw
// text when glamour cannot.
func renderGuide(s *session, content string) string {
	options := []glamour.TermRendererOption{
		glamour.WithStandardStyle(guideStyle(s)),
		glamour.WithColorProfile(s.profile),
	}
	if width := s.width(); width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
