package outstanding

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/table"
	"github.com/arthur-debert/outstanding/pkg/text"
	"github.com/arthur-debert/outstanding/pkg/theme"
)

var stylesColumns = []table.Column{
	{Name: "name", Header: "Style", Width: table.Bounded(5, 20), Overflow: table.Truncate(text.End)},
	{Name: "kind", Header: "Kind", Width: table.Fixed(8)},
	{Name: "attrs", Header: "Attributes", Width: table.Fill(), Overflow: table.Truncate(text.End)},
}

func newStylesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "styles",
		Short:   MsgStylesShort,
		Long:    MsgStylesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			rows, err := styleRows(s)
			if err != nil {
				return err
			}
			spec, err := table.NewSpec(stylesColumns, table.WithSeparator(s.cfg.Separator))
			if err != nil {
				return err
			}
			tbl, err := table.NewTable(spec, s.width(), rows)
			if err != nil {
				return err
			}
			lines, err := tableLines(s, tbl, rows, true, table.DefaultRule)
			if err != nil {
				return err
			}
			for _, line := range lines {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return errors.Wrap(err, errors.ErrInternal, MsgErrWriteOutput)
				}
			}
			return nil
		},
	}
}

// styleRows describes every style of the session theme. Names are shown in
// their own style, drawn through lipgloss when colors are on.
func styleRows(s *session) ([]table.Row, error) {
	samples, err := styleSamples(s)
	if err != nil {
		return nil, err
	}

	names := s.theme.Names()
	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		style, _ := s.theme.Style(name)

		label := name
		if sample, ok := samples[name]; ok {
			label = sample.Render(name)
		} else if label, err = s.styled(name, name); err != nil {
			return nil, err
		}

		var detail string
		if style.Kind() == theme.KindAlias {
			detail = fmt.Sprintf(MsgAliasFormat, style.Target())
		} else {
			attrs, err := s.theme.Resolve(name, s.colorMode)
			if err != nil {
				return nil, err
			}
			detail = attrs.String()
		}
		if detail == "" {
			detail = MsgNoAttributes
		}
		rows = append(rows, table.Cells(label, style.Kind().String(), detail))
	}
	return rows, nil
}

// styleSamples returns the theme as lipgloss styles bound to the session
// profile, or nil when the session does not apply colors.
func styleSamples(s *session) (map[string]lipgloss.Style, error) {
	if !s.colored() {
		return nil, nil
	}
	styles, err := s.theme.LipglossStyles(s.colorMode)
	if err != nil {
		return nil, err
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(s.profile)
	for name, style := range styles {
		styles[name] = style.Renderer(r)
	}
	return styles, nil
}
