package outstanding

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/outstanding/internal/tablespec"
	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/logging"
	"github.com/arthur-debert/outstanding/pkg/table"
)

// subCellSeparator splits a field into the cells of a sub-column group.
const subCellSeparator = "|"

func newTableCmd(flags *globalFlags) *cobra.Command {
	var (
		columnsPath string
		noHeader    bool
		rule        string
	)

	cmd := &cobra.Command{
		Use:     "table --columns spec.toml [file]",
		Short:   MsgTableShort,
		Long:    MsgTableLong,
		Example: MsgTableExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.table")
			defer logging.LogOperationStart(logger, "table")()

			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			spec, err := tablespec.Load(columnsPath, tablespec.Options{
				Separator: s.cfg.Separator,
				Ellipsis:  s.cfg.Ellipsis,
			})
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			rows := parseRows(input, spec.Columns())

			tbl, err := table.NewTable(spec, s.width(), rows)
			if err != nil {
				return err
			}
			logger.Info().
				Int("rows", len(rows)).
				Int("width", tbl.Widths().Total).
				Ints("widths", tbl.Widths().Widths).
				Msg("Formatting table")

			lines, err := tableLines(s, tbl, rows, !noHeader, rule)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range lines {
				if _, err := fmt.Fprintln(out, line); err != nil {
					return errors.Wrap(err, errors.ErrInternal, MsgErrWriteOutput)
				}
			}
			if len(rows) == 0 {
				return s.output(out).RenderMessage("muted", MsgNoRows)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&columnsPath, "columns", "c", "", MsgFlagColumns)
	cmd.Flags().BoolVar(&noHeader, "no-header", false, MsgFlagNoHeader)
	cmd.Flags().StringVar(&rule, "rule", table.DefaultRule, MsgFlagRule)
	_ = cmd.MarkFlagRequired("columns")
	return cmd
}

// parseRows reads one row per non-empty line, one cell per tab separated
// field. Fields of sub-column groups become Parts.
func parseRows(input string, cols []table.Column) []table.Row {
	var rows []table.Row
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		row := make(table.Row, len(fields))
		for i, field := range fields {
			if i < len(cols) && cols[i].Sub != nil {
				row[i] = table.Parts(strings.Split(field, subCellSeparator)...)
				continue
			}
			row[i] = table.Text(field)
		}
		rows = append(rows, row)
	}
	return rows
}

// tableLines formats the header, rule and rows and renders their style
// tags. Header and rule take the header and rule styles.
func tableLines(s *session, tbl *table.Table, rows []table.Row, header bool, rule string) ([]string, error) {
	var lines []string
	if header {
		h, err := tbl.Header()
		if err != nil {
			return nil, err
		}
		if h, err = s.styled("header", h); err != nil {
			return nil, err
		}
		lines = append(lines, h)
		if rule != "" {
			r, err := s.styled("rule", tbl.Rule(rule))
			if err != nil {
				return nil, err
			}
			lines = append(lines, r)
		}
	}
	for _, row := range rows {
		formatted, err := tbl.Row(row...)
		if err != nil {
			return nil, err
		}
		rendered, err := s.render(formatted)
		if err != nil {
			return nil, err
		}
		lines = append(lines, rendered)
	}
	return lines, nil
}
