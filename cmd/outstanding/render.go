package outstanding

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/logging"
	"github.com/arthur-debert/outstanding/pkg/markup"
	"github.com/arthur-debert/outstanding/pkg/output"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		dataPath string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:     "render [file]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")
			defer logging.LogOperationStart(logger, "render")()

			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if dataPath != "" {
				data, err := loadData(dataPath)
				if err != nil {
					return err
				}
				if input, err = output.NewGoTemplates(nil).Render(input, data); err != nil {
					return err
				}
				logger.Debug().Str("data", dataPath).Msg("Expanded template")
			}

			if strict {
				if err := markup.Validate(input, s.theme); err != nil {
					return err
				}
			}

			logger.Info().
				Int("bytes", len(input)).
				Str("mode", s.mode.String()).
				Msg("Rendering markup")
			return s.output(cmd.OutOrStdout()).RenderMarkup(input)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", MsgFlagData)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

// loadData decodes the YAML document at path for use as template data.
func loadData(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrReadData, path).
			WithDetail("path", path)
	}
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrParseData, path).
			WithDetail("path", path)
	}
	return data, nil
}
