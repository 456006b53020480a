package outstanding

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outstanding/internal/config"
	"github.com/arthur-debert/outstanding/internal/terminal"
	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/logging"
	"github.com/arthur-debert/outstanding/pkg/markup"
	"github.com/arthur-debert/outstanding/pkg/output"
	"github.com/arthur-debert/outstanding/pkg/theme"
)

// globalFlags holds the persistent flags shared by all commands.
type globalFlags struct {
	configPath  string
	output      string
	width       int
	theme       string
	colorMode   string
	unknownTags string
}

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"output":       "output",
	"width":        "width",
	"theme":        "theme",
	"color-mode":   "color_mode",
	"unknown-tags": "unknown_tags",
}

func (f *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", MsgFlagConfig)
	pf.StringVarP(&f.output, "output", "o", "", MsgFlagOutput)
	pf.IntVarP(&f.width, "width", "w", 0, MsgFlagWidth)
	pf.StringVar(&f.theme, "theme", "", MsgFlagTheme)
	pf.StringVar(&f.colorMode, "color-mode", "", MsgFlagColorMode)
	pf.StringVar(&f.unknownTags, "unknown-tags", "", MsgFlagUnknownTags)
}

// overrides returns the config values of the flags set on the command line.
func (f *globalFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	values := map[string]interface{}{
		"output":       f.output,
		"width":        f.width,
		"theme":        f.theme,
		"color-mode":   f.colorMode,
		"unknown-tags": f.unknownTags,
	}
	out := make(map[string]interface{})
	for flag, key := range flagKeys {
		if cmd.Flags().Changed(flag) {
			out[key] = values[flag]
		}
	}
	return out
}

// session is everything a rendering command needs, resolved once from the
// configuration and the terminal.
type session struct {
	cfg       *config.Config
	theme     *theme.Theme
	term      terminal.Info
	mode      markup.OutputMode
	policy    markup.UnknownTagPolicy
	colorMode theme.ColorMode
	profile   termenv.Profile
	markup    *markup.Renderer
}

func newSession(cmd *cobra.Command, flags *globalFlags) (*session, error) {
	log := logging.GetLogger("cmd.session")

	cfg, err := config.Load(config.Options{
		Path:      flags.configPath,
		Overrides: flags.overrides(cmd),
	})
	if err != nil {
		return nil, err
	}

	mode, err := markup.ParseOutputMode(cfg.Output)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid output mode").
			WithDetail("key", "output")
	}
	policy, err := markup.ParseUnknownTagPolicy(cfg.UnknownTags)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid unknown tag policy").
			WithDetail("key", "unknown_tags")
	}

	th, err := loadTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}

	info := terminal.Detect(os.Stdout)
	colorMode := info.ColorMode
	if cfg.ColorMode != "auto" {
		if colorMode, err = theme.ParseColorMode(cfg.ColorMode); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid color mode").
				WithDetail("key", "color_mode")
		}
	}

	// A forced term mode still needs colors when stdout is not a terminal.
	profile := info.Profile
	if mode == markup.Term && profile == termenv.Ascii {
		profile = termenv.TrueColor
	}

	s := &session{
		cfg:       cfg,
		theme:     th,
		term:      info,
		mode:      mode,
		policy:    policy,
		colorMode: colorMode,
		profile:   profile,
	}
	s.markup = markup.NewRenderer(th, s.markupOptions()...)

	log.Debug().
		Str("mode", mode.String()).
		Str("unknownTags", policy.String()).
		Str("colorMode", colorMode.String()).
		Int("styles", len(th.Names())).
		Msg("Session ready")
	return s, nil
}

func (s *session) markupOptions() []markup.Option {
	return []markup.Option{
		markup.WithColorMode(s.colorMode),
		markup.WithProfile(s.profile),
		markup.WithUnknownTags(s.policy),
	}
}

// output returns a pipeline renderer writing to w.
func (s *session) output(w io.Writer) *output.Renderer {
	return output.NewRenderer(w, s.theme,
		output.WithMode(s.mode, s.term.SupportsColor),
		output.WithMarkupOptions(s.markupOptions()...))
}

// width is the configured width, or the terminal's.
func (s *session) width() int {
	if s.cfg.Width > 0 {
		return s.cfg.Width
	}
	return s.term.Width
}

// colored reports whether the session output carries SGR sequences.
func (s *session) colored() bool {
	return s.mode.Transform(s.term.SupportsColor) == markup.Apply
}

// render converts markup for the session's output mode.
func (s *session) render(input string) (string, error) {
	return s.markup.Render(input, s.mode, s.term.SupportsColor)
}

// styled wraps plain text in style, leaving it untouched when the theme
// does not define the style.
func (s *session) styled(style, text string) (string, error) {
	if !s.theme.Has(style) {
		return text, nil
	}
	return s.render("[" + style + "]" + text + "[/" + style + "]")
}

// loadTheme returns the built-in theme with the stylesheet at path layered
// on top.
func loadTheme(path string) (*theme.Theme, error) {
	base, err := theme.Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, MsgErrReadTheme, path).
			WithDetail("path", path)
	}
	over, err := theme.LoadYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), MsgErrReadTheme, path).
			WithDetail("path", path)
	}
	merged, err := base.Merge(over)
	if err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	logger := logging.GetLogger("cmd.session")
	logger.Debug().
		Str("path", path).
		Int("overrides", len(over.Names())).
		Msg("Loaded theme")
	return merged, nil
}
