package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/outstanding/pkg/logging"
	"github.com/arthur-debert/outstanding/pkg/markup"
	"github.com/arthur-debert/outstanding/pkg/theme"
)

// Renderer runs the output pipeline: template expansion, then style tags,
// then the writer.
type Renderer struct {
	engine        TemplateEngine
	markup        *markup.Renderer
	theme         *theme.Theme
	writer        io.Writer
	mode          markup.OutputMode
	supportsColor bool
}

// Option configures a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	engine        TemplateEngine
	mode          markup.OutputMode
	supportsColor bool
	markupOpts    []markup.Option
}

// WithEngine replaces the default GoTemplates engine.
func WithEngine(engine TemplateEngine) Option {
	return func(c *rendererConfig) { c.engine = engine }
}

// WithMode sets the output mode and whether the destination supports
// color, which only Auto consults.
func WithMode(mode markup.OutputMode, supportsColor bool) Option {
	return func(c *rendererConfig) {
		c.mode = mode
		c.supportsColor = supportsColor
	}
}

// WithMarkupOptions passes options through to the markup renderer.
func WithMarkupOptions(opts ...markup.Option) Option {
	return func(c *rendererConfig) { c.markupOpts = append(c.markupOpts, opts...) }
}

// NewRenderer creates a Renderer writing to w with styles from t. Without
// options it uses GoTemplates and Auto mode without color.
func NewRenderer(w io.Writer, t *theme.Theme, opts ...Option) *Renderer {
	cfg := rendererConfig{mode: markup.Auto}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.engine == nil {
		cfg.engine = NewGoTemplates(nil)
	}

	logger := logging.GetLogger("output.Renderer")
	logger.Debug().
		Str("mode", cfg.mode.String()).
		Bool("supportsColor", cfg.supportsColor).
		Str("transform", cfg.mode.Transform(cfg.supportsColor).String()).
		Msg("Creating renderer")

	return &Renderer{
		engine:        cfg.engine,
		markup:        markup.NewRenderer(t, cfg.markupOpts...),
		theme:         t,
		writer:        w,
		mode:          cfg.mode,
		supportsColor: cfg.supportsColor,
	}
}

// Expand runs tmpl through the engine and renders the resulting markup,
// without writing it.
func (r *Renderer) Expand(tmpl string, data any) (string, error) {
	log := logging.GetLogger("output.Renderer")

	tagged, err := r.engine.Render(tmpl, data)
	if err != nil {
		return "", err
	}
	log.Trace().Str("templateOutput", tagged).Msg("Template executed")

	out, err := r.markup.Render(tagged, r.mode, r.supportsColor)
	if err != nil {
		return "", err
	}
	log.Debug().
		Bool("styled", out != tagged).
		Msg("Rendered style tags")
	return out, nil
}

// Render expands tmpl with data and writes the result followed by a
// newline.
func (r *Renderer) Render(tmpl string, data any) error {
	out, err := r.Expand(tmpl, data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.writer, out)
	return err
}

// RenderMarkup renders input, which is already markup, and writes it.
func (r *Renderer) RenderMarkup(input string) error {
	out, err := r.markup.Render(input, r.mode, r.supportsColor)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.writer, out)
	return err
}

// RenderMessage writes message wrapped in style. Brackets in message are
// not interpreted as tags. An undefined style leaves the message plain.
func (r *Renderer) RenderMessage(style, message string) error {
	if !r.theme.Has(style) {
		_, err := fmt.Fprintln(r.writer, message)
		return err
	}
	seq, err := r.styleOnly(style)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.writer, seq.open+message+seq.close)
	return err
}

// RenderError writes err with an "Error:" label in the error style.
func (r *Renderer) RenderError(err error) error {
	label := "Error:"
	if r.theme.Has("error") {
		styled, rerr := r.markup.Render("[error]Error:[/error]", r.mode, r.supportsColor)
		if rerr != nil {
			return rerr
		}
		label = styled
	}
	_, werr := fmt.Fprintln(r.writer, label+" "+err.Error())
	return werr
}

type wrapper struct{ open, close string }

// styleOnly renders a one-byte marker body to find the opening and closing
// sequences of style, so arbitrary text can be wrapped without parsing it.
func (r *Renderer) styleOnly(style string) (wrapper, error) {
	const marker = "\x00"
	out, err := r.markup.Render("["+style+"]"+marker+"[/"+style+"]", r.mode, r.supportsColor)
	if err != nil {
		return wrapper{}, err
	}
	for i := 0; i < len(out); i++ {
		if out[i] == marker[0] {
			return wrapper{open: out[:i], close: out[i+1:]}, nil
		}
	}
	return wrapper{}, nil
}
