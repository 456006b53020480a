package outstanding

import (
	"io"
	"os"

	"github.com/arthur-debert/outstanding/internal/terminal"
	"github.com/arthur-debert/outstanding/pkg/markup"
	"github.com/arthur-debert/outstanding/pkg/output"
	"github.com/arthur-debert/outstanding/pkg/theme"
)

// ReportError writes err to f with the error style of the built-in theme,
// in color only when f supports it.
func ReportError(f *os.File, err error) error {
	return reportError(f, terminal.SupportsColor(f), err)
}

func reportError(w io.Writer, color bool, err error) error {
	th, terr := theme.Default()
	if terr != nil {
		return terr
	}
	r := output.NewRenderer(w, th, output.WithMode(markup.Auto, color))
	return r.RenderError(err)
}
