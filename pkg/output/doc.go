// Package output implements the template-based rendering pipeline.
//
// # Rendering Pipeline
//
//  1. Callers pass a template and structured data
//  2. The TemplateEngine expands the template into tagged text
//     (e.g. "[title]{{.Name}}[/title]")
//  3. The markup package resolves the tags against a theme and applies,
//     strips or keeps them depending on the output mode
//  4. The final text is written to the renderer's io.Writer
//
// # Usage Example
//
//	th, _ := theme.Default()
//	r := output.NewRenderer(os.Stdout, th, output.WithMode(markup.Auto, true))
//	err := r.Render("[ok]{{.Count}} files[/ok] written", map[string]int{"Count": 3})
//
// # Template System
//
// GoTemplates uses text/template with a few layout helpers (see
// DefaultFuncs), so cells can be sized in display columns:
//
//	{{range .Items}}{{.Name | pad 12}} {{style "muted" .Path}}
//	{{end}}
//
// Other engines plug in through the TemplateEngine interface.
package output
