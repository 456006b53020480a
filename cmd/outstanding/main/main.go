package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/outstanding/cmd/outstanding"
	"github.com/arthur-debert/outstanding/internal/terminal"
)

func main() {
	rootCmd := outstanding.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if rerr := outstanding.ReportError(os.Stderr, err); rerr != nil {
			if !terminal.SupportsColor(os.Stderr) {
				pterm.DisableColor()
			}
			pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		}
		os.Exit(1)
	}
}
