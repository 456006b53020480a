package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/outstanding/cmd/outstanding"
	"github.com/arthur-debert/outstanding/internal/version"
)

func main() {
	rootCmd := outstanding.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "OUTSTANDING",
		Section: "1",
		Source:  "outstanding " + version.Version,
		Manual:  "outstanding manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
