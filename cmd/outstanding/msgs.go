package outstanding

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render styled terminal output from markup"
	MsgRenderShort     = "Render markup from a file or standard input"
	MsgTableShort      = "Lay out tab separated rows as a table"
	MsgStylesShort     = "List the styles of the active theme"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgGuideShort      = "Show the markup and table layout guide"

	// Status messages
	MsgVersionFormat = "outstanding %s\n"
	MsgAliasFormat   = "-> %s"
	MsgNoAttributes  = "(plain)"
	MsgNoRows        = "(no rows)"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrReadInput   = "failed to read input %s"
	MsgErrReadTheme   = "failed to read theme %s"
	MsgErrReadData    = "failed to read template data %s"
	MsgErrParseData   = "failed to parse template data %s"
	MsgErrWriteOutput = "failed to write output"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/outstanding/config.toml)"
	MsgFlagOutput      = "Output mode: auto, term, text or term-debug"
	MsgFlagWidth       = "Output width in columns (0 detects the terminal)"
	MsgFlagTheme       = "YAML stylesheet layered over the built-in theme"
	MsgFlagColorMode   = "Adaptive style variant: auto, dark or light"
	MsgFlagUnknownTags = "Unknown tags: passthrough or strip"
	MsgFlagData        = "YAML file whose content is the template data"
	MsgFlagStrict      = "Fail on tags the theme does not define"
	MsgFlagColumns     = "TOML file describing the table columns"
	MsgFlagNoHeader    = "Do not print the header line"
	MsgFlagRule        = "Glyph of the line under the header (empty for none)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/table-long.txt
	msgTableLongRaw string
	MsgTableLong    = strings.TrimSpace(msgTableLongRaw)

	//go:embed msgs/table-example.txt
	msgTableExampleRaw string
	MsgTableExample    = strings.TrimRight(msgTableExampleRaw, "\n")

	//go:embed msgs/styles-long.txt
	msgStylesLongRaw string
	MsgStylesLong    = strings.TrimSpace(msgStylesLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/guide.md
	MsgGuide string

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
