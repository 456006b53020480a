package outstanding

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/outstanding/pkg/errors"
)

// readInput returns the content of the file named by the first argument,
// or standard input when there is none or it is "-". One trailing newline
// is dropped since every command ends its output with one.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
		name = "-"
	)
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, MsgErrReadInput, name).
			WithDetail("path", name)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
