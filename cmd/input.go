package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readInput returns the request document from the file named by args[0],
// or from stdin when no file (or "-") is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return raw, nil
}
