package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathiz-eval/internal/interaction"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [interaction]",
	Short: "List the rules available for each interaction",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := interaction.Registry()

		ids := reg.Interactions()
		if len(args) == 1 {
			ids = args[:1]
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-24s  %s", "Interaction", "Rule")))
		fmt.Fprintln(out, strings.Repeat("─", 60))

		count := 0
		for _, id := range ids {
			rules, err := reg.Rules(id)
			if err != nil {
				return err
			}
			for _, rule := range rules {
				fmt.Fprintf(out, "%-24s  %s\n", id, rule)
				count++
			}
		}

		fmt.Fprintf(out, "\n%d rules\n", count)
		return nil
	},
}
