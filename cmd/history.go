package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathiz-eval/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded evaluations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().Events(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%6s  %-19s  %-14s  %s", "Seq", "Time", "Type", "Detail")))
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for _, ev := range events {
			fmt.Fprintf(out, "%6d  %-19s  %-14s  %s\n",
				ev.Sequence, ev.Timestamp.Local().Format("2006-01-02 15:04:05"), ev.Type, describeEvent(ev))
		}

		fmt.Fprintf(out, "\n%d events\n", len(events))
		return nil
	},
}

func describeEvent(ev store.Event) string {
	switch {
	case ev.Classification != nil:
		c := ev.Classification
		switch {
		case c.Error != "":
			return fmt.Sprintf("%s.%s error: %s", c.Interaction, c.Rule, c.Error)
		case c.Matched:
			return fmt.Sprintf("%s.%s %s", c.Interaction, c.Rule, matchStyle.Render("match"))
		default:
			return fmt.Sprintf("%s.%s %s", c.Interaction, c.Rule, noMatchStyle.Render("no match"))
		}
	case ev.Render != nil:
		r := ev.Render
		if !r.OK {
			return fmt.Sprintf("[%s] %s", r.Language, dimStyle.Render("unavailable"))
		}
		return fmt.Sprintf("[%s] %s", r.Language, r.Rendered)
	default:
		return ""
	}
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show (0 = all)")
}
