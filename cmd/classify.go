package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathiz-eval/internal/codec"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [request.json]",
	Short: "Check an answer against a rule",
	Long: `Reads a classification request (from a file, or stdin when omitted) and
prints whether the answer matches the rule. For example:

  {"interaction": "NumericInput", "rule": "IsWithinTolerance",
   "answer": {"real": 5.05}, "inputs": {"x": {"real": 5}, "tol": {"real": 0.05}}}`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		req, err := codec.DecodeClassifyRequest(raw)
		if err != nil {
			return err
		}

		svc, _, cleanup, err := openService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := svc.Classify(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("classify %s.%s: %w", req.Interaction, req.Rule, err)
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(out).Encode(map[string]any{"id": result.ID, "matched": result.Matched})
		}

		verdict := noMatchStyle.Render("NO MATCH")
		if result.Matched {
			verdict = matchStyle.Render("MATCH")
		}
		fmt.Fprintf(out, "%s  %s.%s %s\n", verdict, req.Interaction, req.Rule, dimStyle.Render(result.ID))
		return nil
	},
}

func init() {
	classifyCmd.Flags().Bool("json", false, "Print the verdict as JSON")
}
