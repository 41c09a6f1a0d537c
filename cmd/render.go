package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathiz-eval/internal/codec"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var renderCmd = &cobra.Command{
	Use:   "render [request.json]",
	Short: "Read a math expression or equation aloud",
	Long: `Reads a render request (from a file, or stdin when omitted) and prints the
spoken English form. For example:

  {"fractions": true,
   "expression": {"binary": {"op": "divide", "left": {"constant": 1}, "right": {"constant": 2}}}}

--lang and --fractions override the request when given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		req, err := codec.DecodeRenderRequest(raw)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("lang") {
			name, _ := cmd.Flags().GetString("lang")
			tag, err := language.Parse(name)
			if err != nil {
				return fmt.Errorf("invalid --lang %q: %w", name, err)
			}
			req.Language = tag
		}
		if cmd.Flags().Changed("fractions") {
			req.Fractions, _ = cmd.Flags().GetBool("fractions")
		}

		svc, _, cleanup, err := openService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		result := svc.Render(cmd.Context(), req)

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(out).Encode(map[string]any{
				"id":       result.ID,
				"language": result.Language.String(),
				"text":     result.Text,
				"ok":       result.OK,
			})
		}

		if !result.OK {
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("(no spoken form available for %s)", result.Language)))
			return nil
		}
		fmt.Fprintln(out, result.Text)
		return nil
	},
}

func init() {
	renderCmd.Flags().String("lang", "en", "BCP 47 language tag to render in")
	renderCmd.Flags().Bool("fractions", false, "Read division as fractions")
	renderCmd.Flags().Bool("json", false, "Print the result as JSON")
}
