package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parlancehq/parlance/internal/config"
	"github.com/parlancehq/parlance/internal/ui"
)

var parseIntents []string

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse an utterance into an intent and slots",
	Long: `Parse runs the full inference pipeline on the given text and prints
the result as JSON. Use --intents to restrict classification to a
subset of the model's intents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		intents := parseIntents
		if len(intents) == 0 {
			if cfg, err := config.Load(); err == nil && len(cfg.DefaultIntents) > 0 {
				intents = cfg.DefaultIntents
			}
		}

		result, err := engine.Parse(args[0], intents)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if result.Intent != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s (%.3f), %d slot(s)\n",
				ui.Intent(result.Intent.IntentName), result.Intent.Probability, len(result.Slots))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.NoMatch())
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().StringSliceVar(&parseIntents, "intents", nil,
		"comma-separated intent allow-list (default: all intents)")
	rootCmd.AddCommand(parseCmd)
}
