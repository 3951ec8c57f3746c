package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parlancehq/parlance/internal/ui"
)

var slotCmd = &cobra.Command{
	Use:   "slot <text> <intent> <slot-name>",
	Short: "Extract a single slot, bypassing intent classification",
	Long: `Slot extracts one named slot from the text, assuming the given intent.
The intent and slot name must exist in the model's dataset metadata.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		slot, err := engine.ExtractSlot(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if slot == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.NoMatch())
			fmt.Println("null")
			return nil
		}

		out, err := json.MarshalIndent(slot, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slotCmd)
}
