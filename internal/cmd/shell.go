package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/parlancehq/parlance/internal/ui"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive parsing session",
	Long: `Shell loads the model once and parses utterances in a loop.
Type "exit" or press Ctrl-C to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		fmt.Println("Model loaded. Enter an utterance to parse.")
		for {
			prompt := promptui.Prompt{
				Label: "parlance",
			}
			text, err := prompt.Run()
			if err != nil {
				// Ctrl-C or EOF ends the session.
				fmt.Println("\nBye")
				return nil
			}
			if text == "" {
				continue
			}
			if text == "exit" || text == "quit" {
				fmt.Println("Bye")
				return nil
			}

			result, err := engine.Parse(text, nil)
			if err != nil {
				ui.PrintError(fmt.Sprintf("parse failed: %v", err))
				continue
			}
			if result.Intent == nil {
				fmt.Println(ui.NoMatch())
				continue
			}

			fmt.Printf("%s (%.3f)\n", ui.Intent(result.Intent.IntentName), result.Intent.Probability)
			for _, slot := range result.Slots {
				value, _ := json.Marshal(slot.Value)
				fmt.Printf("  %s = %q -> %s\n", slot.SlotName, slot.RawValue, value)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
