package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parlancehq/parlance/internal/config"
	"github.com/parlancehq/parlance/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure parlance settings",
	Long: `Configure the default model bundle and intent filter.

Examples:
  parlance config --show                       # Show current configuration
  parlance config --model ./assistant          # Set default model path
  parlance config --intents MakeCoffee,MakeTea # Set default intent filter
  parlance config --reset                      # Reset configuration`,
	Run: runConfig,
}

var (
	configShow    bool
	configReset   bool
	configModel   string
	configIntents string
)

func init() {
	configCmd.Flags().BoolVar(&configShow, "show", false, "Show current configuration")
	configCmd.Flags().BoolVar(&configReset, "reset", false, "Reset configuration")
	configCmd.Flags().StringVar(&configModel, "model", "", "Default model bundle path (directory or .zip)")
	configCmd.Flags().StringVar(&configIntents, "intents", "", "Default comma-separated intent filter")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	if configShow {
		showConfig()
		return
	}

	if configReset {
		if err := config.Save(&config.Config{}); err != nil {
			ui.PrintError(fmt.Sprintf("failed to reset configuration: %v", err))
			os.Exit(1)
		}
		ui.PrintOK("Configuration reset")
		return
	}

	if configModel == "" && configIntents == "" {
		showConfig()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}
	if configModel != "" {
		if _, err := os.Stat(configModel); err != nil {
			ui.PrintError(fmt.Sprintf("model path not accessible: %v", err))
			os.Exit(1)
		}
		cfg.ModelPath = configModel
	}
	if configIntents != "" {
		cfg.DefaultIntents = nil
		for _, name := range strings.Split(configIntents, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.DefaultIntents = append(cfg.DefaultIntents, name)
			}
		}
	}
	if err := config.Save(cfg); err != nil {
		ui.PrintError(fmt.Sprintf("failed to save configuration: %v", err))
		os.Exit(1)
	}
	ui.PrintOK("Configuration saved")
}

func showConfig() {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError(fmt.Sprintf("failed to load configuration: %v", err))
		os.Exit(1)
	}
	fmt.Printf("Config file:     %s\n", config.Path())
	if cfg.ModelPath == "" {
		fmt.Println("Model path:      (not set)")
	} else {
		fmt.Printf("Model path:      %s\n", cfg.ModelPath)
	}
	if len(cfg.DefaultIntents) == 0 {
		fmt.Println("Default intents: (all)")
	} else {
		fmt.Printf("Default intents: %s\n", strings.Join(cfg.DefaultIntents, ", "))
	}
}
