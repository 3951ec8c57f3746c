package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parlancehq/parlance/internal/model"
)

// version will be set by build flags from cmd/parlance/main.go
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of the parlance CLI and the model format it loads.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("parlance version %s (model format %s)\n", version, model.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version string (called from main.go)
func SetVersion(v string) {
	version = v
}
