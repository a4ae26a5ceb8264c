package cli

import (
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-settlement/app"
)

var runCMD = &cobra.Command{
	Use:   "run",
	Short: "Run the settlement service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}
