package cli

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-settlement/app"
	"github.com/sprintertech/sprinter-settlement/bundle"
	"github.com/sprintertech/sprinter-settlement/claim"
)

var (
	watchStatus   bool
	watchInterval time.Duration
)

var statusCMD = &cobra.Command{
	Use:   "status <bundle-id>",
	Short: "Print the settlement status of a bundle",
	Long: `Derive the status of a bundle from the orchestrator data.

Examples:
  sprinter-settlement status 4242 --config config.json
  sprinter-settlement status 4242 --config env --watch --interval 10s`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	statusCMD.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Poll until the bundle reaches a terminal status")
	statusCMD.Flags().DurationVar(&watchInterval, "interval", 5*time.Second, "Polling interval when watching")
}

func runStatus(cmd *cobra.Command, args []string) error {
	bundleID, ok := new(big.Int).SetString(args[0], 10)
	if !ok {
		return fmt.Errorf("invalid bundle id %s", args[0])
	}

	configuration, err := app.LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	tracker := app.NewBundleTracker(ctx, configuration, nil)
	for {
		result, err := checkStatus(ctx, tracker, bundleID)
		if err != nil {
			return err
		}
		displayStatus(result)

		if !watchStatus || result.Status.IsTerminal() {
			return nil
		}

		select {
		case <-time.After(watchInterval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func checkStatus(ctx context.Context, tracker *bundle.Tracker, bundleID *big.Int) (*bundle.Result, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Checking bundle status..."
	s.Start()
	defer s.Stop()

	return tracker.Status(ctx, bundleID)
}

func displayStatus(result *bundle.Result) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                        BUNDLE STATUS")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Bundle:          %s\n", color.CyanString(result.BundleID.String()))
	fmt.Printf("  Status:          %s\n", coloredStatus(string(result.Status)))
	if result.FillTransactionHash != nil {
		fmt.Printf("  Fill Tx:         %s\n", color.HiBlackString(result.FillTransactionHash.Hex()))
	}
	if result.FillTimestamp != nil {
		fmt.Printf("  Filled At:       %s\n", result.FillTimestamp.UTC().Format("2006-01-02 15:04:05"))
	}

	for _, c := range result.Claims {
		fmt.Printf("\n  Claim %s on chain %d: %s\n", c.DepositID, c.ChainID, coloredStatus(string(c.Status)))
		if c.ClaimTransactionHash != nil {
			fmt.Printf("    Claim Tx:      %s\n", color.HiBlackString(c.ClaimTransactionHash.Hex()))
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func coloredStatus(status string) string {
	switch status {
	case string(bundle.StatusCompleted), string(claim.StatusClaimed):
		return color.GreenString(status)
	case string(bundle.StatusPending), string(bundle.StatusPreconfirmed), string(bundle.StatusFilled):
		return color.YellowString(status)
	case string(bundle.StatusFailed), string(bundle.StatusExpired):
		return color.RedString(status)
	case string(bundle.StatusPartiallyCompleted):
		return color.MagentaString(status)
	default:
		return status
	}
}
