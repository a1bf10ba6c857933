package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lq",
	Short:         "LitterQuest — catch litter monsters, report dumping, level up",
	Long:          "LitterQuest is a local-first progression engine for a gamified environmental-awareness app: capture litter monsters near you, report illegal dumping hotspots, join community events, and earn points, badges, and levels.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newCaptureCmd(),
		newReportCmd(),
		newJoinCmd(),
		newInviteCmd(),
		newNearbyCmd(),
		newEventsCmd(),
		newStatusCmd(),
		newNoticesCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
