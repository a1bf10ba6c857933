package root

import (
	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, cleanup, err := openEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(eng, cmd.OutOrStdout())
		},
	}

	return cmd
}
