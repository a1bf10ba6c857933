package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/ui"
)

func newInviteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite <contact>",
		Short: "Invite a friend",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("contact is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, cleanup, err := openEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			res := eng.InviteFriend(args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMail, "Invitation sent"))
			fmt.Fprintln(out, ui.LabelValue("Contact", res.Contact))
			if res.LevelUp {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	return cmd
}
