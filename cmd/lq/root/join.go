package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/ui"
)

func newJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join <event-id>",
		Short: "Join a community event",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("event id is required (see `lq events`)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, cleanup, err := openEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := eng.JoinEvent(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHandshake, "You're in!"))
			fmt.Fprintln(out, ui.LabelValue("Event", res.Event.Title))
			fmt.Fprintln(out, ui.LabelValue("When", res.Event.StartsAt.Format("Mon Jan 2, 15:04")))
			fmt.Fprintln(out, ui.LabelValue("Where", res.Event.Location))
			fmt.Fprintln(out, ui.LabelValue("Attendance reward", fmt.Sprintf("%d points", res.Event.RewardPoints)))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d participants so far", res.Event.Participants)))
			if res.LevelUp {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	return cmd
}
