package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/ui"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List community events",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, cleanup, err := openEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMegaphone, "Community events"))
			for _, ev := range eng.Events() {
				fmt.Fprintf(out, "- %s %s\n", ui.H2.Render(ev.Title), ui.Muted.Render(fmt.Sprintf("[%s]", ev.ID)))
				fmt.Fprintf(out, "  %s · %s · %d points at attendance · %d joined\n",
					ev.StartsAt.Format("Mon Jan 2, 15:04"), ev.Location, ev.RewardPoints, ev.Participants)
				if ev.Description != "" {
					fmt.Fprintln(out, "  "+ui.Muted.Render(ev.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
