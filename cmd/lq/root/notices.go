package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/ui"
)

func newNoticesCmd() *cobra.Command {
	var markAll bool
	var markID string
	var limit int

	cmd := &cobra.Command{
		Use:   "notices",
		Short: "Show notifications (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, cleanup, err := openEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			if markID != "" {
				eng.MarkRead(markID)
			}
			if markAll {
				eng.MarkAllRead()
			}

			out := cmd.OutOrStdout()
			notices := eng.Notifications()
			fmt.Fprintln(out, ui.Heading(ui.IconBell, fmt.Sprintf("Notifications (%d unread)", eng.UnreadCount())))
			if len(notices) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing yet. Go capture something!"))
				return nil
			}
			for i, n := range notices {
				if limit > 0 && i >= limit {
					fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("… and %d more", len(notices)-limit)))
					break
				}
				prefix := "•"
				if n.Urgent {
					prefix = ui.Warn.Render("!")
				}
				msg := n.Message
				if n.Read {
					msg = ui.Muted.Render(msg)
				}
				fmt.Fprintf(out, "%s %s %s %s\n", prefix, msg,
					ui.Muted.Render(n.CreatedAt.Local().Format("Jan 2 15:04")),
					ui.Muted.Render("["+n.ID+"]"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&markAll, "mark-all", false, "Mark every notification read")
	cmd.Flags().StringVar(&markID, "mark", "", "Mark one notification read by id")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Show at most this many (0 = all)")
	return cmd
}
