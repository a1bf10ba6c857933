package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/engine"
	"github.com/zxsa0716/ecoproject/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show points, level, missions, and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, cleanup, err := openEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			level := eng.Level()
			toNext := level*engine.LevelStep - eng.Points()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Eco Status"))
			fmt.Fprintln(out, ui.LabelValue("Rank", eng.Rank()))
			fmt.Fprintln(out, ui.LabelValue("Level", level))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d (%d to next level)", eng.Points(), toNext)))
			fmt.Fprintln(out, ui.LabelValue("Environment score", eng.EnvironmentScore()))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🎯 Missions"))
			for _, m := range eng.Missions() {
				mark := " "
				if m.Completed {
					mark = "✓"
				}
				fmt.Fprintf(out, "- [%s] %s %s %s\n",
					mark, m.Title,
					ui.Muted.Render(fmt.Sprintf("%d/%d", m.Progress, m.Total)),
					ui.Muted.Render(fmt.Sprintf("(%s, +%d)", m.Kind, m.RewardPoints)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Badges"))
			for _, b := range eng.Badges() {
				if b.Unlocked {
					fmt.Fprintf(out, "- %s %s\n", ui.Gold.Render(b.Name), ui.Good.Render("unlocked"))
				} else {
					fmt.Fprintf(out, "- %s %s\n", b.Name, ui.Muted.Render(fmt.Sprintf("%d/%d", b.Progress, b.Total)))
				}
			}
			fmt.Fprintln(out, "")

			captured := 0
			monsters := eng.Monsters()
			for _, m := range monsters {
				if m.Captured {
					captured++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconLeaf+" Neighborhood"))
			fmt.Fprintf(out, "- %s %d/%d\n", ui.Key.Render("Monsters captured:"), captured, len(monsters))
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("Hotspots on the map:"), len(eng.Hotspots()))
			fmt.Fprintf(out, "- %s %d unread\n", ui.Key.Render("Notifications:"), eng.UnreadCount())

			return nil
		},
	}

	return cmd
}
