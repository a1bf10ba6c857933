package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/engine"
	"github.com/zxsa0716/ecoproject/internal/ui"
)

func newNearbyCmd() *cobra.Command {
	var lat, lng float64
	var all bool

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List litter monsters near you",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, cleanup, err := openEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := resolveLocation(cmd, cfg, lat, lng)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			monsters := eng.Monsters()
			shown := 0
			fmt.Fprintln(out, ui.Heading(ui.IconMonster, "Monsters"))
			for _, m := range monsters {
				inRange := engine.IsMonsterNearby(m.Coordinates, &user)
				if !all && (m.Captured || !inRange) {
					continue
				}
				shown++
				dist := engine.DistanceKm(m.Coordinates, user)
				line := fmt.Sprintf("- %s %s %s %s %s",
					ui.WasteIcon(string(m.WasteType)),
					m.Name,
					ui.RarityText(string(m.Rarity)),
					ui.Muted.Render(fmt.Sprintf("%.0f m away", dist*1000)),
					ui.Muted.Render(fmt.Sprintf("[%s]", m.ID)),
				)
				if m.Captured {
					line += " " + ui.Good.Render("captured")
				} else if inRange {
					line += " " + ui.Gold.Render("in range")
				}
				fmt.Fprintln(out, line)
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing within 50 m. Keep walking!"))
			}
			return nil
		},
	}

	locationFlags(cmd, &lat, &lng)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show every monster, captured and out of range too")
	return cmd
}
