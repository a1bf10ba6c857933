package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/ui"
)

func newCaptureCmd() *cobra.Command {
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "capture [monster-id]",
		Short: "Capture a litter monster near you",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, cleanup, err := openEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			id := ""
			if len(args) == 1 {
				id = args[0]
			} else {
				user, err := resolveLocation(cmd, cfg, lat, lng)
				if err != nil {
					return err
				}
				m := eng.PickNearbyMonster(user)
				if m == nil {
					return errors.New("no monsters within 50 m; try `lq nearby` first")
				}
				id = m.ID
			}

			res, err := eng.CaptureMonster(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMonster, "Monster captured!"))
			fmt.Fprintln(out, ui.LabelValue("Monster", fmt.Sprintf("%s %s (%s)", ui.WasteIcon(string(res.WasteType)), res.MonsterName, res.WasteType)))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("+%d (total %d)", res.PointsAwarded, eng.Points())))
			if res.LevelUp {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	locationFlags(cmd, &lat, &lng)
	return cmd
}
