package root

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/ui"
)

func newReportCmd() *cobra.Command {
	var lat, lng float64
	var desc string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report illegal dumping at your location",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, cleanup, err := openEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			at, err := resolveLocation(cmd, cfg, lat, lng)
			if err != nil {
				return err
			}

			if strings.TrimSpace(desc) == "" {
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("What did you find?").
						Placeholder("e.g. construction debris by the riverside").
						Value(&desc),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if strings.TrimSpace(desc) == "" {
					desc = "illegal dumping"
				}
			}

			res := eng.ReportDumping(at, desc)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPin, "Report received"))
			if res.NewHotspot {
				fmt.Fprintln(out, ui.LabelValue("Hotspot", res.Hotspot.Name+" "+ui.Muted.Render("(new)")))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Hotspot", fmt.Sprintf("%s (%d reports)", res.Hotspot.Name, res.Hotspot.ReportCount)))
			}
			fmt.Fprintln(out, ui.LabelValue("Severity", ui.SeverityText(string(res.Hotspot.Severity))))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("+%d (total %d)", res.PointsAwarded, eng.Points())))
			if res.LevelUp {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	locationFlags(cmd, &lat, &lng)
	cmd.Flags().StringVarP(&desc, "desc", "m", "", "What you found (prompts if omitted)")
	return cmd
}
