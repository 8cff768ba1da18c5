package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NAGOHUSA/MCQUESTS/internal/storage"
	"github.com/NAGOHUSA/MCQUESTS/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show generation history and fallback frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			db, cleanup, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			repo := storage.NewHistoryRepo(db)
			stats, err := repo.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Generation Status"))
			fmt.Fprintln(out, ui.LabelValue("Total builds", stats.Total))
			fmt.Fprintln(out, ui.LabelValue("Holiday builds", stats.Holidays))
			if stats.Total > 0 {
				rate := float64(stats.Fallbacks) / float64(stats.Total) * 100
				fmt.Fprintln(out, ui.LabelValue("Fallbacks", fmt.Sprintf("%d (%.1f%%)", stats.Fallbacks, rate)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Fallbacks", 0))
			}
			fmt.Fprintln(out, "")

			recent, err := repo.ListRecent(ctx, limit)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No history yet."))
				return nil
			}

			fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Recent builds"))
			for _, g := range recent {
				badge := ""
				if g.Fallback {
					badge = " " + ui.BadgeFallback
				}
				if g.Holiday {
					badge += " " + ui.BadgeHoliday
				}
				fmt.Fprintf(out, "- %s  %s  %s%s\n", g.Date, g.Theme, ui.Muted.Render(g.Mode), badge)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "How many recent builds to show")
	return cmd
}
