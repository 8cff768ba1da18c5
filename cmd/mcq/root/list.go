package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NAGOHUSA/MCQUESTS/internal/feed"
	"github.com/NAGOHUSA/MCQUESTS/internal/ui"
)

func newListCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated quest dates (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := resolveDir(outFlag)
			dates := feed.ReadIndex(dir)
			if len(dates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No quests generated yet."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCalendar, fmt.Sprintf("Generated quests (%d)", len(dates))))
			for _, d := range dates {
				line := "- " + d
				if rec, err := feed.ReadQuest(dir, d); err == nil {
					line += "  " + ui.ThemeSwatch(rec.Theme, rec.Color)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Quest directory; default: $MCQUESTS_DIR or quests/")
	return cmd
}
