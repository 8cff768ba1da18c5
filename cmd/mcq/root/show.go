package root

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/NAGOHUSA/MCQUESTS/internal/feed"
)

func newShowCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Print a persisted quest (latest when no date is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := resolveDir(outFlag)

			var date string
			if len(args) == 1 {
				date = args[0]
			} else {
				dates := feed.ReadIndex(dir)
				if len(dates) == 0 {
					return errors.New("no quests generated yet")
				}
				date = dates[0]
			}

			rec, err := feed.ReadQuest(dir, date)
			if err != nil {
				return err
			}
			printStoredQuest(cmd, rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Quest directory; default: $MCQUESTS_DIR or quests/")
	return cmd
}
