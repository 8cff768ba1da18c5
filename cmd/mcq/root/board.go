package root

import (
	"github.com/spf13/cobra"

	"github.com/NAGOHUSA/MCQUESTS/internal/tui"
)

func newBoardCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Browse the generated feed in a TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunBoard(resolveDir(outFlag), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Quest directory; default: $MCQUESTS_DIR or quests/")
	return cmd
}
