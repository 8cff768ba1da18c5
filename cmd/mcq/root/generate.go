package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NAGOHUSA/MCQUESTS/internal/catalog"
	"github.com/NAGOHUSA/MCQUESTS/internal/engine"
	"github.com/NAGOHUSA/MCQUESTS/internal/feed"
	"github.com/NAGOHUSA/MCQUESTS/internal/storage"
)

func newGenerateCmd() *cobra.Command {
	var dateFlag string
	var outFlag string
	var force bool
	var kid bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the daily quest and update the feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			dir := resolveDir(outFlag)

			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			mode := engine.ModeStandard
			if kid {
				mode = engine.ModeKid
			}

			rec, meta := engine.NewBuilder(cat, mode).Build(date)
			log.Debug().
				Str("date", rec.Date).
				Str("theme", meta.ThemeKey).
				Bool("holiday", meta.Holiday).
				Int("attempts", meta.Attempts).
				Bool("fallback", meta.Fallback).
				Msg("quest built")
			if meta.Fallback {
				log.Warn().Str("date", rec.Date).Str("theme", meta.ThemeKey).
					Msg("generated record failed validation, substituted fallback")
			}

			path, err := feed.WriteQuest(dir, rec, force)
			if errors.Is(err, feed.ErrExists) {
				fmt.Fprintln(cmd.OutOrStdout(), alreadyExistsLine(rec.Date, path))
				return feed.AppendIndex(dir, rec.Date)
			}
			if err != nil {
				return err
			}
			if err := feed.AppendIndex(dir, rec.Date); err != nil {
				return err
			}

			recordHistory(ctx, rec, meta, mode)
			printQuest(cmd, rec, meta, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date (YYYY-MM-DD); default: $MCQUESTS_DATE or today (UTC)")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output directory; default: $MCQUESTS_DIR or quests/")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Regenerate even if the quest file already exists")
	cmd.Flags().BoolVar(&kid, "kid", false, "Question-phrased kid mode")

	return cmd
}

// recordHistory writes the telemetry row. The feed files are the source of
// truth, so a history failure is a warning, never a process failure.
func recordHistory(ctx context.Context, rec engine.Record, meta engine.Meta, mode engine.Mode) {
	db, cleanup, err := openHistory(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("history db unavailable, skipping telemetry")
		return
	}
	defer cleanup()

	_, err = storage.NewHistoryRepo(db).Insert(ctx, storage.Generation{
		Date:     rec.Date,
		Theme:    meta.ThemeKey,
		Mode:     string(mode),
		Holiday:  meta.Holiday,
		Attempts: meta.Attempts,
		Fallback: meta.Fallback,
	})
	if err != nil {
		log.Warn().Err(err).Msg("history insert failed")
	}
}
