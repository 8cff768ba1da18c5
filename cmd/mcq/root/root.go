package root

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/NAGOHUSA/MCQUESTS/internal/engine"
	"github.com/NAGOHUSA/MCQUESTS/internal/feed"
	"github.com/NAGOHUSA/MCQUESTS/internal/ui"
)

const Version = "1.2.0"

var (
	debug bool
	log   zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "mcquests",
	Short:         "MCQUESTS — deterministic daily build quests",
	Long:          "MCQUESTS generates one deterministic daily build quest per calendar date and maintains a JSON feed of everything generated so far.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if debug {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose generation logging")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newShowCmd(),
		newListCmd(),
		newStatusCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// resolveDate applies the effective-date precedence: explicit flag, then the
// MCQUESTS_DATE environment variable, then today in the reference timezone
// (UTC, so the feed rolls over at a fixed instant worldwide).
func resolveDate(flagValue string) (time.Time, error) {
	s := flagValue
	if s == "" {
		s = os.Getenv("MCQUESTS_DATE")
	}
	if s == "" {
		s = time.Now().UTC().Format(engine.DateFormat)
	}
	return engine.ParseDate(s)
}

// resolveDir applies the output-directory precedence: flag, MCQUESTS_DIR,
// then the default quests/ directory.
func resolveDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if d := os.Getenv("MCQUESTS_DIR"); d != "" {
		return d
	}
	return feed.DefaultDir
}
