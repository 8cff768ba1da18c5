package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NAGOHUSA/MCQUESTS/internal/engine"
	"github.com/NAGOHUSA/MCQUESTS/internal/ui"
)

func printQuest(cmd *cobra.Command, rec engine.Record, meta engine.Meta, path string) {
	out := cmd.OutOrStdout()

	badges := ""
	if meta.Holiday {
		badges += " " + ui.BadgeHoliday
	}
	if meta.Fallback {
		badges += " " + ui.BadgeFallback
	}

	fmt.Fprintln(out, ui.Heading(ui.IconQuest, rec.Title+" — "+rec.Date)+badges)
	fmt.Fprintln(out, ui.LabelValue("Theme", ui.ThemeSwatch(rec.Theme, rec.Color)))
	fmt.Fprintln(out, ui.Dim.Render(rec.Lore))
	fmt.Fprintln(out, ui.LabelValue("Biome", rec.BiomeHint))
	fmt.Fprintln(out, ui.LabelValue("Reward", rec.Reward))
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Steps"))
	for i, s := range rec.Steps {
		fmt.Fprintln(out, ui.StepLine(i, s))
	}
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, ui.Muted.Render("Saved to "+path))
}

func printStoredQuest(cmd *cobra.Command, rec engine.Record) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconQuest, rec.Title+" — "+rec.Date))
	fmt.Fprintln(out, ui.LabelValue("Theme", ui.ThemeSwatch(rec.Theme, rec.Color)))
	fmt.Fprintln(out, ui.Dim.Render(rec.Lore))
	fmt.Fprintln(out, ui.LabelValue("Biome", rec.BiomeHint))
	fmt.Fprintln(out, ui.LabelValue("Reward", rec.Reward))
	fmt.Fprintln(out, "")
	for i, s := range rec.Steps {
		fmt.Fprintln(out, ui.StepLine(i, s))
	}
	fmt.Fprintln(out, "")
	for _, r := range rec.Rules {
		fmt.Fprintln(out, ui.Muted.Render("• "+r))
	}
	fmt.Fprintln(out, ui.Dim.Render(rec.RedoHint))
}

func alreadyExistsLine(date, path string) string {
	return ui.Warn.Render(ui.IconInfo+" Quest for "+date+" already exists") + " " + ui.Muted.Render("("+path+", use --force to regenerate)")
}
