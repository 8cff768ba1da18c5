package engine

import (
	"strings"
	"time"
	"unicode"

	"github.com/NAGOHUSA/MCQUESTS/internal/catalog"
)

// Fixed display strings shared by every record.
const (
	QuestTitle = "Daily Build Quest"
	RedoHint   = "Missed a day? Any quest can be built late. The date is a label, not a deadline."
)

// questRules are the fixed disclaimer lines attached to every record.
var questRules = []string{
	"Vanilla blocks only. Gather what you place.",
	"Build at any scale you like. The steps are a prompt, not a blueprint.",
	"Done is better than perfect. Screenshot it and move on.",
}

// kidMaxAttempts bounds the retry loop in question-phrased mode. The loop is
// never unbounded; the hardcoded fallback is the guaranteed terminal value.
const kidMaxAttempts = 5

// Builder assembles one record per call. It owns no mutable state besides
// the shared read-only catalog, so concurrent builds for different dates
// each get an independent RNG stream and cannot race.
type Builder struct {
	catalog *catalog.Catalog
	mode    Mode
}

func NewBuilder(cat *catalog.Catalog, mode Mode) *Builder {
	if !mode.IsValid() {
		mode = ModeStandard
	}
	return &Builder{catalog: cat, mode: mode}
}

// ChooseTheme resolves the theme for a date. Holiday windows are checked in
// catalog order and the first containing window wins, regardless of the
// week's rotation draw. Otherwise one rotation entry is drawn uniformly from
// the week-seeded stream; an empty rotation is a configuration error
// recovered with the built-in default theme.
func ChooseTheme(date time.Time, cat *catalog.Catalog, rng *Stream) (theme catalog.Theme, holiday bool) {
	for _, w := range cat.Holidays {
		if w.Contains(date) {
			return w.Theme, true
		}
	}
	if len(cat.Rotation) == 0 {
		return catalog.Default(), false
	}
	return cat.Rotation[rng.Intn(len(cat.Rotation))], false
}

// Build is total: it always returns a record that passes Validate for the
// given date. Generation failures are absorbed by the fallback record and
// reported through Meta, never as an error.
func (b *Builder) Build(date time.Time) (Record, Meta) {
	dateStr := date.Format(DateFormat)
	rng := NewStream(WeekSeed(date))
	theme, holiday := ChooseTheme(date, b.catalog, rng)
	plan := PlanForDayOfWeek(DayOfWeek(date))

	attempts := 1
	if b.mode == ModeKid {
		attempts = kidMaxAttempts
	}

	meta := Meta{ThemeKey: theme.Key, Holiday: holiday}
	for try := 1; try <= attempts; try++ {
		meta.Attempts = try
		rec := b.assemble(dateStr, theme, plan, rng)
		if Validate(rec, b.mode) {
			return rec, meta
		}
	}

	meta.Fallback = true
	return b.fallback(dateStr), meta
}

func (b *Builder) assemble(dateStr string, theme catalog.Theme, plan Plan, rng *Stream) Record {
	steps := SelectSteps(theme, plan, rng)
	if b.mode == ModeKid {
		steps = phraseAsQuestions(steps)
	}
	return Record{
		ID:        dateStr,
		Date:      dateStr,
		Title:     QuestTitle,
		Theme:     theme.Key,
		Color:     theme.Color,
		Lore:      theme.Lore,
		BiomeHint: pickOrDefault(theme.BiomeHints, "plains", rng),
		Reward:    pickOrDefault(theme.Rewards, "a job well done", rng),
		Steps:     steps,
		Rules:     append([]string(nil), questRules...),
		RedoHint:  RedoHint,
	}
}

// fallback is the statically known-safe record substituted when validation
// rejects a candidate. It must stay trivially inside the safety policy.
func (b *Builder) fallback(dateStr string) Record {
	steps := []string{
		"Build a small shelter with a bed, a door, and one window",
		"Place torches so no shadow falls inside your shelter",
		"Add a fenced path from your door to the nearest water",
	}
	if b.mode == ModeKid {
		steps = phraseAsQuestions(steps)
	}
	return Record{
		ID:        dateStr,
		Date:      dateStr,
		Title:     QuestTitle,
		Theme:     "Shelter Basics",
		Color:     "#8FBC8F",
		Lore:      "Every builder starts with four walls and a roof. Tonight, yours.",
		BiomeHint: "plains",
		Reward:    "a quiet night indoors",
		Steps:     steps,
		Rules:     append([]string(nil), questRules...),
		RedoHint:  RedoHint,
	}
}

func pickOrDefault(pool []string, def string, rng *Stream) string {
	if len(pool) == 0 {
		return def
	}
	return pool[rng.Intn(len(pool))]
}

// phraseAsQuestions rewrites imperative steps as "Can you …?" prompts.
func phraseAsQuestions(steps []string) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		s = strings.TrimRight(strings.TrimSpace(s), ".!")
		r := []rune(s)
		if len(r) > 0 {
			r[0] = unicode.ToLower(r[0])
		}
		out[i] = "Can you " + string(r) + "?"
	}
	return out
}
