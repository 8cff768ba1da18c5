// Package catalog holds the static theme content pools. The data lives in an
// embedded TOML file so pools can be edited without touching selection code.
package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed themes.toml
var themesTOML []byte

// Theme is a named content pool. Immutable once loaded; records reference a
// theme at build time but never own or mutate it.
type Theme struct {
	Key        string   `toml:"key"`
	Color      string   `toml:"color"`
	Lore       string   `toml:"lore"`
	BiomeHints []string `toml:"biome_hints"`
	Rewards    []string `toml:"rewards"`
	Warmups    []string `toml:"warmups"`
	Core       []string `toml:"core"`
	Stretch    []string `toml:"stretch"`
}

// HolidayWindow is a theme with a recurring annual date range. Start and end
// are inclusive and evaluated within the target date's own calendar year.
type HolidayWindow struct {
	Theme
	StartMonth int `toml:"start_month"`
	StartDay   int `toml:"start_day"`
	EndMonth   int `toml:"end_month"`
	EndDay     int `toml:"end_day"`
}

// Contains reports whether the civil date t falls inside the window in t's
// year. The window may not wrap across New Year.
func (w HolidayWindow) Contains(t time.Time) bool {
	y := t.Year()
	start := time.Date(y, time.Month(w.StartMonth), w.StartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(y, time.Month(w.EndMonth), w.EndDay, 23, 59, 59, 0, time.UTC)
	return !t.Before(start) && !t.After(end)
}

// Catalog is the loaded, read-only content table. Holiday windows are kept
// in author order because the first matching window wins.
type Catalog struct {
	Rotation []Theme         `toml:"rotation"`
	Holidays []HolidayWindow `toml:"holidays"`
}

// Load parses the embedded theme data. Called once at startup; the result is
// shared read-only across builds.
func Load() (*Catalog, error) {
	return parse(themesTOML)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse theme catalog: %w", err)
	}
	for i, t := range c.Rotation {
		if err := checkTheme(t); err != nil {
			return nil, fmt.Errorf("rotation[%d]: %w", i, err)
		}
	}
	for i, h := range c.Holidays {
		if err := checkTheme(h.Theme); err != nil {
			return nil, fmt.Errorf("holidays[%d]: %w", i, err)
		}
		if h.StartMonth < 1 || h.StartMonth > 12 || h.EndMonth < 1 || h.EndMonth > 12 {
			return nil, fmt.Errorf("holidays[%d] (%s): month out of range", i, h.Key)
		}
	}
	return &c, nil
}

func checkTheme(t Theme) error {
	if t.Key == "" {
		return fmt.Errorf("theme key is required")
	}
	if len(t.BiomeHints) == 0 || len(t.Rewards) == 0 {
		return fmt.Errorf("theme %s: biome_hints and rewards must be non-empty", t.Key)
	}
	if len(t.Warmups)+len(t.Core)+len(t.Stretch) == 0 {
		return fmt.Errorf("theme %s: all step pools are empty", t.Key)
	}
	return nil
}

// Default is the built-in safe theme substituted when the rotation is empty
// (a configuration error, recovered locally rather than failing the build).
func Default() Theme {
	return Theme{
		Key:        "Shelter Basics",
		Color:      "#8FBC8F",
		Lore:       "Every builder starts with four walls and a roof. Tonight, yours.",
		BiomeHints: []string{"plains", "forest edge"},
		Rewards:    []string{"a quiet night indoors", "a chest with room to spare"},
		Warmups: []string{
			"Build a small shelter with a bed, a door, and one window",
			"Place torches so no shadow falls inside your shelter",
		},
		Core: []string{
			"Add a fenced path from your door to the nearest water",
			"Dig a small cellar under your shelter and line it with chests",
			"Raise the roof one block and add an overhang on all sides",
		},
		Stretch: []string{
			"Build a lookout ladder to a rooftop platform with a fence rail",
		},
	}
}
