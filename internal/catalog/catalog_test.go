package catalog

import (
	"testing"
	"time"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Rotation) < 2 {
		t.Fatalf("rotation has %d themes, want several", len(c.Rotation))
	}
	if len(c.Holidays) == 0 {
		t.Fatalf("no holiday windows loaded")
	}
	seen := map[string]bool{}
	for _, th := range c.Rotation {
		if seen[th.Key] {
			t.Fatalf("duplicate theme key %q", th.Key)
		}
		seen[th.Key] = true
	}
}

func TestParseRejectsBadThemes(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"missing key", `
[[rotation]]
color = "#fff"
biome_hints = ["plains"]
rewards = ["r"]
core = ["c"]
`},
		{"no pools", `
[[rotation]]
key = "Empty"
biome_hints = ["plains"]
rewards = ["r"]
`},
		{"empty rewards", `
[[rotation]]
key = "NoReward"
biome_hints = ["plains"]
rewards = []
core = ["c"]
`},
		{"bad month", `
[[holidays]]
key = "Weird"
start_month = 13
start_day = 1
end_month = 13
end_day = 2
biome_hints = ["plains"]
rewards = ["r"]
core = ["c"]
`},
	}
	for _, c := range cases {
		if _, err := parse([]byte(c.toml)); err == nil {
			t.Fatalf("%s: expected parse error", c.name)
		}
	}
}

func TestHolidayWindowInclusiveBounds(t *testing.T) {
	w := HolidayWindow{
		Theme:      Theme{Key: "Pumpkin Night"},
		StartMonth: 10, StartDay: 25,
		EndMonth: 10, EndDay: 31,
	}
	in := []string{"2025-10-25", "2025-10-28", "2025-10-31", "2031-10-25"}
	out := []string{"2025-10-24", "2025-11-01", "2025-04-28"}
	for _, s := range in {
		d, _ := time.Parse("2006-01-02", s)
		if !w.Contains(d) {
			t.Fatalf("%s should be inside the window", s)
		}
	}
	for _, s := range out {
		d, _ := time.Parse("2006-01-02", s)
		if w.Contains(d) {
			t.Fatalf("%s should be outside the window", s)
		}
	}
}

func TestDefaultThemeIsComplete(t *testing.T) {
	d := Default()
	if d.Key == "" || len(d.BiomeHints) == 0 || len(d.Rewards) == 0 {
		t.Fatalf("default theme incomplete: %+v", d)
	}
	if len(d.Warmups)+len(d.Core)+len(d.Stretch) == 0 {
		t.Fatalf("default theme has no step pools")
	}
}
