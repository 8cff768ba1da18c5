package engine

import "strings"

// denylist is the fixed set of disallowed content terms: restricted
// dimensions, rare generated landmarks, and non-vanilla mechanics. Matching
// is case-insensitive substring, so short entries over-block on purpose
// ("structure" rejects any mention of structures at all). That is policy,
// not a bug: false positives are cheaper than one bad record in the feed.
var denylist = []string{
	"nether",
	"end portal",
	"end city",
	"stronghold",
	"ancient city",
	"woodland mansion",
	"ocean monument",
	"command block",
	"spawner",
	"bedrock",
	"barrier",
	"structure",
	"cartography",
	"creative mode",
	"modded",
	"dupe",
	"hack",
	"grief",
}

// IsSafe reports whether text contains no denylisted term.
func IsSafe(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range denylist {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}

// Validate is the single gate between generated content and persistence.
// A record failing here must never be written; the builder substitutes the
// fallback record instead.
func Validate(rec Record, mode Mode) bool {
	if rec.ID == "" || rec.ID != rec.Date {
		return false
	}
	if !IsSafe(rec.Title) || !IsSafe(rec.Theme) {
		return false
	}
	if len(rec.Steps) < 1 || len(rec.Steps) > 3 {
		return false
	}
	for _, s := range rec.Steps {
		if s == "" || !IsSafe(s) {
			return false
		}
		if mode == ModeKid && !isQuestion(s) {
			return false
		}
	}
	return true
}

func isQuestion(s string) bool {
	return strings.HasSuffix(strings.TrimSpace(s), "?")
}
