package engine

// Record is the persisted daily quest document. Constructed fresh per build,
// validated once, never mutated afterwards.
type Record struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Title     string   `json:"title"`
	Theme     string   `json:"theme"`
	Color     string   `json:"color"`
	Lore      string   `json:"lore"`
	BiomeHint string   `json:"biomeHint"`
	Reward    string   `json:"reward"`
	Steps     []string `json:"steps"`
	Rules     []string `json:"rules"`
	RedoHint  string   `json:"redoHint"`
}

// Mode selects the phrasing policy for generated steps.
type Mode string

const (
	// ModeStandard emits steps as plain imperatives.
	ModeStandard Mode = "standard"
	// ModeKid emits every step as a "Can you …?" question and retries
	// generation a bounded number of times before falling back.
	ModeKid Mode = "kid"
)

func (m Mode) IsValid() bool {
	return m == ModeStandard || m == ModeKid
}

// Meta describes how a record was produced. It exists so callers can
// instrument fallback frequency without the builder ever failing.
type Meta struct {
	ThemeKey string
	Holiday  bool
	Attempts int
	Fallback bool
}
