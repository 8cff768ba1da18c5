package engine

import "testing"

func TestIsSafeDenylist(t *testing.T) {
	unsafe := []string{
		"Visit the Nether hub",
		"Find a STRONGHOLD entrance",
		"Copy this structure from the wiki",
		"place a command block",
		"a Cartography corner",
	}
	for _, s := range unsafe {
		if IsSafe(s) {
			t.Fatalf("IsSafe(%q)=true, want false", s)
		}
	}

	safe := []string{
		"Build a windmill with wool sails",
		"Stack barrels two high in the warehouse",
		"",
	}
	for _, s := range safe {
		if !IsSafe(s) {
			t.Fatalf("IsSafe(%q)=false, want true", s)
		}
	}
}

// The denylist intentionally over-blocks on substrings.
func TestIsSafeOverBlocks(t *testing.T) {
	if IsSafe("build a little shack by the river") {
		t.Fatalf("substring match should reject 'shack' (contains a denylisted term)")
	}
	if IsSafe("add restructured supports") {
		t.Fatalf("substring match should reject words containing 'structure'")
	}
}

func validRecord() Record {
	return Record{
		ID:       "2025-11-03",
		Date:     "2025-11-03",
		Title:    QuestTitle,
		Theme:    "Cozy Cottage",
		Steps:    []string{"Lay a cobblestone path from your door to the road"},
		Rules:    questRules,
		RedoHint: RedoHint,
	}
}

func TestValidate(t *testing.T) {
	if !Validate(validRecord(), ModeStandard) {
		t.Fatalf("valid record rejected")
	}

	r := validRecord()
	r.ID = "2025-11-04"
	if Validate(r, ModeStandard) {
		t.Fatalf("id/date mismatch accepted")
	}

	r = validRecord()
	r.Steps = nil
	if Validate(r, ModeStandard) {
		t.Fatalf("empty steps accepted")
	}

	r = validRecord()
	r.Steps = []string{"a", "b", "c", "d"}
	if Validate(r, ModeStandard) {
		t.Fatalf("four steps accepted")
	}

	r = validRecord()
	r.Steps = []string{"Tour the nearest stronghold"}
	if Validate(r, ModeStandard) {
		t.Fatalf("unsafe step accepted")
	}

	r = validRecord()
	r.Theme = "Nether Nights"
	if Validate(r, ModeStandard) {
		t.Fatalf("unsafe theme accepted")
	}
}

func TestValidateKidModeRequiresQuestions(t *testing.T) {
	r := validRecord()
	if Validate(r, ModeKid) {
		t.Fatalf("imperative step accepted in kid mode")
	}
	r.Steps = []string{"Can you lay a cobblestone path from your door to the road?"}
	if !Validate(r, ModeKid) {
		t.Fatalf("question step rejected in kid mode")
	}
}
