package engine

import "testing"

func TestSeedFromStringGolden(t *testing.T) {
	// Pinned regression value: changing the hash silently reshuffles every
	// week's theme draw.
	if got := SeedFromString(SeedKey(2025, 45)); got != 962001629 {
		t.Fatalf("SeedFromString(%q)=%d, want 962001629", SeedKey(2025, 45), got)
	}
	if SeedFromString("a") == SeedFromString("b") {
		t.Fatalf("distinct keys must not collide trivially")
	}
}

func TestStreamGoldenSequence(t *testing.T) {
	s := NewStream(962001629)
	want := []uint32{1370232041, 703289107, 1873121256}
	for i, w := range want {
		if got := s.Uint32(); got != w {
			t.Fatalf("output #%d=%d, want %d", i, got, w)
		}
	}

	f := NewStream(962001629)
	first := f.Float()
	wantFirst := float64(1370232041) / 4294967296.0
	if first != wantFirst {
		t.Fatalf("first float=%v, want %v", first, wantFirst)
	}
}

func TestStreamDeterministicAndRestartable(t *testing.T) {
	a := NewStream(12345)
	b := NewStream(12345)
	for i := 0; i < 100; i++ {
		av, bv := a.Float(), b.Float()
		if av != bv {
			t.Fatalf("streams diverged at #%d: %v vs %v", i, av, bv)
		}
		if av < 0 || av >= 1 {
			t.Fatalf("float #%d=%v out of [0,1)", i, av)
		}
	}
}

func TestIntnBounds(t *testing.T) {
	s := NewStream(7)
	for i := 0; i < 1000; i++ {
		if got := s.Intn(3); got < 0 || got > 2 {
			t.Fatalf("Intn(3)=%d out of range at #%d", got, i)
		}
	}
}
