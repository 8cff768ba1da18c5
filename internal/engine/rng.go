package engine

import "fmt"

// SeedNamespace is folded into every weekly seed key so that other tools
// hashing the same "{year}-{week}" prefix land on a different stream.
const SeedNamespace = "MCQUESTS"

// SeedKey formats the weekly seed key. All seven days of one ISO week share
// the key, which is what ties theme selection to the week rather than the day.
func SeedKey(isoYear, isoWeek int) string {
	return fmt.Sprintf("%d-%d-%s", isoYear, isoWeek, SeedNamespace)
}

// SeedFromString hashes a string to a 32-bit seed by folding each byte into
// an accumulator: multiply by 31, then xor the byte in.
func SeedFromString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 ^ uint32(s[i])
	}
	return h
}

// Stream is a mulberry32 generator. Same seed, same sequence; one Stream is
// owned by exactly one build and never shared.
type Stream struct {
	state uint32
}

func NewStream(seed uint32) *Stream {
	return &Stream{state: seed}
}

// Uint32 advances the stream and returns the next 32-bit output.
func (s *Stream) Uint32() uint32 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float returns the next value in [0, 1).
func (s *Stream) Float() float64 {
	return float64(s.Uint32()) / 4294967296.0
}

// Intn returns a uniform index in [0, n). n must be positive.
func (s *Stream) Intn(n int) int {
	return int(s.Float() * float64(n))
}
