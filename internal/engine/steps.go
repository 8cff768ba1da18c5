package engine

import "github.com/NAGOHUSA/MCQUESTS/internal/catalog"

// stepPools tracks the remaining candidates per slot kind during one
// selection. Draws remove the picked entry so a day never repeats a step.
type stepPools struct {
	warmups []string
	core    []string
	stretch []string
}

func newStepPools(t catalog.Theme) *stepPools {
	return &stepPools{
		warmups: append([]string(nil), t.Warmups...),
		core:    append([]string(nil), t.Core...),
		stretch: append([]string(nil), t.Stretch...),
	}
}

// poolFor resolves the pool for a slot with the fixed preference order:
// warmup falls back to core, core to warmup, stretch to core, and finally
// any non-empty pool. Returns nil when everything is exhausted.
func (p *stepPools) poolFor(slot Slot) *[]string {
	var order []*[]string
	switch slot {
	case SlotWarmup:
		order = []*[]string{&p.warmups, &p.core, &p.stretch}
	case SlotStretch:
		order = []*[]string{&p.stretch, &p.core, &p.warmups}
	default:
		order = []*[]string{&p.core, &p.warmups, &p.stretch}
	}
	for _, pool := range order {
		if len(*pool) > 0 {
			return pool
		}
	}
	return nil
}

// fillPool is the backfill source when slot draws came up short:
// core first, then warmups, then stretch.
func (p *stepPools) fillPool() *[]string {
	for _, pool := range []*[]string{&p.core, &p.warmups, &p.stretch} {
		if len(*pool) > 0 {
			return pool
		}
	}
	return nil
}

func drawFrom(pool *[]string, rng *Stream) string {
	i := rng.Intn(len(*pool))
	picked := (*pool)[i]
	*pool = append((*pool)[:i], (*pool)[i+1:]...)
	return picked
}

// SelectSteps draws the day's steps from the theme's pools according to the
// plan. The result can legitimately be shorter than planned when pools run
// dry or too many candidates are unsafe; that is accepted, not retried.
func SelectSteps(theme catalog.Theme, plan Plan, rng *Stream) []string {
	pools := newStepPools(theme)

	var picks []string
	for _, slot := range plan.Slots {
		pool := pools.poolFor(slot)
		if pool == nil {
			break
		}
		picks = append(picks, drawFrom(pool, rng))
	}
	for len(picks) < plan.Count {
		pool := pools.fillPool()
		if pool == nil {
			break
		}
		picks = append(picks, drawFrom(pool, rng))
	}

	// Dedupe by exact text (first-seen order), drop unsafe entries, then
	// cut down to the planned count.
	seen := make(map[string]bool, len(picks))
	out := picks[:0]
	for _, s := range picks {
		if seen[s] || !IsSafe(s) {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	if len(out) > plan.Count {
		out = out[:plan.Count]
	}
	return out
}
