package engine

// Slot is one position in a day's difficulty plan. Each slot kind draws from
// the matching theme pool.
type Slot string

const (
	SlotWarmup  Slot = "warmup"
	SlotCore    Slot = "core"
	SlotStretch Slot = "stretch"
)

// Plan is the step budget for one day: how many steps and which pools they
// come from, in order.
type Plan struct {
	Count int
	Slots []Slot
}

// weekPlans encodes the weekday ramp: Monday is the lightest day with a
// single warmup, core slots dominate midweek, and the weekend carries the
// two three-step days. Static policy, not computed.
var weekPlans = [7]Plan{
	{Count: 1, Slots: []Slot{SlotWarmup}},                       // Monday
	{Count: 2, Slots: []Slot{SlotWarmup, SlotCore}},             // Tuesday
	{Count: 2, Slots: []Slot{SlotCore, SlotCore}},               // Wednesday
	{Count: 2, Slots: []Slot{SlotCore, SlotStretch}},            // Thursday
	{Count: 2, Slots: []Slot{SlotCore, SlotCore}},               // Friday
	{Count: 3, Slots: []Slot{SlotWarmup, SlotCore, SlotStretch}}, // Saturday
	{Count: 3, Slots: []Slot{SlotCore, SlotCore, SlotStretch}},  // Sunday
}

// PlanForDayOfWeek returns the plan for an ISO day-of-week index
// (Monday = 0). Out-of-range input gets the Monday plan.
func PlanForDayOfWeek(dow int) Plan {
	if dow < 0 || dow > 6 {
		dow = 0
	}
	p := weekPlans[dow]
	out := Plan{Count: p.Count, Slots: make([]Slot, len(p.Slots))}
	copy(out.Slots, p.Slots)
	return out
}
