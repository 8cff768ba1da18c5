package engine

import "testing"

func TestMondayIsLightest(t *testing.T) {
	p := PlanForDayOfWeek(0)
	if p.Count != 1 {
		t.Fatalf("Monday count=%d, want 1", p.Count)
	}
	if len(p.Slots) != 1 || p.Slots[0] != SlotWarmup {
		t.Fatalf("Monday slots=%v, want [warmup]", p.Slots)
	}
}

func TestPlanTableShape(t *testing.T) {
	threes := 0
	for dow := 0; dow < 7; dow++ {
		p := PlanForDayOfWeek(dow)
		if p.Count < 1 || p.Count > 3 {
			t.Fatalf("dow %d count=%d out of [1,3]", dow, p.Count)
		}
		if len(p.Slots) != p.Count {
			t.Fatalf("dow %d: %d slots for count %d", dow, len(p.Slots), p.Count)
		}
		if p.Count == 3 {
			threes++
		}
	}
	if threes != 2 {
		t.Fatalf("%d three-step days, want exactly 2", threes)
	}
}

func TestPlanOutOfRangeFallsBackToMonday(t *testing.T) {
	for _, dow := range []int{-1, 7, 42} {
		p := PlanForDayOfWeek(dow)
		if p.Count != 1 || p.Slots[0] != SlotWarmup {
			t.Fatalf("dow %d plan=%+v, want Monday plan", dow, p)
		}
	}
}

func TestPlanReturnsCopy(t *testing.T) {
	p := PlanForDayOfWeek(5)
	p.Slots[0] = SlotStretch
	if q := PlanForDayOfWeek(5); q.Slots[0] != SlotWarmup {
		t.Fatalf("static table mutated through returned plan")
	}
}
