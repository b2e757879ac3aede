package timer

import (
	"reflect"
	"testing"
)

func TestAfterFiresOnceWhenDue(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(2, func() { calls++ })

	s.Advance(1.5)
	if calls != 0 {
		t.Fatalf("fired early at %v", s.Now())
	}
	s.Advance(0.5)
	if calls != 1 {
		t.Fatalf("calls = %d at %v, want 1", calls, s.Now())
	}
	s.Advance(10)
	if calls != 1 {
		t.Errorf("one-shot fired %d times", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d after one-shot fired", s.Pending())
	}
}

func TestEveryFiresOncePerInterval(t *testing.T) {
	s := NewScheduler()
	var at []float64
	s.Every(1, func() { at = append(at, s.Now()) })

	s.Advance(3.5)

	if want := []float64{1, 2, 3}; !reflect.DeepEqual(at, want) {
		t.Errorf("fired at %v, want %v", at, want)
	}
	if s.Now() != 3.5 {
		t.Errorf("Now = %v, want 3.5", s.Now())
	}
}

func TestOrderByDueThenCreation(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(2, func() { order = append(order, "late") })
	s.After(1, func() { order = append(order, "first") })
	s.After(1, func() { order = append(order, "second") })

	s.Advance(5)

	if want := []string{"first", "second", "late"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	calls := 0
	tok := s.Every(1, func() { calls++ })

	s.Advance(2)
	if !s.Cancel(tok) {
		t.Fatal("Cancel returned false for a pending task")
	}
	if s.Cancel(tok) {
		t.Error("second Cancel returned true")
	}
	s.Advance(5)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestCallbacksMayScheduleAndCancel(t *testing.T) {
	s := NewScheduler()
	var order []string

	var victim Token
	s.After(1, func() {
		order = append(order, "outer")
		s.Cancel(victim)
		s.After(0.5, func() { order = append(order, "chained") })
	})
	victim = s.After(1.2, func() { order = append(order, "victim") })

	s.Advance(2)

	if want := []string{"outer", "chained"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestRepeatingTaskCancelsItself(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var tok Token
	tok = s.Every(0.5, func() {
		calls++
		if calls == 2 {
			s.Cancel(tok)
		}
	})

	s.Advance(10)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestNonPositiveIntervalRunsOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(0, func() { calls++ })
	s.Advance(1)
	s.Advance(1)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
