// Package timer runs cancellable callbacks on simulated time. It is advanced
// by the tick driver and never starts goroutines.
package timer

// Token identifies a scheduled task. The zero Token is never issued.
type Token uint64

type task struct {
	token    Token
	due      float64
	interval float64 // >0 for repeating tasks
	fn       func()
}

// Scheduler owns a set of tasks keyed by token.
type Scheduler struct {
	now   float64
	next  Token
	tasks map[Token]*task
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[Token]*task)}
}

// Now returns the simulated time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After runs fn once, delay seconds from now.
func (s *Scheduler) After(delay float64, fn func()) Token {
	return s.add(delay, 0, fn)
}

// Every runs fn each interval seconds until cancelled. interval must be
// positive; non-positive values behave like After.
func (s *Scheduler) Every(interval float64, fn func()) Token {
	if interval <= 0 {
		return s.After(0, fn)
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval float64, fn func()) Token {
	if delay < 0 {
		delay = 0
	}
	s.next++
	t := &task{token: s.next, due: s.now + delay, interval: interval, fn: fn}
	s.tasks[t.token] = t
	return t.token
}

// Cancel removes the task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(tok Token) bool {
	if _, ok := s.tasks[tok]; !ok {
		return false
	}
	delete(s.tasks, tok)
	return true
}

// Pending returns the number of scheduled tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves time forward by dt and runs every task that falls due, in
// due-time order with ties broken by creation order. Tasks scheduled by a
// callback for a time inside this step run in the same call. A repeating
// task fires once per elapsed interval.
func (s *Scheduler) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		if t.due > s.now {
			s.now = t.due
		}
		if t.interval > 0 {
			t.due += t.interval
		} else {
			delete(s.tasks, t.token)
		}
		t.fn()
	}
	s.now = target
}

func (s *Scheduler) nextDue(target float64) *task {
	var best *task
	for _, t := range s.tasks {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.token < best.token) {
			best = t
		}
	}
	return best
}
