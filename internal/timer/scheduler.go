// Package timer runs deferred callbacks against simulation time.
//
// Nothing here sleeps or spawns goroutines: the owner calls Tick once per
// frame and due callbacks run synchronously inside that call.
package timer

import "sort"

type task struct {
	due float64
	seq uint64
	fn  func()
}

// Scheduler fires each callback exactly once, after its delay has elapsed.
type Scheduler struct {
	now     float64
	seq     uint64
	pending []task
	due     []task // reused between ticks
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulation time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of callbacks that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// After schedules fn to run once delay seconds from now.
// Negative delays are treated as zero.
func (s *Scheduler) After(delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.pending = append(s.pending, task{due: s.now + delay, seq: s.seq, fn: fn})
}

// Tick advances time by dt seconds and runs every callback that became due,
// earliest first. Callbacks scheduled from inside a callback run on a later tick
// at the earliest.
func (s *Scheduler) Tick(dt float64) {
	if dt > 0 {
		s.now += dt
	}

	s.due = s.due[:0]
	kept := s.pending[:0]
	for _, t := range s.pending {
		if t.due <= s.now {
			s.due = append(s.due, t)
		} else {
			kept = append(kept, t)
		}
	}
	// Clear the tail so fired closures can be collected.
	for i := len(kept); i < len(s.pending); i++ {
		s.pending[i] = task{}
	}
	s.pending = kept

	sort.Slice(s.due, func(i, j int) bool {
		if s.due[i].due != s.due[j].due {
			return s.due[i].due < s.due[j].due
		}
		return s.due[i].seq < s.due[j].seq
	})
	for _, t := range s.due {
		t.fn()
	}
}
