package slide

import "sort"

// Task is a callback scheduled on the cooperative scheduler.
type Task func()

type scheduledTask struct {
	due   float64
	seq   uint64
	epoch uint64
	name  string
	run   Task
}

// Scheduler is a single-threaded queue of delayed callbacks driven by Advance.
// Tasks run in due-time order (ties in scheduling order) on the caller's
// goroutine. Cancel drops every pending task; tasks queued before a Cancel
// never run, even if they were due in the same Advance call.
type Scheduler struct {
	now   float64
	seq   uint64
	epoch uint64
	queue []scheduledTask
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After schedules fn to run once delay seconds have elapsed.
// A non-positive delay runs on the next Advance.
func (s *Scheduler) After(delay float64, name string, fn Task) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.queue = append(s.queue, scheduledTask{
		due:   s.now + delay,
		seq:   s.seq,
		epoch: s.epoch,
		name:  name,
		run:   fn,
	})
	sort.SliceStable(s.queue, func(i, j int) bool {
		if s.queue[i].due != s.queue[j].due {
			return s.queue[i].due < s.queue[j].due
		}
		return s.queue[i].seq < s.queue[j].seq
	})
}

// Advance moves the clock forward by dt and runs every task that is due.
// Tasks scheduled by a running task are eligible in the same call if their
// due time has already passed.
func (s *Scheduler) Advance(dt float64) {
	if dt > 0 {
		s.now += dt
	}
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		t := s.queue[0]
		s.queue = s.queue[1:]
		if t.epoch != s.epoch {
			continue
		}
		t.run()
	}
}

// Cancel drops all pending tasks.
func (s *Scheduler) Cancel() {
	s.queue = nil
	s.epoch++
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// PendingNames returns the names of queued tasks in run order.
func (s *Scheduler) PendingNames() []string {
	names := make([]string, len(s.queue))
	for i, t := range s.queue {
		names[i] = t.name
	}
	return names
}
