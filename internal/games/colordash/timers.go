package colordash

import "time"

// minPeriod keeps repeating timers from spinning at a zero period.
const minPeriod = time.Millisecond

// TimerID identifies a timer within one Timers set.
type TimerID int

type timerEntry struct {
	id       TimerID
	deadline time.Duration
	period   time.Duration // zero for one-shot timers
	fn       func()
}

// Timers is a virtual-time timer set owned by one running round.
//
// Callbacks run synchronously inside Advance, in deadline order (ties by
// registration order), on the caller's goroutine. After Stop, no callback
// runs again and registration is ignored. Timers is not safe for
// concurrent use.
type Timers struct {
	now     time.Duration
	entries []*timerEntry
	nextID  TimerID
	stopped bool
}

// NewTimers creates a timer set whose clock starts at now.
func NewTimers(now time.Duration) *Timers {
	return &Timers{now: now, nextID: 1}
}

// Now returns the set's current time. During a callback it is the
// deadline of the timer being fired.
func (t *Timers) Now() time.Duration {
	return t.now
}

// Every registers fn to run every period, first at now+period.
func (t *Timers) Every(period time.Duration, fn func()) TimerID {
	period = max(period, minPeriod)
	return t.add(period, period, fn)
}

// After registers fn to run once at now+delay.
func (t *Timers) After(delay time.Duration, fn func()) TimerID {
	return t.add(max(delay, 0), 0, fn)
}

func (t *Timers) add(delay, period time.Duration, fn func()) TimerID {
	if t.stopped {
		return 0
	}
	id := t.nextID
	t.nextID++
	t.entries = append(t.entries, &timerEntry{
		id:       id,
		deadline: t.now + delay,
		period:   period,
		fn:       fn,
	})
	return id
}

// Cancel removes a timer. Returns false if it was not pending.
func (t *Timers) Cancel(id TimerID) bool {
	for i, e := range t.entries {
		if e.id == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// SetPeriod changes the period of a repeating timer. The next firing is
// rescheduled to last firing + new period, but never before now.
func (t *Timers) SetPeriod(id TimerID, period time.Duration) {
	e := t.find(id)
	if e == nil || e.period == 0 {
		return
	}
	period = max(period, minPeriod)
	last := e.deadline - e.period
	e.period = period
	e.deadline = max(last+period, t.now)
}

// Period returns the period of a repeating timer.
func (t *Timers) Period(id TimerID) (time.Duration, bool) {
	e := t.find(id)
	if e == nil || e.period == 0 {
		return 0, false
	}
	return e.period, true
}

// Remaining returns the time until the timer next fires.
func (t *Timers) Remaining(id TimerID) (time.Duration, bool) {
	e := t.find(id)
	if e == nil {
		return 0, false
	}
	return e.deadline - t.now, true
}

// Len returns the number of pending timers.
func (t *Timers) Len() int {
	return len(t.entries)
}

// Stop cancels every timer. The set cannot be reused.
func (t *Timers) Stop() {
	t.stopped = true
	t.entries = nil
}

// Stopped reports whether Stop was called.
func (t *Timers) Stopped() bool {
	return t.stopped
}

// Advance moves the clock to `to`, firing every timer that falls due on
// the way. Returns the number of callbacks run.
func (t *Timers) Advance(to time.Duration) int {
	fired := 0
	for !t.stopped {
		e := t.nextDue(to)
		if e == nil {
			break
		}

		t.now = e.deadline
		if e.period > 0 {
			e.deadline += e.period
		} else {
			t.Cancel(e.id)
		}

		e.fn()
		fired++
	}

	if !t.stopped && to > t.now {
		t.now = to
	}
	return fired
}

// nextDue returns the earliest entry due at or before `to`.
func (t *Timers) nextDue(to time.Duration) *timerEntry {
	var next *timerEntry
	for _, e := range t.entries {
		if e.deadline > to {
			continue
		}
		if next == nil || e.deadline < next.deadline {
			next = e
		}
	}
	return next
}

func (t *Timers) find(id TimerID) *timerEntry {
	for _, e := range t.entries {
		if e.id == id {
			return e
		}
	}
	return nil
}
