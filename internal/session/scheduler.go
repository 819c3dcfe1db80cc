package session

import (
	"sort"
	"time"
)

// Scheduler runs fire once, after d, on the goroutine that owns the session.
type Scheduler interface {
	Schedule(d time.Duration, fire func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fire func())

func (f SchedulerFunc) Schedule(d time.Duration, fire func()) { f(d, fire) }

type scheduled struct {
	at   time.Duration
	seq  uint64
	fire func()
}

// VirtualClock is a Scheduler driven by hand. Nothing fires until the clock
// is advanced; callbacks due at the same instant fire in scheduling order.
// It is not safe for concurrent use.
type VirtualClock struct {
	now   time.Duration
	seq   uint64
	queue []scheduled
}

func NewVirtualClock() *VirtualClock { return &VirtualClock{} }

func (c *VirtualClock) Schedule(d time.Duration, fire func()) {
	if d < 0 {
		d = 0
	}
	c.seq++
	item := scheduled{at: c.now + d, seq: c.seq, fire: fire}
	i := sort.Search(len(c.queue), func(i int) bool {
		q := c.queue[i]
		return q.at > item.at || (q.at == item.at && q.seq > item.seq)
	})
	c.queue = append(c.queue, scheduled{})
	copy(c.queue[i+1:], c.queue[i:])
	c.queue[i] = item
}

// Now is the time elapsed since the clock was created.
func (c *VirtualClock) Now() time.Duration { return c.now }

// Pending is the number of callbacks not yet fired.
func (c *VirtualClock) Pending() int { return len(c.queue) }

// Advance moves the clock forward by d, firing everything that falls due,
// including callbacks scheduled by earlier ones. It returns how many fired.
func (c *VirtualClock) Advance(d time.Duration) int {
	target := c.now + d
	n := 0
	for len(c.queue) > 0 && c.queue[0].at <= target {
		n++
		c.pop()
	}
	c.now = target
	return n
}

// Drain fires callbacks until none are left and returns the clock's time.
// wait, when non-nil, is called with the gap before each callback.
func (c *VirtualClock) Drain(wait func(time.Duration)) time.Duration {
	for len(c.queue) > 0 {
		if gap := c.queue[0].at - c.now; wait != nil && gap > 0 {
			wait(gap)
		}
		c.pop()
	}
	return c.now
}

func (c *VirtualClock) pop() {
	next := c.queue[0]
	c.queue = c.queue[1:]
	c.now = next.at
	next.fire()
}
