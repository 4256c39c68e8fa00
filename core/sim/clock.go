package sim

// Clock counts simulation ticks. Ticks are 1-based; the run is done once the
// counter passes the horizon.
type Clock struct {
	tick  int
	total int
}

// NewClock creates a clock for the given horizon.
func NewClock(totalTicks int) *Clock {
	return &Clock{tick: 1, total: totalTicks}
}

// Current returns the current tick index.
func (c *Clock) Current() int { return c.tick }

// Total returns the horizon in ticks.
func (c *Clock) Total() int { return c.total }

// Done reports whether the horizon has been passed.
func (c *Clock) Done() bool { return c.tick > c.total }

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() { c.tick++ }
