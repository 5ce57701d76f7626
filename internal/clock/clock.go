package clock

// Clock counts ticks toward a deadline. The zero value is already ready.
type Clock struct {
	tick     uint64
	deadline uint64
}

// Deadline returns a clock that fires after d ticks.
func Deadline(d int) Clock {
	return Clock{deadline: clampDeadline(d)}
}

// Ready reports whether the deadline has been reached without advancing.
func (c *Clock) Ready() bool {
	return c.tick >= c.deadline
}

// Tick advances the clock by one and reports whether it has fired.
// The counter wraps on overflow.
func (c *Clock) Tick() bool {
	c.tick++
	return c.Ready()
}

// Reset rearms the clock with a new deadline.
func (c *Clock) Reset(d int) {
	c.tick = 0
	c.deadline = clampDeadline(d)
}

// Deadline returns the tick count at which the clock fires.
func (c *Clock) Deadline() int { return int(c.deadline) }

// Ticks returns the ticks counted since the last reset.
func (c *Clock) Ticks() uint64 { return c.tick }

func clampDeadline(d int) uint64 {
	if d < 0 {
		return 0
	}
	return uint64(d)
}
