package animations

import "time"

// Subscriber receives the scaled delta of a tick, in seconds.
type Subscriber func(scaledDelta float64)

// Token identifies a subscription so it can be removed later.
type Token uint64

type subscription struct {
	token Token
	fn    Subscriber
}

// Clock converts wall-clock ticks into scaled deltas and fans them out to its
// subscribers in subscription order.
type Clock struct {
	last  time.Time
	scale float64

	subs      []subscription
	nextToken Token
}

// NewClock starts a clock at start. Subscribers passed here are registered in
// order before any later Subscribe calls.
func NewClock(start time.Time, scale float64, subscribers ...Subscriber) *Clock {
	c := &Clock{last: start}
	c.SetScale(scale)
	for _, fn := range subscribers {
		c.Subscribe(fn)
	}
	return c
}

// Subscribe appends fn to the broadcast list.
func (c *Clock) Subscribe(fn Subscriber) Token {
	c.nextToken++
	c.subs = append(c.subs, subscription{token: c.nextToken, fn: fn})
	return c.nextToken
}

// Unsubscribe removes the subscription for t, reporting whether it existed.
// It is safe to call from inside a subscriber; the removal takes effect on
// the next tick.
func (c *Clock) Unsubscribe(t Token) bool {
	for i, s := range c.subs {
		if s.token != t {
			continue
		}
		subs := make([]subscription, 0, len(c.subs)-1)
		subs = append(subs, c.subs[:i]...)
		subs = append(subs, c.subs[i+1:]...)
		c.subs = subs
		return true
	}
	return false
}

// SetScale sets the speed multiplier. Negative and NaN values are clamped
// to 0.
func (c *Clock) SetScale(scale float64) {
	if !(scale >= 0) {
		scale = 0
	}
	c.scale = scale
}

func (c *Clock) Scale() float64 {
	return c.scale
}

// Len returns the number of subscribers.
func (c *Clock) Len() int {
	return len(c.subs)
}

// Tick measures the wall time since the previous tick, scales it and
// delivers it to every subscriber. A timestamp earlier than the previous one
// yields a zero delta. The scaled delta is returned.
func (c *Clock) Tick(now time.Time) float64 {
	wall := now.Sub(c.last)
	if now.After(c.last) {
		c.last = now
	}
	return c.broadcast(wall)
}

// Advance moves the clock forward by a fixed wall delta, for callers that
// step at a fixed rate instead of reading timestamps.
func (c *Clock) Advance(wall time.Duration) float64 {
	if wall > 0 {
		c.last = c.last.Add(wall)
	}
	return c.broadcast(wall)
}

func (c *Clock) broadcast(wall time.Duration) float64 {
	if wall < 0 {
		wall = 0
	}
	scaled := wall.Seconds() * c.scale

	for _, s := range c.subs {
		s.fn(scaled)
	}
	return scaled
}
