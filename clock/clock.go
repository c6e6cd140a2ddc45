// Package clock implements a software real-time clock for microcontroller
// targets: a Unix seconds counter advanced from a free-running tick counter,
// resynchronized at a configurable interval against a pluggable time
// provider, with pure integer calendar conversion in both directions.
//
// All state lives in a Clock value owned by the application. A shared System
// instance driven by the package tick counter is provided for the common
// single-clock case. Nothing here locks: calls into one Clock must come from
// a single logical thread of execution.
package clock

// Provider returns an authoritative Unix timestamp from an external time
// base (GPS, NTP, RTC chip). A return of 0 means the source is unavailable
// right now; any nonzero value is accepted as-is.
type Provider func() uint32

// TickFunc reads a free-running, monotonically nondecreasing tick counter.
// The counter may wrap; deltas are taken in modular uint32 arithmetic, so a
// wrap is transparent as long as less than one full period passes between
// reads.
type TickFunc func() uint32

// Clock keeps Unix time from a tick source and a time provider.
type Clock struct {
	ticks          TickFunc
	ticksPerSecond uint32

	seconds  uint32 // Unix timestamp, seconds since 1970-01-01 UTC
	lastTick uint32 // tick value when seconds last advanced

	provider     Provider
	syncInterval uint32
	syncNext     uint32 // timestamp at which the next sync attempt is due

	status Status
}

// New returns a stopped clock reading from the given tick source.
// ticksPerSecond is the tick rate of the source and must be positive. The
// clock reports StatusNotSet and counts up from zero until Set is called or
// a provider delivers a timestamp.
func New(ticks TickFunc, ticksPerSecond uint32) *Clock {
	return &Clock{
		ticks:          ticks,
		ticksPerSecond: ticksPerSecond,
		syncInterval:   SecsPerDay,
	}
}

// Set overwrites the clock with the given Unix timestamp, marks it OK and
// schedules the next sync one interval out. The sub-second tick residual is
// discarded, so the next advance happens up to one second later.
func (c *Clock) Set(now uint32) {
	c.seconds = now
	c.syncNext = now + c.syncInterval
	c.status = StatusOK
	c.lastTick = c.ticks()
}

// Get returns the current Unix timestamp. It first runs a sync attempt if
// one is due and a provider is registered, then folds elapsed ticks into the
// seconds counter. Call it often enough that the tick counter cannot wrap
// more than once in between, or seconds are silently lost.
func (c *Clock) Get() uint32 {
	if c.syncNext <= c.seconds {
		if c.provider != nil {
			if now := c.provider(); now != 0 {
				c.Set(now)
			} else {
				// Source unavailable: keep free-running and retry one
				// interval from now. A clock that was never set stays
				// NotSet rather than NeedsSync.
				c.syncNext = c.seconds + c.syncInterval
				if c.status == StatusOK {
					c.status = StatusNeedsSync
				}
			}
		}
	}

	for c.ticks()-c.lastTick >= c.ticksPerSecond {
		c.seconds++
		c.lastTick += c.ticksPerSecond
	}

	return c.seconds
}

// Now fills dt with the broken-down form of the current time. Equivalent to
// Break(c.Get(), dt).
func (c *Clock) Now(dt *DateTime) {
	Break(c.Get(), dt)
}

// Status returns the current trust level of the clock.
func (c *Clock) Status() Status {
	return c.status
}

// SyncInterval returns the configured seconds between sync attempts.
func (c *Clock) SyncInterval() uint32 {
	return c.syncInterval
}

// NextSync returns the timestamp, on the clock's own timeline, of the next
// scheduled sync attempt.
func (c *Clock) NextSync() uint32 {
	return c.syncNext
}

// SetProvider registers a time provider and the interval in seconds between
// sync attempts. A nil provider is ignored. An interval of 0 selects the
// default of one day. The first sync attempt runs immediately.
func (c *Clock) SetProvider(p Provider, interval uint32) {
	if p == nil {
		return
	}
	c.provider = p
	if interval == 0 {
		interval = SecsPerDay
	}
	c.syncInterval = interval
	c.syncNext = c.seconds
	c.Get()
}
