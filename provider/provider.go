// Package provider implements time providers for the clock package: sources
// that deliver an authoritative Unix timestamp on demand, or 0 when they
// cannot. Providers never block longer than their configured transport
// timeout and never touch clock state; the clock's sync controller decides
// what to do with their answers.
package provider

import "swclock/clock"

// Fallback chains several providers. Each call tries them in order and
// returns the first nonzero timestamp, or 0 when every source is
// unavailable.
func Fallback(sources ...clock.Provider) clock.Provider {
	return func() uint32 {
		for _, src := range sources {
			if ts := src(); ts != 0 {
				return ts
			}
		}
		return 0
	}
}

// NotBefore rejects timestamps earlier than min, turning them into the
// unavailable sentinel. Useful in front of battery-backed RTC chips, which
// hand out their power-on default after a battery failure without always
// flagging it.
func NotBefore(min uint32, src clock.Provider) clock.Provider {
	return func() uint32 {
		ts := src()
		if ts < min {
			return 0
		}
		return ts
	}
}
