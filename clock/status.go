package clock

// Status reports how much the current timestamp can be trusted.
type Status uint8

const (
	// StatusNotSet means the clock has never been set; timestamps count
	// up from zero and do not correspond to wall time.
	StatusNotSet Status = iota

	// StatusNeedsSync means the clock was set at some point but the last
	// scheduled resync failed; timestamps keep advancing on ticks and
	// slowly drift from the time base.
	StatusNeedsSync

	// StatusOK means the clock was set and the last resync succeeded.
	StatusOK
)

func (s Status) String() string {
	switch s {
	case StatusNotSet:
		return "not_set"
	case StatusNeedsSync:
		return "needs_sync"
	case StatusOK:
		return "ok"
	default:
		return "unknown"
	}
}
