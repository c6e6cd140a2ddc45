package clock

// TicksPerSecond is the rate of the shared system tick counter. The System
// clock counts milliseconds; target code scales its hardware timer down to
// milliseconds before storing (see targets/rp2040).
const TicksPerSecond = 1000

// System is the shared clock instance, driven by the system tick counter.
// Firmware that only needs one clock can use the package-level functions,
// which all operate on it.
var System = New(SystemTicks, TicksPerSecond)

// SystemTicks returns the current system tick count in milliseconds.
func SystemTicks() uint32 {
	return getSystemTicks()
}

// SetSystemTicks stores the system tick count. Target code calls this from
// its main loop or timer interrupt with the scaled hardware timer value.
func SetSystemTicks(ticks uint32) {
	setSystemTicks(ticks)
}

// Set overwrites the shared clock with the given Unix timestamp.
func Set(now uint32) {
	System.Set(now)
}

// Get returns the current Unix timestamp of the shared clock.
func Get() uint32 {
	return System.Get()
}

// Now fills dt with the broken-down current time of the shared clock.
func Now(dt *DateTime) {
	System.Now(dt)
}

// SetProvider registers a time provider on the shared clock.
func SetProvider(p Provider, interval uint32) {
	System.SetProvider(p, interval)
}

// CurrentStatus returns the trust level of the shared clock.
func CurrentStatus() Status {
	return System.Status()
}
