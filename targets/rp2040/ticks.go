//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"

	"swclock/clock"
)

// RP2040/RP2350 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareUptime reads the full 64-bit microsecond timer. High must be read
// before and after low to detect a rollover between the two word reads.
func hardwareUptime() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
		// Rollover happened during the read, retry.
	}
}

// UpdateClockTicks feeds the shared clock's millisecond tick counter from
// the hardware timer. Call it from the main loop at least once per counter
// wrap (about every 49 days; in practice every pass).
func UpdateClockTicks() {
	// Scaling the 64-bit value keeps the truncated uint32 monotonic
	// modulo 2^32, which is all the accumulator needs.
	clock.SetSystemTicks(uint32(hardwareUptime() / 1000))
}
