package provider

import (
	"tinygo.org/x/drivers/ds3231"

	"swclock/clock"
)

// DS3231 adapts a DS3231 battery-backed RTC chip to the provider contract.
// The returned provider reports unavailable when the chip flags its time
// invalid (oscillator stopped, usually a dead battery), when the bus read
// fails, or when the stored time is not after the Unix epoch.
//
// The device must already be configured; see examples/ds3231.
func DS3231(dev *ds3231.Device) clock.Provider {
	return func() uint32 {
		if !dev.IsTimeValid() {
			return 0
		}
		t, err := dev.ReadTime()
		if err != nil {
			return 0
		}
		ts := t.Unix()
		if ts <= 0 {
			return 0
		}
		return uint32(ts)
	}
}
