//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ds3231"

	"swclock/clock"
	"swclock/provider"
)

func main() {
	// Let USB CDC enumerate before the first print.
	time.Sleep(2 * time.Second)

	UpdateClockTicks()

	// A DS3231 on I2C0 is the time base; the clock free-runs on the
	// microsecond timer between hourly syncs.
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.I2C0_SDA_PIN,
		SCL: machine.I2C0_SCL_PIN,
	})
	if err == nil {
		rtc := ds3231.New(machine.I2C0)
		rtc.Configure()
		clock.SetProvider(provider.DS3231(&rtc), 3600)
	}

	var dt clock.DateTime
	for {
		UpdateClockTicks()
		clock.Now(&dt)

		println(dt.WeekdayName(), 1970+dt.Year, dt.Month, dt.Day,
			dt.Hour, dt.Minute, dt.Second, clock.CurrentStatus().String())

		time.Sleep(time.Second)
	}
}
