// clock-host runs the software clock on a PC against real time sources.
// It is a development aid: the same clock, provider and status machinery
// that runs on an MCU, fed from a millisecond tick source and synced from
// NTP and/or a GPS receiver on a serial port.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"swclock/clock"
	"swclock/host/serial"
	"swclock/provider"
)

var (
	ntpHost  = flag.String("ntp", "pool.ntp.org:123", "NTP server address (empty to disable)")
	gpsDev   = flag.String("gps", "", "GPS serial device for NMEA time (empty to disable)")
	baud     = flag.Int("baud", 9600, "GPS baud rate")
	interval = flag.Uint("interval", 300, "seconds between sync attempts")
)

func main() {
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Millisecond ticks since process start, standing in for the MCU's
	// hardware timer. The uint32 truncation wraps after ~49 days, which
	// the accumulator absorbs.
	start := time.Now()
	c := clock.New(func() uint32 {
		return uint32(time.Since(start).Milliseconds())
	}, 1000)

	var sources []clock.Provider
	if *gpsDev != "" {
		cfg := serial.DefaultConfig(*gpsDev)
		cfg.Baud = *baud
		port, err := serial.Open(cfg)
		if err != nil {
			logger.Fatal("failed to open GPS port",
				zap.String("device", *gpsDev), zap.Error(err))
		}
		defer port.Close()
		sources = append(sources, provider.NewGPS(port).Provider())
		logger.Info("GPS source configured",
			zap.String("device", *gpsDev), zap.Int("baud", *baud))
	}
	if *ntpHost != "" {
		sources = append(sources, provider.NewNTP(*ntpHost).Provider())
		logger.Info("NTP source configured", zap.String("server", *ntpHost))
	}
	if len(sources) == 0 {
		logger.Fatal("no time source configured, pass -ntp and/or -gps")
	}

	c.SetProvider(provider.Fallback(sources...), uint32(*interval))
	logger.Info("clock started",
		zap.String("status", c.Status().String()),
		zap.Uint32("timestamp", c.Get()),
		zap.Uint32("sync_interval", c.SyncInterval()))

	last := c.Status()
	var dt clock.DateTime
	for {
		ts := c.Get()
		if s := c.Status(); s != last {
			logger.Info("clock status changed",
				zap.String("from", last.String()),
				zap.String("to", s.String()),
				zap.Uint32("timestamp", ts))
			last = s
		}

		clock.Break(ts, &dt)
		fmt.Printf("%s %02d %s %d %02d:%02d:%02d UTC  status=%s\n",
			dt.WeekdayName(), dt.Day, dt.MonthName(), 1970+dt.Year,
			dt.Hour, dt.Minute, dt.Second, c.Status())

		time.Sleep(time.Second)
	}
}
