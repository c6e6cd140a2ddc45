package provider

import (
	"bufio"
	"io"
	"strings"

	"swclock/clock"
)

// GPS reads NMEA 0183 sentences from a receiver (typically a serial port)
// and serves the date/time of RMC fixes as a time provider.
type GPS struct {
	scanner *bufio.Scanner

	// MaxSentences bounds how many lines one provider call may consume
	// while waiting for a valid RMC fix before giving up.
	MaxSentences int
}

// NewGPS returns a GPS provider reading NMEA sentences from r.
func NewGPS(r io.Reader) *GPS {
	return &GPS{scanner: bufio.NewScanner(r), MaxSentences: 40}
}

// Provider returns a clock.Provider that scans forward to the next valid
// RMC sentence and converts its UTC date and time to a Unix timestamp. It
// returns 0 when the stream ends, errors, or yields no usable fix within
// MaxSentences lines.
func (g *GPS) Provider() clock.Provider {
	return func() uint32 {
		for i := 0; i < g.MaxSentences; i++ {
			if !g.scanner.Scan() {
				return 0
			}
			if ts, ok := ParseRMC(g.scanner.Text()); ok {
				return ts
			}
		}
		return 0
	}
}

// ParseRMC extracts the Unix timestamp from one NMEA RMC sentence
// ($GPRMC, $GNRMC and other talkers). It reports ok=false for non-RMC
// sentences, checksum mismatches, void fixes and malformed fields.
//
// Two-digit years map to 2000-2099, the only interpretation a live
// receiver can mean.
func ParseRMC(line string) (uint32, bool) {
	if len(line) < 7 || line[0] != '$' {
		return 0, false
	}
	body, sum, ok := splitChecksum(line[1:])
	if !ok || checksum(body) != sum {
		return 0, false
	}

	fields := strings.Split(body, ",")
	if len(fields) < 10 {
		return 0, false
	}
	talker := fields[0]
	if len(talker) != 5 || talker[2:] != "RMC" {
		return 0, false
	}
	if fields[2] != "A" { // A = active fix, V = void
		return 0, false
	}

	hms := fields[1] // hhmmss, optionally followed by .sss
	dmy := fields[9] // ddmmyy
	if len(hms) < 6 || len(dmy) != 6 {
		return 0, false
	}

	var dt clock.DateTime
	vals := []struct {
		dst *int
		s   string
	}{
		{&dt.Hour, hms[0:2]},
		{&dt.Minute, hms[2:4]},
		{&dt.Second, hms[4:6]},
		{&dt.Day, dmy[0:2]},
		{&dt.Month, dmy[2:4]},
		{&dt.Year, dmy[4:6]},
	}
	for _, v := range vals {
		n, ok := atoi2(v.s)
		if !ok {
			return 0, false
		}
		*v.dst = n
	}
	dt.Year += 2000 - 1970

	return clock.Make(&dt), true
}

// splitChecksum separates an NMEA body from its trailing *hh checksum.
func splitChecksum(s string) (body string, sum byte, ok bool) {
	star := strings.IndexByte(s, '*')
	if star < 0 || len(s) < star+3 {
		return "", 0, false
	}
	hi, ok1 := hexVal(s[star+1])
	lo, ok2 := hexVal(s[star+2])
	if !ok1 || !ok2 {
		return "", 0, false
	}
	return s[:star], hi<<4 | lo, true
}

// checksum XORs every byte between the leading $ and the *.
func checksum(body string) byte {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return sum
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// atoi2 parses exactly two ASCII digits.
func atoi2(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
