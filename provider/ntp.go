package provider

import (
	"encoding/binary"
	"fmt"
	"net"
	"time"

	"swclock/clock"
)

// Seconds between the NTP epoch (1900-01-01) and the Unix epoch.
const ntpEpochOffset = 2208988800

// ntpPacket is an SNTP message (RFC 4330). Only TxTime is consumed; the
// rest exists so the packet is the right 48 bytes on the wire.
type ntpPacket struct {
	Settings       uint8 // leap indicator, version, mode
	Stratum        uint8
	Poll           int8
	Precision      int8
	RootDelay      uint32
	RootDispersion uint32
	ReferenceID    uint32
	RefTimeSec     uint32
	RefTimeFrac    uint32
	OrigTimeSec    uint32
	OrigTimeFrac   uint32
	RxTimeSec      uint32
	RxTimeFrac     uint32
	TxTimeSec      uint32
	TxTimeFrac     uint32
}

// NTP is a one-shot SNTP client for host builds.
type NTP struct {
	Host    string        // server address, e.g. "pool.ntp.org:123"
	Timeout time.Duration // per-query deadline
}

// NewNTP returns a client for the given server address with a 5 second
// query timeout.
func NewNTP(host string) *NTP {
	return &NTP{Host: host, Timeout: 5 * time.Second}
}

// Query performs one SNTP exchange and returns the server's transmit time
// as a Unix timestamp.
func (n *NTP) Query() (uint32, error) {
	conn, err := net.Dial("udp", n.Host)
	if err != nil {
		return 0, fmt.Errorf("ntp: dial %s: %w", n.Host, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(n.Timeout)); err != nil {
		return 0, fmt.Errorf("ntp: set deadline: %w", err)
	}

	req := ntpPacket{Settings: 0x1B} // LI 0, version 3, mode 3 (client)
	if err := binary.Write(conn, binary.BigEndian, &req); err != nil {
		return 0, fmt.Errorf("ntp: send: %w", err)
	}

	var resp ntpPacket
	if err := binary.Read(conn, binary.BigEndian, &resp); err != nil {
		return 0, fmt.Errorf("ntp: read: %w", err)
	}
	if resp.TxTimeSec < ntpEpochOffset {
		return 0, fmt.Errorf("ntp: server transmit time %d predates the unix epoch", resp.TxTimeSec)
	}
	return resp.TxTimeSec - ntpEpochOffset, nil
}

// Provider adapts the client to the clock callback contract: any transport
// or protocol failure maps to the 0 sentinel.
func (n *NTP) Provider() clock.Provider {
	return func() uint32 {
		ts, err := n.Query()
		if err != nil {
			return 0
		}
		return ts
	}
}
