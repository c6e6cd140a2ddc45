package provider

import (
	"bytes"
	"encoding/binary"
	"net"
	"testing"
	"time"
)

func TestNTPPacketSize(t *testing.T) {
	// SNTP messages are exactly 48 bytes on the wire.
	if size := binary.Size(ntpPacket{}); size != 48 {
		t.Errorf("packet size = %d bytes, want 48", size)
	}
}

// fakeServer answers one SNTP request with the given transmit time (in NTP
// seconds) and returns its address.
func fakeServer(t *testing.T, txSec uint32) string {
	t.Helper()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	go func() {
		buf := make([]byte, 64)
		n, addr, err := conn.ReadFrom(buf)
		if err != nil || n < 48 {
			return
		}
		resp := ntpPacket{
			Settings:  0x1C, // LI 0, version 3, mode 4 (server)
			Stratum:   2,
			TxTimeSec: txSec,
		}
		var out bytes.Buffer
		binary.Write(&out, binary.BigEndian, &resp)
		conn.WriteTo(out.Bytes(), addr)
	}()

	return conn.LocalAddr().String()
}

func TestNTPQuery(t *testing.T) {
	addr := fakeServer(t, ntpEpochOffset+1700000000)

	n := NewNTP(addr)
	n.Timeout = 2 * time.Second
	ts, err := n.Query()
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if ts != 1700000000 {
		t.Errorf("Query = %d, want 1700000000", ts)
	}
}

func TestNTPQueryPreEpoch(t *testing.T) {
	// A transmit time before 1970 cannot be represented; the client must
	// refuse rather than underflow.
	addr := fakeServer(t, 12345)

	n := NewNTP(addr)
	n.Timeout = 2 * time.Second
	if _, err := n.Query(); err == nil {
		t.Error("Query accepted a pre-epoch transmit time")
	}
}

func TestNTPProviderSentinel(t *testing.T) {
	addr := fakeServer(t, ntpEpochOffset+1800000000)
	n := NewNTP(addr)
	n.Timeout = 2 * time.Second
	if ts := n.Provider()(); ts != 1800000000 {
		t.Errorf("provider = %d, want 1800000000", ts)
	}

	// A server that never answers maps to the unavailable sentinel.
	silent, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer silent.Close()

	n = NewNTP(silent.LocalAddr().String())
	n.Timeout = 100 * time.Millisecond
	if ts := n.Provider()(); ts != 0 {
		t.Errorf("provider against silent server = %d, want 0", ts)
	}
}
