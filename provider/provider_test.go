package provider

import "testing"

func TestFallback(t *testing.T) {
	dead := func() uint32 { return 0 }
	live := func() uint32 { return 1234567890 }
	backup := func() uint32 { return 42 }

	if ts := Fallback(dead, live, backup)(); ts != 1234567890 {
		t.Errorf("Fallback = %d, want the first nonzero source (1234567890)", ts)
	}
	if ts := Fallback(dead, dead)(); ts != 0 {
		t.Errorf("Fallback = %d, want 0 when every source is down", ts)
	}
	if ts := Fallback()(); ts != 0 {
		t.Errorf("empty Fallback = %d, want 0", ts)
	}
}

func TestFallbackStopsAtFirstHit(t *testing.T) {
	tried := 0
	src := func() uint32 { tried++; return 100 }
	Fallback(src, src, src)()
	if tried != 1 {
		t.Errorf("later sources queried %d times after a hit, want 1 total", tried)
	}
}

func TestNotBefore(t *testing.T) {
	// A battery-dead RTC handing out its power-on default.
	stale := func() uint32 { return 946684800 } // 2000-01-01
	if ts := NotBefore(1600000000, stale)(); ts != 0 {
		t.Errorf("NotBefore = %d, want 0 for a stale source", ts)
	}

	fresh := func() uint32 { return 1700000000 }
	if ts := NotBefore(1600000000, fresh)(); ts != 1700000000 {
		t.Errorf("NotBefore = %d, want 1700000000 passed through", ts)
	}
}
