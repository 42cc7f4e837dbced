package clock

import (
	"testing"
	"time"
)

func TestSystemClock(t *testing.T) {
	var c System
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := c.Now()
	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)

	if !m.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, m.Now())
	}

	m.Advance(1500 * time.Millisecond)
	if want := start.Add(1500 * time.Millisecond); !m.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, m.Now())
	}

	later := start.Add(time.Hour)
	m.Set(later)
	if !m.Now().Equal(later) {
		t.Errorf("Expected %v after Set, got %v", later, m.Now())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{59 * time.Second, "00:59"},
		{61*time.Second + 900*time.Millisecond, "01:01"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "1:00:00"},
		{26*time.Hour + 3*time.Minute + 4*time.Second, "26:03:04"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v): expected %q, got %q", tt.d, tt.want, got)
		}
	}
}
