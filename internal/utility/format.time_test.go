package utility

import (
	"testing"
	"time"
)

func TestFormatCompactTime(t *testing.T) {
	ts := time.Date(2025, 3, 7, 9, 5, 30, 0, time.UTC)
	if got := FormatCompactTime(ts); got != "20250307090530" {
		t.Errorf("Mong đợi 20250307090530, nhận được %s", got)
	}
}

func TestFormatImageTimestamp(t *testing.T) {
	ts := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	if got := FormatImageTimestamp(ts); got != "20251231_235959" {
		t.Errorf("Mong đợi 20251231_235959, nhận được %s", got)
	}
}

func TestDateKey(t *testing.T) {
	if got := DateKey("20250307090530"); got != "20250307" {
		t.Errorf("Mong đợi 20250307, nhận được %s", got)
	}
	if got := DateKey("2025"); got != "" {
		t.Errorf("Chuỗi ngắn hơn 8 ký tự phải trả về rỗng, nhận được %q", got)
	}
}

func TestDayRange(t *testing.T) {
	start, end := DayRange("20250307")
	if start != "20250307000000" {
		t.Errorf("Mong đợi start 20250307000000, nhận được %s", start)
	}
	if end != "20250307235959" {
		t.Errorf("Mong đợi end 20250307235959, nhận được %s", end)
	}
}
