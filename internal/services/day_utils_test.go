package services

import (
	"testing"
	"time"
)

func TestParseDayCalendarDate(t *testing.T) {
	t.Parallel()

	parsed, err := ParseDay("2024-06-15")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Fatalf("parsed %v, want %v", parsed, want)
	}
}

func TestParseDayRFC3339Fallback(t *testing.T) {
	t.Parallel()

	parsed, err := ParseDay("2024-06-15T22:30:00+03:00")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	// 22:30+03:00 is 19:30 UTC, still June 15.
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Fatalf("parsed %v, want %v", parsed, want)
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseDay("not-a-date"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestDateOnlyUTCCrossesMidnight(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2024, 6, 15, 22, 0, 0, 0, zone)

	got := DateOnlyUTC(local)
	want := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOnlyUTC = %v, want %v", got, want)
	}
}
