package lifecycle

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	start := day(2024, time.January, 10)
	end := day(2024, time.January, 20)

	tests := []struct {
		name string
		in   Status
		now  time.Time
		want Status
	}{
		{"before start", StatusDraft, day(2024, time.January, 1), StatusScheduled},
		{"one nanosecond before start", StatusScheduled, start.Add(-time.Nanosecond), StatusScheduled},
		{"exactly at start", StatusScheduled, day(2024, time.January, 10), StatusOngoing},
		{"inside window", StatusDraft, day(2024, time.January, 15), StatusOngoing},
		{"exactly at end", StatusOngoing, end, StatusOngoing},
		{"one nanosecond after end", StatusOngoing, end.Add(time.Nanosecond), StatusCompleted},
		{"day after end", StatusScheduled, day(2024, time.January, 21), StatusCompleted},
		{"completed can become scheduled again", StatusCompleted, day(2023, time.December, 1), StatusScheduled},
		{"cancelled before start", StatusCancelled, day(2024, time.January, 1), StatusCancelled},
		{"cancelled inside window", StatusCancelled, day(2024, time.January, 15), StatusCancelled},
		{"cancelled after end", StatusCancelled, day(2025, time.January, 1), StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in, start, end, tt.now)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveEndOfDayBoundary(t *testing.T) {
	start := day(2024, time.January, 10)
	end := time.Date(2024, time.January, 20, 23, 59, 59, 0, time.UTC)

	got, err := Resolve(StatusScheduled, start, end, time.Date(2024, time.January, 20, 23, 59, 59, 0, time.UTC))
	if err != nil || got != StatusOngoing {
		t.Errorf("at end instant: got (%q, %v), want ongoing", got, err)
	}

	got, err = Resolve(StatusScheduled, start, end, day(2024, time.January, 21))
	if err != nil || got != StatusCompleted {
		t.Errorf("next day: got (%q, %v), want completed", got, err)
	}
}

func TestResolvePartitionsTime(t *testing.T) {
	start := day(2024, time.June, 1)
	end := day(2024, time.June, 10)

	// Walk hour by hour across the window and check every instant lands in
	// exactly the bucket its comparison with start/end implies.
	for now := start.Add(-72 * time.Hour); now.Before(end.Add(72 * time.Hour)); now = now.Add(time.Hour) {
		got, err := Resolve(StatusDraft, start, end, now)
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", now, err)
		}

		var want Status
		switch {
		case now.Before(start):
			want = StatusScheduled
		case now.After(end):
			want = StatusCompleted
		default:
			want = StatusOngoing
		}
		if got != want {
			t.Fatalf("Resolve(%s) = %q, want %q", now, got, want)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	start := day(2024, time.June, 1)
	end := day(2024, time.June, 10)
	now := day(2024, time.June, 5)

	first, _ := Resolve(StatusDraft, start, end, now)
	second, _ := Resolve(StatusDraft, start, end, now)
	again, _ := Resolve(first, start, end, now)
	if first != second || first != again {
		t.Errorf("Resolve not stable: %q, %q, %q", first, second, again)
	}
}

func TestResolveCancelledIgnoresDates(t *testing.T) {
	got, err := Resolve(StatusCancelled, time.Time{}, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Resolve(cancelled, zero dates) error = %v", err)
	}
	if got != StatusCancelled {
		t.Errorf("Resolve(cancelled) = %q", got)
	}
}

func TestResolveMissingDates(t *testing.T) {
	now := day(2024, time.June, 5)
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantField string
	}{
		{"missing start", time.Time{}, day(2024, time.June, 10), "start_date"},
		{"missing end", day(2024, time.June, 1), time.Time{}, "end_date"},
		{"missing both", time.Time{}, time.Time{}, "start_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(StatusDraft, tt.start, tt.end, now)
			if err == nil {
				t.Fatalf("Resolve() = %q, want error", got)
			}
			if !errors.Is(err, ErrMissingDates) {
				t.Errorf("error %v does not match ErrMissingDates", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error %T is not *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	a := day(2024, time.June, 1)
	b := day(2024, time.June, 10)

	if err := ValidateRange(a, b); err != nil {
		t.Errorf("ValidateRange(a, b) = %v", err)
	}
	if err := ValidateRange(a, a); err != nil {
		t.Errorf("ValidateRange(a, a) = %v", err)
	}
	if err := ValidateRange(b, a); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("ValidateRange(b, a) = %v, want ErrInvalidRange", err)
	}
	if err := ValidateRange(time.Time{}, b); !errors.Is(err, ErrMissingDates) {
		t.Errorf("ValidateRange(zero, b) = %v, want ErrMissingDates", err)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"", StatusDraft, false},
		{"Cancelled", StatusCancelled, false},
		{" ongoing ", StatusOngoing, false},
		{"archived", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMalformedDate(t *testing.T) {
	err := error(MalformedDate("start_date", "besok"))
	if !errors.Is(err, ErrMalformedDate) || errors.Is(err, ErrMissingDates) {
		t.Fatalf("MalformedDate kind mismatch: %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "start_date" {
		t.Fatalf("errors.As failed: %#v", err)
	}
}
