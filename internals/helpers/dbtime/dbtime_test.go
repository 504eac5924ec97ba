package dbtime

import (
	"testing"
	"time"
)

func TestSetClock(t *testing.T) {
	at := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	restore := SetClock(Fixed(at))
	if got := Now(); !got.Equal(at) {
		t.Fatalf("Now() = %v, want %v", got, at)
	}
	restore()
	if got := Now(); got.Equal(at) {
		t.Fatal("clock not restored")
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-06-01T00:00:00Z", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2024-06-01T07:00:00+07:00", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2024-06-01", want: time.Date(2024, 6, 1, 0, 0, 0, 0, Location())},
		{in: "2024-06-01 10:30", wantErr: true},
		{in: "01/06/2024", wantErr: true},
		{in: "", want: time.Time{}},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestToLocal(t *testing.T) {
	if !ToLocal(time.Time{}).IsZero() {
		t.Fatal("zero time must stay zero")
	}
	if ToLocalPtr(nil) != nil {
		t.Fatal("nil stays nil")
	}
	in := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := ToLocal(in); !got.Equal(in) || got.Location() != Location() {
		t.Fatalf("ToLocal = %v", got)
	}
}
