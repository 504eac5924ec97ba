package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRecord struct {
	status     Status
	start, end time.Time
}

func (f *fakeRecord) LifecycleStatus() Status                 { return f.status }
func (f *fakeRecord) SetLifecycleStatus(s Status)             { f.status = s }
func (f *fakeRecord) LifecycleWindow() (time.Time, time.Time) { return f.start, f.end }

func TestApplyStoresResolvedStatus(t *testing.T) {
	r := &fakeRecord{status: StatusDraft, start: day(2024, time.June, 1), end: day(2024, time.June, 10)}

	if err := Apply(r, day(2024, time.May, 1)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if r.status != StatusScheduled {
		t.Errorf("status = %q, want scheduled", r.status)
	}
}

func TestApplyRejectsMissingDates(t *testing.T) {
	r := &fakeRecord{status: StatusDraft, start: day(2024, time.June, 1)}

	err := Apply(r, day(2024, time.May, 1))
	if !errors.Is(err, ErrMissingDates) {
		t.Fatalf("Apply() error = %v, want ErrMissingDates", err)
	}
	if r.status != StatusDraft {
		t.Errorf("status changed to %q on failed apply", r.status)
	}
}

func TestProjectDoesNotMutate(t *testing.T) {
	r := &fakeRecord{status: StatusDraft, start: day(2024, time.June, 1), end: day(2024, time.June, 10)}

	scenarios := []struct {
		now  time.Time
		want Status
	}{
		{day(2024, time.May, 1), StatusScheduled},
		{day(2024, time.June, 5), StatusOngoing},
		{day(2024, time.July, 1), StatusCompleted},
	}
	for _, sc := range scenarios {
		if got := Project(r, sc.now); got != sc.want {
			t.Errorf("Project(%s) = %q, want %q", sc.now.Format("2006-01-02"), got, sc.want)
		}
	}
	if r.status != StatusDraft {
		t.Errorf("Project mutated stored status to %q", r.status)
	}

	r.status = StatusCancelled
	for _, sc := range scenarios {
		if got := Project(r, sc.now); got != StatusCancelled {
			t.Errorf("Project(cancelled, %s) = %q", sc.now.Format("2006-01-02"), got)
		}
	}
}

func TestProjectFallsBackToStoredStatus(t *testing.T) {
	r := &fakeRecord{status: StatusDraft}
	if got := Project(r, day(2024, time.June, 5)); got != StatusDraft {
		t.Errorf("Project(no dates) = %q, want stored draft", got)
	}
}

func TestNowFrom(t *testing.T) {
	fixed := day(2024, time.June, 5)
	ctx := WithClock(context.Background(), func() time.Time { return fixed })

	if got := NowFrom(ctx); !got.Equal(fixed) {
		t.Errorf("NowFrom(ctx) = %s, want %s", got, fixed)
	}
	if got := NowFrom(context.Background()); got.IsZero() {
		t.Error("NowFrom(background) returned zero time")
	}
	if WithClock(context.Background(), nil) != context.Background() {
		t.Error("WithClock(nil) should return ctx unchanged")
	}
}
