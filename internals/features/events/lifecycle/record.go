package lifecycle

import (
	"context"
	"time"
)

// Record is implemented by every model carrying a dated lifecycle.
type Record interface {
	LifecycleStatus() Status
	SetLifecycleStatus(Status)
	LifecycleWindow() (start, end time.Time)
}

// Apply resolves r at now and stores the result on r. Used by write hooks.
func Apply(r Record, now time.Time) error {
	start, end := r.LifecycleWindow()
	st, err := Resolve(r.LifecycleStatus(), start, end, now)
	if err != nil {
		return err
	}
	r.SetLifecycleStatus(st)
	return nil
}

// Project returns the status r has at now without touching r.
// Rows whose dates cannot be resolved report their stored status.
func Project(r Record, now time.Time) Status {
	start, end := r.LifecycleWindow()
	st, err := Resolve(r.LifecycleStatus(), start, end, now)
	if err != nil {
		return r.LifecycleStatus()
	}
	return st
}

type clockKey struct{}

// WithClock attaches a clock to ctx; hooks read it through NowFrom.
func WithClock(ctx context.Context, now func() time.Time) context.Context {
	if now == nil {
		return ctx
	}
	return context.WithValue(ctx, clockKey{}, now)
}

// NowFrom returns the instant from the clock on ctx, or time.Now.
func NowFrom(ctx context.Context) time.Time {
	if ctx != nil {
		if fn, ok := ctx.Value(clockKey{}).(func() time.Time); ok && fn != nil {
			return fn()
		}
	}
	return time.Now()
}
