package model

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/features/events/lifecycle"
)

func TestBeforeSaveCompletedAfterEnd(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	ctx := lifecycle.WithClock(context.Background(), func() time.Time { return now })
	p := &PartyLiterasiModel{EventBase: eventbase.EventBase{
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Status:    lifecycle.StatusScheduled,
	}}
	if err := p.BeforeSave(&gorm.DB{Statement: &gorm.Statement{Context: ctx}}); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if p.Status != lifecycle.StatusCompleted {
		t.Fatalf("status = %s, want completed", p.Status)
	}
}
