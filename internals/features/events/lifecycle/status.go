// Package lifecycle derives the effective status of dated events
// (programs, party literasi) from their date window and the current time.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var AllStatuses = []Status{
	StatusDraft,
	StatusScheduled,
	StatusOngoing,
	StatusCompleted,
	StatusCancelled,
}

// ErrMissingDates is matched by every ValidationError about an absent date.
var ErrMissingDates = errors.New("start_date dan end_date wajib diisi")

// ErrInvalidRange is matched by ValidationError when end_date < start_date.
var ErrInvalidRange = errors.New("end_date tidak boleh sebelum start_date")

// ErrMalformedDate is matched by ValidationError when a date cannot be parsed.
var ErrMalformedDate = errors.New("format tanggal tidak valid")

// ValidationError describes a date problem on a single field.
type ValidationError struct {
	Field   string
	Message string
	kind    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.kind }

// MalformedDate builds the error returned for unparseable date input.
func MalformedDate(field, raw string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("format tanggal tidak valid: %q", raw), kind: ErrMalformedDate}
}

func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus menerima input case-insensitive; string kosong → draft.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StatusDraft, nil
	}
	if !s.Valid() {
		return "", fmt.Errorf("status %q tidak dikenal", raw)
	}
	return s, nil
}

// Resolve computes the status an event has at instant now.
// Cancelled is sticky; otherwise the window [start, end] is inclusive on both ends.
func Resolve(in Status, start, end, now time.Time) (Status, error) {
	if in == StatusCancelled {
		return StatusCancelled, nil
	}
	if start.IsZero() {
		return "", &ValidationError{Field: "start_date", Message: "wajib diisi", kind: ErrMissingDates}
	}
	if end.IsZero() {
		return "", &ValidationError{Field: "end_date", Message: "wajib diisi", kind: ErrMissingDates}
	}

	switch {
	case now.Before(start):
		return StatusScheduled, nil
	case !now.After(end):
		return StatusOngoing, nil
	default:
		return StatusCompleted, nil
	}
}

// ValidateRange checks the write-time invariant end >= start.
func ValidateRange(start, end time.Time) error {
	if start.IsZero() {
		return &ValidationError{Field: "start_date", Message: "wajib diisi", kind: ErrMissingDates}
	}
	if end.IsZero() {
		return &ValidationError{Field: "end_date", Message: "wajib diisi", kind: ErrMissingDates}
	}
	if end.Before(start) {
		return &ValidationError{Field: "end_date", Message: "tidak boleh sebelum start_date", kind: ErrInvalidRange}
	}
	return nil
}
