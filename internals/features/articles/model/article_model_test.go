package model

import (
	"testing"
	"time"
)

func TestBeforeSavePublishedAt(t *testing.T) {
	first := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		in        ArticleModel
		wantSet   bool
		wantFirst bool
	}{
		{"draft stays empty", ArticleModel{}, false, false},
		{"first publish stamps", ArticleModel{IsPublished: true}, true, false},
		{"republish keeps first date", ArticleModel{IsPublished: true, PublishedAt: &first}, true, true},
		{"unpublished keeps first date", ArticleModel{PublishedAt: &first}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.in
			if err := a.BeforeSave(nil); err != nil {
				t.Fatalf("BeforeSave: %v", err)
			}
			if (a.PublishedAt != nil) != tt.wantSet {
				t.Fatalf("published_at = %v, want set=%v", a.PublishedAt, tt.wantSet)
			}
			if tt.wantFirst && !a.PublishedAt.Equal(first) {
				t.Errorf("published_at = %v, want %v", a.PublishedAt, first)
			}
			if a.Tags == nil {
				t.Error("tags must default to empty array")
			}
		})
	}
}
