package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"galeri_backend/internals/features/books/model"
)

func TestNormalizeISBN(t *testing.T) {
	cases := map[string]any{
		"978-602-03-1234-5": "9786020312345",
		" 0-306-40615-2 ":   "0306406152",
		"":                  nil,
	}
	for in, want := range cases {
		s := in
		got := NormalizeISBN(&s)
		if want == nil {
			if got != nil {
				t.Errorf("NormalizeISBN(%q) = %q, want nil", in, *got)
			}
			continue
		}
		if got == nil || *got != want {
			t.Errorf("NormalizeISBN(%q) = %v, want %v", in, got, want)
		}
	}
	if NormalizeISBN(nil) != nil {
		t.Error("nil input must stay nil")
	}
}

func TestCreateBookValidation(t *testing.T) {
	v := validator.New()
	bad := "123"
	if err := v.Struct(CreateBookRequest{Title: "Laut Bercerita", Author: "Leila S. Chudori", ISBN: &bad}); err == nil {
		t.Fatal("invalid ISBN accepted")
	}
	good := "978-0-306-40615-7"
	if err := v.Struct(CreateBookRequest{Title: "Laut Bercerita", Author: "Leila S. Chudori", ISBN: &good}); err != nil {
		t.Fatalf("valid ISBN rejected: %v", err)
	}
}

func TestFromModelEmptyCollections(t *testing.T) {
	r := FromModel(model.BookModel{Title: "Tanpa Genre"})
	if r.Genres == nil || r.Metadata == nil {
		t.Fatal("genres/metadata must serialize as [] and {}")
	}

	m := CreateBookRequest{Title: "Cantik Itu Luka", Author: "Eka Kurniawan", Genres: []string{"Fiksi", " fiksi ", "Sejarah"}}.ToModel(nil)
	if len(m.Genres) != 2 || m.Genres[0] != "fiksi" {
		t.Fatalf("genres = %v", m.Genres)
	}
}
