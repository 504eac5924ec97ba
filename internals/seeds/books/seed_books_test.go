package books

import "testing"

func TestLoadBookSeeds(t *testing.T) {
	seeds, err := LoadBookSeeds("data_books.json")
	if err != nil {
		t.Fatalf("LoadBookSeeds: %v", err)
	}
	for _, s := range seeds {
		m := s.ToModel(nil)
		if m.Title == "" || m.Author == "" || len(m.Genres) == 0 {
			t.Fatalf("incomplete seed: %+v", s)
		}
	}
}
