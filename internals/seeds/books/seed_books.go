package books

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeri_backend/internals/features/books/dto"
	"galeri_backend/internals/features/books/model"
	helper "galeri_backend/internals/helpers"
)

func LoadBookSeeds(filePath string) ([]dto.CreateBookRequest, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var out []dto.CreateBookRequest
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return out, nil
}

// SeedBooksFromJSON: katalog awal. Buku dengan ISBN yang sudah ada dilewati.
func SeedBooksFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	db = db.WithContext(ctx)
	log.Println("📥 Membaca file buku:", filePath)
	seeds, err := LoadBookSeeds(filePath)
	if err != nil {
		return err
	}

	for _, s := range seeds {
		m := s.ToModel(nil)
		if m.ISBN != nil {
			var n int64
			if err := db.Model(&model.BookModel{}).Where("isbn = ?", *m.ISBN).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				log.Printf("ℹ️ Buku ISBN %s sudah ada, dilewati.", *m.ISBN)
				continue
			}
		}

		m.ID = uuid.New()
		m.Slug, err = helper.EnsureUniqueSlugCI(ctx, db, "books", "slug",
			helper.Slugify(m.Title, helper.DefaultSlugMaxLen), nil, helper.DefaultSlugMaxLen)
		if err != nil {
			return err
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal insert buku '%s': %v", m.Title, err)
			continue
		}
		log.Printf("✅ Berhasil insert buku '%s'", m.Title)
	}
	return nil
}
