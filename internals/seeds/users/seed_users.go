package users

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func LoadUserSeeds(filePath string) ([]UserSeed, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var out []UserSeed
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return out, nil
}

// SeedUsersFromJSON: user yang email-nya sudah ada dilewati. Password di-hash oleh BeforeSave.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	db = db.WithContext(ctx)
	log.Println("📥 Membaca file user:", filePath)
	seeds, err := LoadUserSeeds(filePath)
	if err != nil {
		return err
	}

	for _, s := range seeds {
		email := strings.ToLower(strings.TrimSpace(s.Email))
		if !constants.IsValidRole(s.Role) {
			log.Printf("⚠️ Role %q untuk '%s' tidak dikenal, dilewati.", s.Role, email)
			continue
		}

		var n int64
		if err := db.Model(&model.UserModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", email)
			continue
		}

		u := model.UserModel{UserName: s.UserName, Email: email, Password: s.Password, Role: s.Role, IsActive: true}
		if s.FullName != "" {
			u.FullName = &s.FullName
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", email, err)
			continue
		}
		log.Printf("✅ Berhasil insert user '%s'", email)
	}
	return nil
}
