package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeri_backend/internals/configs"
	authRepo "galeri_backend/internals/features/users/auth/repository"
	helper "galeri_backend/internals/helpers"
)

var errUserInactive = errors.New("user inactive")

type Options struct {
	Secret string
	// return true kalau token sudah di-logout
	BlacklistChecker func(ctx context.Context, rawToken string) (bool, error)
	// nil = tidak cek status user
	UserChecker func(ctx context.Context, userID uuid.UUID) error
	// Optional: request tanpa token tetap lanjut sebagai anonim
	Optional bool
	Skew     time.Duration
}

// AuthMiddleware: JWT wajib, blacklist + status user dicek ke DB.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return New(dbOptions(db, false))
}

// OptionalAuthMiddleware: token dipakai kalau ada, tanpa token tetap lanjut.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return New(dbOptions(db, true))
}

func dbOptions(db *gorm.DB, optional bool) Options {
	return Options{
		Secret: configs.JWTSecret,
		BlacklistChecker: func(ctx context.Context, raw string) (bool, error) {
			return authRepo.IsTokenBlacklisted(ctx, db, raw)
		},
		UserChecker: func(ctx context.Context, id uuid.UUID) error {
			return ensureUserActive(ctx, db, id)
		},
		Optional: optional,
		Skew:     30 * time.Second,
	}
}

func New(o Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// mode optional: token basi/rusak diperlakukan sebagai anonim, error infra tetap 500
		deny := func(status int, msg string) error {
			if o.Optional {
				return c.Next()
			}
			return fiber.NewError(status, msg)
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return deny(fiber.StatusUnauthorized, err.Error())
		}

		secret := strings.TrimSpace(o.Secret)
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		ctx := c.UserContext()
		if o.BlacklistChecker != nil {
			black, err := o.BlacklistChecker(ctx, tokenString)
			if err != nil {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			if black {
				return deny(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			}
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			return deny(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if typ, ok := claims["typ"].(string); ok && typ != "access" {
			return deny(fiber.StatusUnauthorized, "Unauthorized - Not an access token")
		}
		if err := validateTokenExpiry(claims, time.Now(), o.Skew); err != nil {
			return deny(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return deny(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		if o.UserChecker != nil {
			if err := o.UserChecker(ctx, userID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return deny(fiber.StatusUnauthorized, "Unauthorized - User not found")
				}
				if errors.Is(err, errUserInactive) {
					return deny(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
				}
				log.Println("[ERROR] ensureUserActive:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
		}

		c.Locals(helper.LocUserID, userID.String())
		helper.SetRawAccessToken(c, tokenString)
		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}
