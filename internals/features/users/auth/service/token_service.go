package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"galeri_backend/internals/configs"
	userModel "galeri_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

var ErrInvalidRefreshToken = errors.New("refresh token invalid")

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
}

func getJWTSecret() (string, error) {
	if s := strings.TrimSpace(configs.JWTSecret); s != "" {
		return s, nil
	}
	return "", errors.New("JWT_SECRET belum diset")
}

// refresh secret jatuh ke JWT_SECRET kalau belum diset
func getRefreshSecret() (string, error) {
	if s := strings.TrimSpace(configs.JWTRefreshSecret); s != "" {
		return s, nil
	}
	return getJWTSecret()
}

func BuildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func BuildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func IssueTokens(user userModel.UserModel, accessSecret, refreshSecret string, now time.Time) (TokenPair, error) {
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(user, now)).SignedString([]byte(accessSecret))
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, BuildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, IssuedAt: now}, nil
}

// ParseRefreshToken memverifikasi signature + exp + typ lalu mengembalikan user id.
func ParseRefreshToken(raw, secret string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidRefreshToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	return id, nil
}

func ComputeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// BlacklistTTL: sisa umur token + 1 menit; fallback 2 menit kalau exp tidak terbaca.
func BlacklistTTL(accessToken, secret string, now time.Time) time.Duration {
	const fallback = 2 * time.Minute
	if accessToken == "" || secret == "" {
		return fallback
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err != nil {
		return fallback
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fallback
	}
	until := time.Unix(int64(exp), 0).Sub(now)
	if until <= 0 {
		return time.Minute
	}
	return until + time.Minute
}
