package helper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 120

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify: teks bebas → [a-z0-9-], tanpa diakritik, maksimal maxLen rune.
// Input yang habis setelah dibersihkan menjadi "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(strings.TrimSpace(s))) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := reNonAlnum.ReplaceAllString(b.String(), "-")
	out = strings.Trim(reHyphen.ReplaceAllString(out, "-"), "-")
	if len(out) > maxLen { // sudah ASCII di titik ini
		out = strings.Trim(out[:maxLen], "-")
	}
	if out == "" {
		return "item"
	}
	return out
}

// SlugScope menambah WHERE ke query cek slug, mis. exclude id milik record sendiri.
type SlugScope func(*gorm.DB) *gorm.DB

func ExcludeID(column string, id any) SlugScope {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where(fmt.Sprintf("%s <> ?", column), id)
	}
}

// EnsureUniqueSlugCI mencoba base, base-2, base-3, ... (case-insensitive)
// lalu fallback ke suffix acak pendek berbasis waktu.
func EnsureUniqueSlugCI(ctx context.Context, db *gorm.DB, table, column, base string, scope SlugScope, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	candidate := base
	for i := 0; i < 25; i++ {
		q := db.WithContext(ctx).Table(table)
		if scope != nil {
			q = scope(q)
		}
		var count int64
		if err := q.Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(candidate)).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = WithSlugSuffix(base, fmt.Sprintf("-%d", i+2), maxLen)
	}
	return WithSlugSuffix(base, fmt.Sprintf("-%x", time.Now().UnixNano()&0xffff), maxLen), nil
}

// WithSlugSuffix memotong base supaya base+suffix <= maxLen.
func WithSlugSuffix(base, suffix string, maxLen int) string {
	keep := maxLen - len(suffix)
	if keep < 1 {
		return "x" + suffix
	}
	if len(base) > keep {
		base = base[:keep]
	}
	base = strings.Trim(base, "-")
	if base == "" {
		base = "x"
	}
	return base + suffix
}
