// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const DefaultTimezone = "Asia/Jakarta"

var (
	mu    sync.RWMutex
	clock = time.Now

	locOnce sync.Once
	loc     *time.Location
)

// Now: jam aplikasi. Controller & hook pakai ini, bukan time.Now langsung.
func Now() time.Time {
	mu.RLock()
	fn := clock
	mu.RUnlock()
	return fn()
}

// SetClock mengganti jam (dipakai test). Return fungsi untuk restore.
func SetClock(fn func() time.Time) (restore func()) {
	mu.Lock()
	prev := clock
	if fn == nil {
		fn = time.Now
	}
	clock = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		clock = prev
		mu.Unlock()
	}
}

// Fixed: jam yang selalu mengembalikan t.
func Fixed(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Location: APP_TIMEZONE → Asia/Jakarta → UTC
func Location() *time.Location {
	locOnce.Do(func() {
		name := strings.TrimSpace(os.Getenv("APP_TIMEZONE"))
		if name == "" {
			name = DefaultTimezone
		}
		if l, err := time.LoadLocation(name); err == nil {
			loc = l
			return
		}
		loc = time.UTC
	})
	return loc
}

// ToLocal: konversi waktu dari DB (UTC) ke zona aplikasi. Zero dibiarkan.
func ToLocal(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Location())
}

func ToLocalPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := ToLocal(*t)
	return &v
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate menerima RFC3339, "YYYY-MM-DD", "YYYY-MM-DD HH:mm:ss" atau "YYYY-MM-DDTHH:mm[:ss]".
// Input tanpa offset dianggap zona aplikasi.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts[1:] {
		if t, err := time.ParseInLocation(layout, raw, Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("format tanggal tidak valid: %q", raw)
}
