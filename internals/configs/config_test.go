package configs

import (
	"reflect"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("GALERI_SET", "value")

	if got := GetEnv("GALERI_SET", "fallback"); got != "value" {
		t.Errorf("GetEnv(set) = %q, want %q", got, "value")
	}
	if got := GetEnv("GALERI_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("GetEnv(unset) = %q, want %q", got, "fallback")
	}
	if got := GetEnv("GALERI_UNSET_KEY"); got != "" {
		t.Errorf("GetEnv(unset, no default) = %q, want empty", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("GALERI_INT", "42")
	t.Setenv("GALERI_BAD_INT", "abc")

	tests := []struct {
		key  string
		want int
	}{
		{"GALERI_INT", 42},
		{"GALERI_BAD_INT", 7},
		{"GALERI_MISSING_INT", 7},
	}
	for _, tt := range tests {
		if got := GetEnvInt(tt.key, 7); got != tt.want {
			t.Errorf("GetEnvInt(%s) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("GALERI_BOOL", "true")
	if !GetEnvBool("GALERI_BOOL", false) {
		t.Error("GetEnvBool(true) = false")
	}
	if GetEnvBool("GALERI_MISSING_BOOL", false) {
		t.Error("GetEnvBool(missing) should fall back to false")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" http://a.test, ,http://b.test,,")
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitList = %v, want %v", got, want)
	}
}
