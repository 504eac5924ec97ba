package constants

import "testing"

func TestDetectFileTypeFromExt(t *testing.T) {
	tests := map[string]MediaKind{
		"poster.JPG":     MediaImage,
		"katalog.pdf":    MediaDocument,
		"teaser.mp4":     MediaVideo,
		"rekaman.mp3":    MediaAudio,
		"arsip.tar.gz":   MediaOther,
		"tanpa-ekstensi": MediaOther,
	}
	for name, want := range tests {
		if got := DetectFileTypeFromExt(name); got != want {
			t.Errorf("DetectFileTypeFromExt(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = false", r)
		}
	}
	if IsValidRole("owner") {
		t.Error("IsValidRole(owner) = true")
	}
}
