package constants

import (
	"path/filepath"
	"strings"
)

type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaVideo    MediaKind = "video"
	MediaAudio    MediaKind = "audio"
	MediaDocument MediaKind = "document"
	MediaOther    MediaKind = "other"
)

func DetectFileTypeFromExt(filename string) MediaKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return MediaImage
	case ".mp4", ".mov", ".webm":
		return MediaVideo
	case ".mp3", ".wav", ".ogg":
		return MediaAudio
	case ".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx":
		return MediaDocument
	default:
		return MediaOther
	}
}
