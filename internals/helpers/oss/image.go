package helper

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// ErrUnsupportedImage dikembalikan saat file bukan jpg/png/webp.
var ErrUnsupportedImage = errors.New("format gambar tidak didukung")

const ThumbnailSize = 320

/* =======================================================================
   Konfigurasi konversi (ENV-driven)
======================================================================= */

type ImageOptions struct {
	MaxDim  int     // sisi terpanjang setelah resize; 0 = tanpa resize
	Quality float32 // kualitas webp lossy
	Thumb   int     // sisi terpanjang thumbnail; 0 = tanpa thumbnail
}

func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		MaxDim:  envInt("IMAGE_MAX_DIM", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
		Thumb:   ThumbnailSize,
	}
}

// IsImageFilename: cek cepat berdasar ekstensi.
func IsImageFilename(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// decodeImage: sniff MIME dulu, fallback ke ekstensi.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	kind := ""
	switch {
	case strings.Contains(ct, "jpeg"):
		kind = "jpeg"
	case strings.Contains(ct, "png"):
		kind = "png"
	case strings.Contains(ct, "webp"):
		kind = "webp"
	default:
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
			kind = "jpeg"
		case ".png":
			kind = "png"
		case ".webp":
			kind = "webp"
		}
	}

	r := bytes.NewReader(all)
	switch kind {
	case "jpeg":
		return jpeg.Decode(r)
	case "png":
		return png.Decode(r)
	case "webp":
		return webp.Decode(r)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, ct)
}

// downscale: keep aspect, sisi terpanjang <= maxDim. CatmullRom.
func downscale(src image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}
	scale := math.Min(float64(maxDim)/float64(w), float64(maxDim)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeWebP(img image.Image, q float32) ([]byte, error) {
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertedImage: hasil re-encode satu upload.
type ConvertedImage struct {
	Data   []byte
	Width  int
	Height int
	Thumb  []byte // nil kalau Thumb=0
}

// ConvertToWebP: decode → downscale → encode webp (+ thumbnail via imaging.Fit).
func ConvertToWebP(all []byte, filename string, opt ImageOptions) (*ConvertedImage, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = downscale(img, opt.MaxDim)

	data, err := encodeWebP(img, opt.Quality)
	if err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	out := &ConvertedImage{
		Data:   data,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}

	if opt.Thumb > 0 {
		th := imaging.Fit(img, opt.Thumb, opt.Thumb, imaging.Lanczos)
		if out.Thumb, err = encodeWebP(th, opt.Quality); err != nil {
			return nil, fmt.Errorf("encode thumbnail: %w", err)
		}
	}
	return out, nil
}
