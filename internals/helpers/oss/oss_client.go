// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/gofiber/fiber/v2"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

// batas ukuran upload (guard ringan, controller juga cek)
var MaxUploadSize = int64(envInt("MAX_UPLOAD_MB", 10)) * 1024 * 1024

const TrashPrefix = "spam"

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "galeri"
	PublicBase string // optional CDN base
	Image      ImageOptions
	now        func() time.Time
}

var _ BlobService = (*OSSService)(nil)

func normalizeEndpoint(ep string) string {
	ep = strings.TrimSpace(ep)
	if ep == "" || strings.HasPrefix(ep, "http://") || strings.HasPrefix(ep, "https://") {
		return ep
	}
	return "https://" + ep
}

func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := normalizeEndpoint(getEnv("ALI_OSS_ENDPOINT"))
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == http.StatusForbidden {
			log.Printf("[OSS] warn: skip location check (bucket=%s): %s", bucketName, se.Code)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(getEnv("ALI_OSS_PREFIX"), "/"),
		PublicBase: strings.TrimRight(getEnv("ALI_OSS_PUBLIC_BASE"), "/"),
		Image:      DefaultImageOptions(),
	}, nil
}

func (s *OSSService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

/* =======================================================================
   Upload
======================================================================= */

// UploadImage: re-encode ke webp, simpan original + thumbnail (dir/thumbs/...).
func (s *OSSService) UploadImage(ctx context.Context, fh *multipart.FileHeader, dir string) (*UploadResult, error) {
	all, err := readFormFile(fh)
	if err != nil {
		return nil, err
	}

	conv, err := ConvertToWebP(all, fh.Filename, s.Image)
	if err != nil {
		if isUnsupported(err) {
			return nil, fiber.NewError(fiber.StatusUnsupportedMediaType, "Format gambar tidak didukung (pakai jpg/png/webp)")
		}
		return nil, err
	}

	key := s.buildObjectKey(dir, webpName(fh.Filename))
	if err := s.putObject(ctx, key, bytes.NewReader(conv.Data), "image/webp"); err != nil {
		return nil, err
	}

	res := &UploadResult{
		Key:         key,
		URL:         s.PublicURL(key),
		ContentType: "image/webp",
		Size:        int64(len(conv.Data)),
		Width:       conv.Width,
		Height:      conv.Height,
	}
	if len(conv.Thumb) > 0 {
		thumbKey := thumbKeyFor(key)
		if err := s.putObject(ctx, thumbKey, bytes.NewReader(conv.Thumb), "image/webp"); err != nil {
			log.Printf("[OSS] thumbnail gagal key=%s: %v", thumbKey, err)
		} else {
			res.ThumbnailURL = s.PublicURL(thumbKey)
		}
	}
	return res, nil
}

// UploadRaw: upload apa adanya (video, pdf, audio, ...).
func (s *OSSService) UploadRaw(ctx context.Context, fh *multipart.FileHeader, dir string) (*UploadResult, error) {
	all, err := readFormFile(fh)
	if err != nil {
		return nil, err
	}
	ct := detectContentType(all, fh.Filename)
	key := s.buildObjectKey(dir, fh.Filename)
	if err := s.putObject(ctx, key, bytes.NewReader(all), ct); err != nil {
		return nil, err
	}
	return &UploadResult{
		Key:         key,
		URL:         s.PublicURL(key),
		ContentType: ct,
		Size:        int64(len(all)),
	}, nil
}

func (s *OSSService) putObject(ctx context.Context, key string, r io.Reader, contentType string) error {
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
		oss.WithContext(ctx),
	}
	if err := s.Bucket.PutObject(key, r, opts...); err != nil {
		return fmt.Errorf("oss put %q: %w", key, err)
	}
	return nil
}

/* =======================================================================
   Delete / trash
======================================================================= */

// MoveToTrash: copy objek aktif -> spam/YYYY/MM/DD/HHMMSS__basename, lalu hapus sumber.
// Thumbnail ikut dipindah (best-effort). Return URL tujuan.
func (s *OSSService) MoveToTrash(ctx context.Context, publicURL string) (string, error) {
	srcKey, err := s.ExtractKey(publicURL)
	if err != nil {
		return "", err
	}
	dstKey := TrashKey(srcKey, s.clock())

	if _, err := moveObject(s.Bucket, srcKey, dstKey, oss.WithContext(ctx)); err != nil {
		if isNotFound(err) {
			log.Printf("[OSS] move-to-trash: %s sudah tidak ada", srcKey)
			return "", nil
		}
		return "", fmt.Errorf("copy %q -> %q: %w", srcKey, dstKey, err)
	}

	// thumbnail boleh tidak ada
	thumb := thumbKeyFor(srcKey)
	_, _ = moveObject(s.Bucket, thumb, TrashKey(thumb, s.clock()), oss.WithContext(ctx))
	return s.PublicURL(dstKey), nil
}

// objectMover: subset *oss.Bucket yang dipakai moveObject.
type objectMover interface {
	CopyObject(srcObjectKey, destObjectKey string, options ...oss.Option) (oss.CopyObjectResult, error)
	DeleteObject(objectKey string, options ...oss.Option) error
}

// moveObject: copy lalu hapus sumber. Error copy dikembalikan.
// Gagal hapus hanya di-log; removed=false berarti objek aktif masih tertinggal.
func moveObject(b objectMover, srcKey, dstKey string, opts ...oss.Option) (removed bool, err error) {
	if _, err := b.CopyObject(srcKey, dstKey, opts...); err != nil {
		return false, err
	}
	if err := b.DeleteObject(srcKey, opts...); err != nil {
		log.Printf("[WARN] OSS hapus %s setelah copy ke %s gagal: %v", srcKey, dstKey, err)
		return false, nil
	}
	return true, nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

/* =======================================================================
   URL <-> key
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return ""
	}
	if s.PublicBase != "" {
		return s.PublicBase + "/" + key
	}
	if s.Endpoint == "" || s.BucketName == "" {
		return ""
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func (s *OSSService) ExtractKey(publicURL string) (string, error) {
	return ExtractKeyFromPublicURL(publicURL, s.PublicBase)
}

// ExtractKeyFromPublicURL: dukung CDN base, virtual-host, dan query string.
func ExtractKeyFromPublicURL(publicURL, publicBase string) (string, error) {
	publicURL = strings.TrimSpace(publicURL)
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if i := strings.IndexAny(publicURL, "?#"); i >= 0 {
		publicURL = publicURL[:i]
	}
	if publicBase != "" {
		base := strings.TrimRight(publicBase, "/") + "/"
		if strings.HasPrefix(publicURL, base) {
			return strings.TrimPrefix(publicURL, base), nil
		}
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 && i+1 < len(u) {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

/* =======================================================================
   Misc utils
======================================================================= */

// TrashKey: spam/YYYY/MM/DD/HHMMSS__basename
func TrashKey(srcKey string, now time.Time) string {
	return path.Join(
		TrashPrefix,
		now.Format("2006"), now.Format("01"), now.Format("02"),
		fmt.Sprintf("%s__%s", now.Format("150405"), path.Base(srcKey)),
	)
}

func thumbKeyFor(key string) string {
	dir, base := path.Split(key)
	return dir + "thumbs/" + base
}

func (s *OSSService) buildObjectKey(dir, filename string) string {
	return BuildObjectKey(s.Prefix, dir, filename, s.clock(), randHex(3))
}

// BuildObjectKey: prefix/dir/YYYY/MM/slug_ts_rand.ext
func BuildObjectKey(prefix, dir, filename string, now time.Time, suffix string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := safePart(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "file"
	}
	name := fmt.Sprintf("%s_%s_%s%s", base, now.Format("20060102_150405"), suffix, ext)
	return joinParts(prefix, dir, now.Format("2006"), now.Format("01"), name)
}

func webpName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"
}

func safePart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r == ' ' || r == '_' || r == '.':
			return '-'
		}
		return -1
	}, s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

func joinParts(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh == nil {
		return nil, fmt.Errorf("nil file header")
	}
	if fh.Size > MaxUploadSize {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("Ukuran file melebihi batas (%d MB)", MaxUploadSize/1024/1024))
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()
	all, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File kosong")
	}
	return all, nil
}

func detectContentType(all []byte, filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}

func isNotFound(err error) bool {
	if se, ok := err.(oss.ServiceError); ok {
		return se.StatusCode == http.StatusNotFound || se.Code == "NoSuchKey"
	}
	return false
}
