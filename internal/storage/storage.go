// Package storage holds the pluggable asset backend for uploaded images.
// One strategy is picked at process start: Cloudinary when complete
// credentials are configured, local disk otherwise.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/shafistore/internal/config"
)

// MaxFileSize is the upload size cap in bytes.
const MaxFileSize = 5 << 20

// opTimeout bounds a single backend call (remote request or disk write).
const opTimeout = 30 * time.Second

// Buckets are the category namespaces uploads may target.
var Buckets = []string{"hero", "dates", "honey", "oud", "spices", "general"}

var allowedFormats = []string{"jpg", "jpeg", "png", "gif", "webp", "svg"}

var (
	// ErrNotFound reports a delete target that does not exist.
	ErrNotFound = errors.New("image not found")
	// ErrFileTooLarge reports an upload over MaxFileSize.
	ErrFileTooLarge = fmt.Errorf("file too large, maximum size is %dMB", MaxFileSize>>20)
	// ErrBadType reports a non-image upload.
	ErrBadType = errors.New("only image files are allowed (jpg, jpeg, png, gif, webp, svg)")
	// ErrBadBucket reports an unknown category bucket.
	ErrBadBucket = errors.New("unknown upload category")
)

// Upload is the stable result of a stored file.
type Upload struct {
	// Path is the reference to persist as an imagePath field: a Cloudinary
	// URL or a /uploads/... relative path.
	Path     string
	Filename string
	Remote   bool
}

// Status describes the active strategy for the inspection endpoint. It never
// carries secret values, only whether they are configured.
type Status struct {
	CloudinaryConfigured bool   `json:"cloudinaryConfigured"`
	CloudName            string `json:"cloudName"`
	StorageType          string `json:"storageType"`
}

// AssetStore writes and removes uploaded images for a category bucket. Both
// mutating calls are bounded by opTimeout on top of the caller's context; a
// timeout surfaces as an ordinary upload failure and is not retried.
type AssetStore interface {
	Put(ctx context.Context, category, filename string, src io.Reader) (Upload, error)
	Delete(ctx context.Context, category, filename string) error
	Describe() Status
}

// New selects the storage strategy from configuration.
func New(cfg *config.Config) (AssetStore, error) {
	if cfg.CloudinaryConfigured() {
		return NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	}
	return NewLocalStore(cfg.UploadDir)
}

// ValidBucket reports whether category names a known bucket.
func ValidBucket(category string) bool {
	for _, b := range Buckets {
		if b == category {
			return true
		}
	}
	return false
}

// CheckFile rejects oversized or non-image uploads before any backend write.
// Both the filename extension and the declared MIME type must look like an
// allowed image format.
func CheckFile(header *multipart.FileHeader) error {
	if header.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if !allowedFormat(ext) {
		return ErrBadType
	}
	mime := strings.ToLower(header.Header.Get("Content-Type"))
	if !allowedMime(mime) {
		return ErrBadType
	}
	return nil
}

func allowedFormat(ext string) bool {
	for _, f := range allowedFormats {
		if f == ext {
			return true
		}
	}
	return false
}

func allowedMime(mime string) bool {
	// Mirrors the extension allowlist: image/jpeg, image/png, image/svg+xml
	// and friends all contain one of the format tokens.
	for _, f := range allowedFormats {
		if strings.Contains(mime, f) {
			return true
		}
	}
	return false
}
