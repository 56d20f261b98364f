package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes uploads to per-category directories on local disk. It is
// the fallback strategy when Cloudinary credentials are absent; files are
// served back under the /uploads static prefix.
type LocalStore struct {
	root string
}

// NewLocalStore prepares the upload directory tree. Directory creation is
// idempotent, so repeated startups are safe.
func NewLocalStore(root string) (*LocalStore, error) {
	for _, bucket := range Buckets {
		if err := os.MkdirAll(filepath.Join(root, bucket), 0o755); err != nil {
			return nil, err
		}
	}
	return &LocalStore{root: root}, nil
}

// Put writes the file under <root>/<category>/ with a timestamp-random name
// so concurrent uploads never collide. The original extension is kept.
func (s *LocalStore) Put(ctx context.Context, category, filename string, src io.Reader) (Upload, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Upload{}, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return Upload{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, readerWithContext{ctx: ctx, r: src}); err != nil {
		os.Remove(dst.Name())
		return Upload{}, err
	}

	return Upload{Path: "/uploads/" + category + "/" + name, Filename: name}, nil
}

// Delete removes the file if it exists.
func (s *LocalStore) Delete(ctx context.Context, category, filename string) error {
	// filename comes from a URL segment; keep it a bare name so the path
	// cannot escape the category directory.
	if filepath.Base(filename) != filename {
		return ErrNotFound
	}

	path := filepath.Join(s.root, category, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ErrNotFound
	}
	return os.Remove(path)
}

// Describe reports the local strategy.
func (s *LocalStore) Describe() Status {
	return Status{StorageType: "Local Storage"}
}

// readerWithContext aborts a copy once the deadline passes, bounding slow
// multipart bodies the same way the remote strategy is bounded.
type readerWithContext struct {
	ctx context.Context
	r   io.Reader
}

func (r readerWithContext) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
