package storage

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

const (
	assetsDir     = "assets"
	thumbnailsDir = "thumbnails"
	thumbnailSize = 512
)

// LocalStorage writes uploads under {root}/assets and serves them via
// the /file/ route. Image uploads additionally get a bounded-size
// thumbnail under {root}/thumbnails; thumbnail failures never fail the
// upload itself.
type LocalStorage struct {
	root string

	// Thumbnail generation decodes the full image in memory, so cap
	// how many run at once.
	thumbnailSem *semaphore.Weighted
}

// NewLocalStorage creates local storage rooted at the data directory.
func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{
		root:         root,
		thumbnailSem: semaphore.NewWeighted(3),
	}
}

// Upload stores the blob under a random name that keeps the original
// extension, sniffs the content type and reports the serving URL path.
func (s *LocalStorage) Upload(ctx context.Context, filename string, blob []byte) (*UploadResult, error) {
	if len(blob) == 0 {
		return nil, errors.New("empty file")
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	dir := filepath.Join(s.root, assetsDir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "failed to create assets directory")
	}
	if err := os.WriteFile(filepath.Join(dir, name), blob, 0644); err != nil {
		return nil, errors.Wrap(err, "failed to write file")
	}

	mimeType := http.DetectContentType(blob)
	resourceType := resourceTypeOf(mimeType)

	if resourceType == "image" {
		if err := s.generateThumbnail(ctx, name, blob); err != nil {
			slog.Warn("failed to generate thumbnail", "file", name, "error", err)
		}
	}

	return &UploadResult{
		Type: resourceType,
		URL:  "/file/" + name,
	}, nil
}

// Open returns the stored file's path if it exists. The name must be a
// bare filename; traversal attempts are rejected.
func (s *LocalStorage) Open(name string) (string, error) {
	if !filepath.IsLocal(name) || strings.ContainsAny(name, "/\\") {
		return "", errors.Errorf("invalid file name: %s", name)
	}
	path := filepath.Join(s.root, assetsDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrap(err, "file not found")
	}
	return path, nil
}

// OpenThumbnail returns the path of the thumbnail generated for the
// named upload, if one exists.
func (s *LocalStorage) OpenThumbnail(name string) (string, error) {
	if !filepath.IsLocal(name) || strings.ContainsAny(name, "/\\") {
		return "", errors.Errorf("invalid file name: %s", name)
	}
	thumbName := strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	path := filepath.Join(s.root, thumbnailsDir, thumbName)
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrap(err, "thumbnail not found")
	}
	return path, nil
}

func (s *LocalStorage) generateThumbnail(ctx context.Context, name string, blob []byte) error {
	if err := s.thumbnailSem.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "failed to acquire thumbnail slot")
	}
	defer s.thumbnailSem.Release(1)

	img, err := imaging.Decode(bytes.NewReader(blob))
	if err != nil {
		return errors.Wrap(err, "failed to decode image")
	}

	dir := filepath.Join(s.root, thumbnailsDir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return errors.Wrap(err, "failed to create thumbnails directory")
	}

	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	thumbName := strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	if err := imaging.Save(thumb, filepath.Join(dir, thumbName)); err != nil {
		return errors.Wrap(err, "failed to save thumbnail")
	}

	return nil
}

func resourceTypeOf(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	default:
		return "raw"
	}
}

var _ Uploader = (*LocalStorage)(nil)
