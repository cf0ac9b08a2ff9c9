package gallery

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/foliocms/foliocms/pkg/logger"
	"github.com/foliocms/foliocms/pkg/metrics"
)

// Prefix under which gallery uploads live in the blob store.
const Prefix = "gallery/"

// BlobStore is the slice of the blob storage the gallery needs. Implemented
// by storage.MinIOStorage and by the in-memory store used in tests.
type BlobStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

// Image is a gallery entry derived from a blob listing. The alt label is
// positional and synthesized at list time, never persisted; re-listing
// after insertions or deletions renumbers the images.
type Image struct {
	Src  string `json:"src"`
	Alt  string `json:"alt"`
	Name string `json:"name"`
}

// Service exposes the image operations of the admin surface. Like the
// content access layer it collapses every failure to a sentinel.
type Service struct {
	store BlobStore
	// now is swappable for deterministic names in tests
	now func() time.Time
}

func NewService(store BlobStore) *Service {
	return &Service{store: store, now: time.Now}
}

// UploadImage uploads binary content to an explicit path (profile photos,
// project thumbnails) and returns the public retrieval URL, or "" on
// failure.
func (s *Service) UploadImage(ctx context.Context, path string, r io.Reader, size int64, contentType string) string {
	url, err := s.store.Upload(ctx, path, r, size, contentType)
	if err != nil {
		logger.Errorf("error uploading image to %s: %v", path, err)
		metrics.ImageUploads.WithLabelValues("error").Inc()
		return ""
	}
	metrics.ImageUploads.WithLabelValues("ok").Inc()
	return url
}

// Add uploads a gallery image under a generated collision-avoiding name
// (upload timestamp prefixed to the original filename) and returns its URL.
func (s *Service) Add(ctx context.Context, filename string, r io.Reader, size int64, contentType string) string {
	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), filename)
	return s.UploadImage(ctx, Prefix+name, r, size, contentType)
}

// Fetch lists all gallery blobs and resolves each to an Image with a
// positional alt label. Empty slice on failure.
func (s *Service) Fetch(ctx context.Context) []Image {
	keys, err := s.store.List(ctx, Prefix)
	if err != nil {
		logger.Errorf("error fetching gallery images: %v", err)
		return []Image{}
	}
	out := make([]Image, 0, len(keys))
	for i, key := range keys {
		out = append(out, Image{
			Src:  s.store.PublicURL(key),
			Alt:  fmt.Sprintf("Gallery Image %d", i+1),
			Name: strings.TrimPrefix(key, Prefix),
		})
	}
	return out
}

// Delete removes a gallery image by its blob name.
func (s *Service) Delete(ctx context.Context, name string) bool {
	if err := s.store.Remove(ctx, Prefix+name); err != nil {
		logger.Errorf("error deleting gallery image %s: %v", name, err)
		return false
	}
	return true
}

// ProfileImagePath builds the blob path for a profile photo upload.
func (s *Service) ProfileImagePath() string {
	return fmt.Sprintf("portfolio/profile-%d", s.now().UnixMilli())
}

// ProjectImagePath builds the blob path for a project thumbnail upload.
func (s *Service) ProjectImagePath(projectID string) string {
	return fmt.Sprintf("portfolio/projects/%s-%d", projectID, s.now().UnixMilli())
}
