package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Upload(ctx context.Context, key string, r io.Reader, size int64, ct string) (string, error) {
	return "", errors.New("storage down")
}
func (failingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return nil, errors.New("storage down")
}
func (failingStore) Remove(ctx context.Context, key string) error { return errors.New("storage down") }
func (failingStore) PublicURL(key string) string                  { return "" }

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestAdd_GeneratedName(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	svc.now = fixedClock(1700000000000)

	url := svc.Add(context.Background(), "sunset.jpg", strings.NewReader("x"), 1, "image/jpeg")
	require.NotEmpty(t, url)
	assert.Equal(t, "memory://bucket/gallery/1700000000000-sunset.jpg", url)

	keys, err := store.List(context.Background(), Prefix)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	// timestamp prefix keeps two uploads of the same filename distinct
	assert.Regexp(t, regexp.MustCompile(`^gallery/\d+-sunset\.jpg$`), keys[0])
}

func TestAdd_SameFilenameTwice(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)

	ms := int64(1700000000000)
	svc.now = func() time.Time { ms++; return time.UnixMilli(ms) }

	first := svc.Add(context.Background(), "photo.png", strings.NewReader("a"), 1, "image/png")
	second := svc.Add(context.Background(), "photo.png", strings.NewReader("b"), 1, "image/png")
	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.NotEqual(t, first, second)

	keys, err := store.List(context.Background(), Prefix)
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestFetch_PositionalAlts(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)

	for i, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		svc.now = fixedClock(int64(1700000000000 + i))
		require.NotEmpty(t, svc.Add(context.Background(), name, strings.NewReader("x"), 1, "image/jpeg"))
	}

	imgs := svc.Fetch(context.Background())
	require.Len(t, imgs, 3)
	for i, img := range imgs {
		assert.Equalf(t, fmt.Sprintf("Gallery Image %d", i+1), img.Alt, "image %d", i)
		assert.False(t, strings.HasPrefix(img.Name, Prefix), "name must not carry the blob prefix")
		assert.NotEmpty(t, img.Src)
	}

	// deleting the first image renumbers the rest on the next listing
	require.True(t, svc.Delete(context.Background(), imgs[0].Name))
	imgs = svc.Fetch(context.Background())
	require.Len(t, imgs, 2)
	assert.Equal(t, "Gallery Image 1", imgs[0].Alt)
}

func TestFetch_EmptyOnListFailure(t *testing.T) {
	svc := NewService(failingStore{})
	imgs := svc.Fetch(context.Background())
	require.NotNil(t, imgs)
	assert.Empty(t, imgs)
}

func TestUploadImage_SentinelOnFailure(t *testing.T) {
	svc := NewService(failingStore{})
	url := svc.UploadImage(context.Background(), "portfolio/profile-1", strings.NewReader("x"), 1, "image/png")
	assert.Equal(t, "", url)
}

func TestDelete_MissingObject(t *testing.T) {
	svc := NewService(NewMemoryStore())
	assert.False(t, svc.Delete(context.Background(), "nope.jpg"))
}

func TestImagePaths(t *testing.T) {
	svc := NewService(NewMemoryStore())
	svc.now = fixedClock(1700000000000)

	assert.Equal(t, "portfolio/profile-1700000000000", svc.ProfileImagePath())
	assert.Equal(t, "portfolio/projects/abc-1700000000000", svc.ProjectImagePath("abc"))
}
