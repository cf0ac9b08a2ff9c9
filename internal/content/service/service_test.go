package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foliocms/foliocms/internal/content"
	"github.com/foliocms/foliocms/internal/content/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

// brokenRepo fails every operation, standing in for an unreachable
// document store.
type brokenRepo struct{}

func (brokenRepo) GetSingleton(ctx context.Context, key string, out interface{}) error {
	return errStoreDown
}
func (brokenRepo) MergeSingleton(ctx context.Context, key string, fields map[string]interface{}) error {
	return errStoreDown
}
func (brokenRepo) ListProjects(ctx context.Context) ([]*content.Project, error) {
	return nil, errStoreDown
}
func (brokenRepo) InsertProject(ctx context.Context, p *content.Project) (string, error) {
	return "", errStoreDown
}
func (brokenRepo) PatchProject(ctx context.Context, id string, fields map[string]interface{}) error {
	return errStoreDown
}
func (brokenRepo) DeleteProject(ctx context.Context, id string) error { return errStoreDown }

func str(s string) *string { return &s }

func TestGetHome_NilWhenAbsent(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	assert.Nil(t, svc.GetHome(context.Background()))
}

func TestUpdateThenGetHome(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	ok := svc.UpdateHome(ctx, &content.HomePatch{
		HeroTitle:    str("Hello"),
		HeroSubtitle: str("World"),
	})
	require.True(t, ok)

	h := svc.GetHome(ctx)
	require.NotNil(t, h)
	assert.Equal(t, "Hello", h.HeroTitle)
	assert.Equal(t, "World", h.HeroSubtitle)
	assert.WithinDuration(t, time.Now().UTC(), h.UpdatedAt, 5*time.Second)
}

func TestUpdateHome_PartialMerge(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	require.True(t, svc.UpdateHome(ctx, &content.HomePatch{
		HeroTitle:    str("First"),
		HeroSubtitle: str("Sub"),
	}))
	require.True(t, svc.UpdateHome(ctx, &content.HomePatch{
		HeroTitle: str("Second"),
	}))

	h := svc.GetHome(ctx)
	require.NotNil(t, h)
	assert.Equal(t, "Second", h.HeroTitle)
	assert.Equal(t, "Sub", h.HeroSubtitle)
}

// Failures and absence are indistinguishable at the access-layer boundary:
// both collapse to the same sentinel.
func TestSentinelsOnStoreFailure(t *testing.T) {
	svc := NewService(brokenRepo{})
	ctx := context.Background()

	assert.Nil(t, svc.GetHome(ctx))
	assert.Nil(t, svc.GetAbout(ctx))
	assert.Nil(t, svc.GetWork(ctx))
	assert.Nil(t, svc.GetSocialLinks(ctx))
	assert.Nil(t, svc.GetSiteConfig(ctx))

	assert.False(t, svc.UpdateHome(ctx, &content.HomePatch{HeroTitle: str("x")}))
	assert.False(t, svc.UpdateWork(ctx, &content.WorkPatch{}))

	projects := svc.GetProjects(ctx)
	require.NotNil(t, projects)
	assert.Empty(t, projects)
	assert.Empty(t, svc.GetFeaturedProjects(ctx))

	assert.Equal(t, "", svc.AddProject(ctx, &content.Project{Name: "x"}))
	assert.False(t, svc.UpdateProject(ctx, "id", &content.ProjectPatch{}))
	assert.False(t, svc.DeleteProject(ctx, "id"))
}

func TestSocialLinks_ReadBackAfterWrite(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	require.True(t, svc.UpdateSocialLinks(ctx, &content.SocialPatch{
		GitHub:   str("https://github.com/x"),
		LinkedIn: str("https://linkedin.com/in/x"),
	}))

	s := svc.GetSocialLinks(ctx)
	require.NotNil(t, s)
	assert.Equal(t, "https://github.com/x", s.GitHub)
	assert.Equal(t, "https://linkedin.com/in/x", s.LinkedIn)
}

func TestProjects_OrderAndFilters(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	type seed struct {
		name, cat string
		order     int
		featured  bool
	}
	for _, sd := range []seed{
		{"beta", content.CategoryOpenSource, 1, true},
		{"alpha", content.CategoryFreelance, 0, false},
		{"gamma", content.CategoryOpenSource, 2, false},
	} {
		id := svc.AddProject(ctx, &content.Project{
			Name:     sd.name,
			Category: sd.cat,
			Order:    sd.order,
			Featured: sd.featured,
		})
		require.NotEmpty(t, id)
	}

	all := svc.GetProjects(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "beta", all[1].Name)
	assert.Equal(t, "gamma", all[2].Name)

	oss := svc.GetProjectsByCategory(ctx, content.CategoryOpenSource)
	require.Len(t, oss, 2)
	assert.Equal(t, "beta", oss[0].Name)

	// featured is a flag, not a category
	feat := svc.GetFeaturedProjects(ctx)
	require.Len(t, feat, 1)
	assert.Equal(t, "beta", feat[0].Name)
	assert.Empty(t, svc.GetProjectsByCategory(ctx, "unknown"))
}

func TestUpdateProject_StampsTimestamp(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	id := svc.AddProject(ctx, &content.Project{Name: "p", Category: content.CategoryFreelance})
	require.NotEmpty(t, id)

	require.True(t, svc.UpdateProject(ctx, id, &content.ProjectPatch{Name: str("p2")}))

	all := svc.GetProjects(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "p2", all[0].Name)
	assert.WithinDuration(t, time.Now().UTC(), all[0].UpdatedAt, 5*time.Second)
}

func TestDeleteProject_UnknownID(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	assert.False(t, svc.DeleteProject(context.Background(), "missing"))
}
