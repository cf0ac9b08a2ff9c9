package aggregate

import (
	"context"
	"errors"
	"testing"

	"github.com/foliocms/foliocms/internal/content"
	"github.com/foliocms/foliocms/internal/content/repository"
	"github.com/foliocms/foliocms/internal/content/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("store down")

// downRepo fails every operation.
type downRepo struct{}

func (downRepo) GetSingleton(ctx context.Context, key string, out interface{}) error {
	return errDown
}
func (downRepo) MergeSingleton(ctx context.Context, key string, fields map[string]interface{}) error {
	return errDown
}
func (downRepo) ListProjects(ctx context.Context) ([]*content.Project, error) {
	return nil, errDown
}
func (downRepo) InsertProject(ctx context.Context, p *content.Project) (string, error) {
	return "", errDown
}
func (downRepo) PatchProject(ctx context.Context, id string, fields map[string]interface{}) error {
	return errDown
}
func (downRepo) DeleteProject(ctx context.Context, id string) error { return errDown }

// panicRepo panics on the project listing, modelling a driver-level fault
// rather than a plain error return.
type panicRepo struct{ downRepo }

func (panicRepo) ListProjects(ctx context.Context) ([]*content.Project, error) {
	panic("driver fault")
}

func str(s string) *string { return &s }

func seededStore(t *testing.T) *Store {
	t.Helper()
	svc := service.NewService(repository.NewMemoryRepo())
	ctx := context.Background()
	require.True(t, svc.UpdateHome(ctx, &content.HomePatch{
		HeroTitle:    str("Hello"),
		HeroSubtitle: str("Sub"),
	}))
	require.True(t, svc.UpdateSocialLinks(ctx, &content.SocialPatch{
		GitHub: str("https://github.com/x"),
	}))
	require.NotEmpty(t, svc.AddProject(ctx, &content.Project{
		Name:     "alpha",
		Category: content.CategoryFreelance,
		Order:    0,
	}))
	st := NewStore(svc)
	st.FetchAll(ctx)
	return st
}

func TestFetchAll_PopulatesSnapshot(t *testing.T) {
	st := seededStore(t)

	snap := st.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	require.NotNil(t, snap.Home)
	assert.Equal(t, "Hello", snap.Home.HeroTitle)
	require.NotNil(t, snap.Social)
	assert.Equal(t, "https://github.com/x", snap.Social.GitHub)
	assert.Nil(t, snap.About)
	require.Len(t, snap.Projects, 1)
	assert.Equal(t, "alpha", snap.Projects[0].Name)
}

func TestFetchAll_EmptyStore(t *testing.T) {
	st := NewStore(service.NewService(repository.NewMemoryRepo()))
	st.FetchAll(context.Background())

	snap := st.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	assert.Nil(t, snap.Home)
	assert.NotNil(t, snap.Projects)
	assert.Empty(t, snap.Projects)
}

func TestFetchAll_PanicSetsErrorAndKeepsState(t *testing.T) {
	st := seededStore(t)

	// subsequent fetch hits a faulting backend
	st.svc = service.NewService(panicRepo{})
	st.FetchAll(context.Background())

	snap := st.Snapshot()
	assert.Equal(t, "Failed to fetch portfolio data", snap.Error)
	// previously fetched data survives the failed refresh
	require.NotNil(t, snap.Home)
	assert.Equal(t, "Hello", snap.Home.HeroTitle)
	require.Len(t, snap.Projects, 1)
}

func TestUpdateHome_OptimisticMerge(t *testing.T) {
	st := seededStore(t)

	require.True(t, st.UpdateHome(context.Background(), &content.HomePatch{
		HeroTitle: str("Changed"),
	}))

	snap := st.Snapshot()
	require.NotNil(t, snap.Home)
	assert.Equal(t, "Changed", snap.Home.HeroTitle)
	// fields outside the patch keep their fetched values
	assert.Equal(t, "Sub", snap.Home.HeroSubtitle)
}

func TestUpdateHome_FailureLeavesStateUntouched(t *testing.T) {
	st := seededStore(t)
	before := st.Snapshot()

	st.svc = service.NewService(downRepo{})
	ok := st.UpdateHome(context.Background(), &content.HomePatch{HeroTitle: str("nope")})

	assert.False(t, ok)
	after := st.Snapshot()
	require.NotNil(t, after.Home)
	assert.Equal(t, before.Home.HeroTitle, after.Home.HeroTitle)
}

func TestSubscribe_NotifiedOnEveryChange(t *testing.T) {
	st := seededStore(t)

	calls := 0
	st.Subscribe(func() { calls++ })

	require.True(t, st.UpdateHome(context.Background(), &content.HomePatch{HeroTitle: str("a")}))
	require.True(t, st.UpdateConfig(context.Background(), &content.ConfigPatch{SiteName: str("s")}))
	st.FetchAll(context.Background())

	assert.Equal(t, 3, calls)
}

func TestSubscribe_NotNotifiedOnFailedWrite(t *testing.T) {
	st := seededStore(t)
	st.svc = service.NewService(downRepo{})

	calls := 0
	st.Subscribe(func() { calls++ })
	assert.False(t, st.UpdateHome(context.Background(), &content.HomePatch{HeroTitle: str("x")}))
	assert.Zero(t, calls)
}

func TestAddNewProject_AppendsWithAssignedID(t *testing.T) {
	st := seededStore(t)

	p := &content.Project{Name: "beta", Category: content.CategoryOpenSource, Order: 1}
	require.True(t, st.AddNewProject(context.Background(), p))
	assert.NotEmpty(t, p.ID)

	snap := st.Snapshot()
	require.Len(t, snap.Projects, 2)
	assert.Equal(t, "beta", snap.Projects[1].Name)
	assert.Equal(t, p.ID, snap.Projects[1].ID)
}

func TestUpdateProjectData_PatchesOnlyTarget(t *testing.T) {
	st := seededStore(t)
	other := &content.Project{Name: "beta", Category: content.CategoryOpenSource, Order: 1}
	require.True(t, st.AddNewProject(context.Background(), other))

	target := st.Snapshot().Projects[0]
	require.True(t, st.UpdateProjectData(context.Background(), target.ID, &content.ProjectPatch{
		Name: str("alpha2"),
	}))

	snap := st.Snapshot()
	require.Len(t, snap.Projects, 2)
	assert.Equal(t, "alpha2", snap.Projects[0].Name)
	assert.Equal(t, "beta", snap.Projects[1].Name)
}

func TestRemoveProject_Splices(t *testing.T) {
	st := seededStore(t)
	id := st.Snapshot().Projects[0].ID

	require.True(t, st.RemoveProject(context.Background(), id))
	assert.Empty(t, st.Snapshot().Projects)

	// unknown id is a failure, nothing to splice
	assert.False(t, st.RemoveProject(context.Background(), id))
}
