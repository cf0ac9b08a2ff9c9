package aggregate

import (
	"context"
	"sync"

	"github.com/foliocms/foliocms/internal/content"
	"github.com/foliocms/foliocms/internal/content/service"
	"github.com/foliocms/foliocms/pkg/logger"
)

// Store is the single point of truth for all content visible to the public
// pages and the admin surface. It fetches everything once, keeps the result
// in memory, and applies an optimistic local merge after each confirmed
// remote write so consumers see the change without re-fetching.
//
// All consumers share one Store instance. State is only mutated through the
// update methods, each performing a single atomic replacement under the
// lock, and subscribers are notified after every change.
type Store struct {
	svc *service.Service

	mu       sync.RWMutex
	home     *content.HomeContent
	about    *content.AboutContent
	work     *content.WorkContent
	social   *content.SocialLinks
	config   *content.SiteConfig
	projects []*content.Project
	loading  bool
	errMsg   string

	subMu sync.Mutex
	subs  []func()
}

// Snapshot is a consistent copy of the aggregate state.
type Snapshot struct {
	Home     *content.HomeContent  `json:"home"`
	About    *content.AboutContent `json:"about"`
	Work     *content.WorkContent  `json:"work"`
	Social   *content.SocialLinks  `json:"social"`
	Config   *content.SiteConfig   `json:"config"`
	Projects []*content.Project    `json:"projects"`
	Loading  bool                  `json:"loading"`
	Error    string                `json:"error,omitempty"`
}

func NewStore(svc *service.Service) *Store {
	return &Store{svc: svc, projects: []*content.Project{}, loading: true}
}

// FetchAll issues the five singleton reads and the project list read
// concurrently and waits for all of them to settle. Absent documents simply
// populate as nil (the access layer sentinel); only an unexpected panic in
// a fetch records the generic error message. There is no partial-success
// state: consumers render either the data or the error view.
func (st *Store) FetchAll(ctx context.Context) {
	st.mu.Lock()
	st.loading = true
	st.errMsg = ""
	st.mu.Unlock()

	var (
		home     *content.HomeContent
		about    *content.AboutContent
		work     *content.WorkContent
		social   *content.SocialLinks
		config   *content.SiteConfig
		projects []*content.Project
	)

	var wg sync.WaitGroup
	failed := false
	var failMu sync.Mutex
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("content fetch panicked: %v", r)
					failMu.Lock()
					failed = true
					failMu.Unlock()
				}
			}()
			fn()
		}()
	}

	run(func() { home = st.svc.GetHome(ctx) })
	run(func() { about = st.svc.GetAbout(ctx) })
	run(func() { work = st.svc.GetWork(ctx) })
	run(func() { social = st.svc.GetSocialLinks(ctx) })
	run(func() { config = st.svc.GetSiteConfig(ctx) })
	run(func() { projects = st.svc.GetProjects(ctx) })
	wg.Wait()

	st.mu.Lock()
	if failed {
		st.errMsg = "Failed to fetch portfolio data"
	} else {
		st.home = home
		st.about = about
		st.work = work
		st.social = social
		st.config = config
		st.projects = projects
	}
	st.loading = false
	st.mu.Unlock()
	st.notify()
}

// Snapshot returns a copy of the current state. The project slice is
// copied; the content pointers are shared and treated as immutable by
// consumers.
func (st *Store) Snapshot() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	projects := make([]*content.Project, len(st.projects))
	copy(projects, st.projects)
	return Snapshot{
		Home:     st.home,
		About:    st.about,
		Work:     st.work,
		Social:   st.social,
		Config:   st.config,
		Projects: projects,
		Loading:  st.loading,
		Error:    st.errMsg,
	}
}

// Subscribe registers fn to run after every state change. This is the
// re-render contract: consumers that need to react to edits saved from the
// admin surface register here.
func (st *Store) Subscribe(fn func()) {
	st.subMu.Lock()
	st.subs = append(st.subs, fn)
	st.subMu.Unlock()
}

func (st *Store) notify() {
	st.subMu.Lock()
	subs := make([]func(), len(st.subs))
	copy(subs, st.subs)
	st.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// UpdateHome writes the patch through the access layer and, only on
// confirmed success, applies the same partial to the in-memory copy. On
// failure the state is left untouched and false is returned; there is no
// rollback concept because nothing was applied.
func (st *Store) UpdateHome(ctx context.Context, p *content.HomePatch) bool {
	if !st.svc.UpdateHome(ctx, p) {
		return false
	}
	st.mu.Lock()
	if st.home != nil {
		h := *st.home
		p.Apply(&h)
		st.home = &h
	}
	st.mu.Unlock()
	st.notify()
	return true
}

func (st *Store) UpdateAbout(ctx context.Context, p *content.AboutPatch) bool {
	if !st.svc.UpdateAbout(ctx, p) {
		return false
	}
	st.mu.Lock()
	if st.about != nil {
		a := *st.about
		p.Apply(&a)
		st.about = &a
	}
	st.mu.Unlock()
	st.notify()
	return true
}

func (st *Store) UpdateWork(ctx context.Context, p *content.WorkPatch) bool {
	if !st.svc.UpdateWork(ctx, p) {
		return false
	}
	st.mu.Lock()
	if st.work != nil {
		w := *st.work
		p.Apply(&w)
		st.work = &w
	}
	st.mu.Unlock()
	st.notify()
	return true
}

func (st *Store) UpdateSocial(ctx context.Context, p *content.SocialPatch) bool {
	if !st.svc.UpdateSocialLinks(ctx, p) {
		return false
	}
	st.mu.Lock()
	if st.social != nil {
		s := *st.social
		p.Apply(&s)
		st.social = &s
	}
	st.mu.Unlock()
	st.notify()
	return true
}

func (st *Store) UpdateConfig(ctx context.Context, p *content.ConfigPatch) bool {
	if !st.svc.UpdateSiteConfig(ctx, p) {
		return false
	}
	st.mu.Lock()
	if st.config != nil {
		c := *st.config
		p.Apply(&c)
		st.config = &c
	}
	st.mu.Unlock()
	st.notify()
	return true
}

// UpdateProjectData patches one project by id, both remotely and in the
// local list.
func (st *Store) UpdateProjectData(ctx context.Context, id string, p *content.ProjectPatch) bool {
	if !st.svc.UpdateProject(ctx, id, p) {
		return false
	}
	st.mu.Lock()
	next := make([]*content.Project, len(st.projects))
	for i, pr := range st.projects {
		if pr.ID == id {
			cp := *pr
			p.Apply(&cp)
			next[i] = &cp
		} else {
			next[i] = pr
		}
	}
	st.projects = next
	st.mu.Unlock()
	st.notify()
	return true
}

// AddNewProject creates the project remotely and appends it locally with
// the store-assigned id. Returns false when the create fails.
func (st *Store) AddNewProject(ctx context.Context, p *content.Project) bool {
	id := st.svc.AddProject(ctx, p)
	if id == "" {
		return false
	}
	p.ID = id
	st.mu.Lock()
	st.projects = append(st.projects, p)
	st.mu.Unlock()
	st.notify()
	return true
}

// RemoveProject deletes by id remotely then splices it out of the local
// list.
func (st *Store) RemoveProject(ctx context.Context, id string) bool {
	if !st.svc.DeleteProject(ctx, id) {
		return false
	}
	st.mu.Lock()
	next := st.projects[:0:0]
	for _, pr := range st.projects {
		if pr.ID != id {
			next = append(next, pr)
		}
	}
	st.projects = next
	st.mu.Unlock()
	st.notify()
	return true
}
