package service

import (
	"context"
	"time"

	"github.com/foliocms/foliocms/internal/content"
	"github.com/foliocms/foliocms/internal/content/repository"
	"github.com/foliocms/foliocms/pkg/logger"
	"github.com/foliocms/foliocms/pkg/metrics"
)

// Service is the content access layer: one read/write pair per singleton
// content type plus the project collection operations. Every failure is
// collapsed to a sentinel (nil, false, empty slice, empty id) at this
// boundary; callers only distinguish "show the data" from "show the empty
// state", never the cause.
type Service struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// GetHome fetches the home document. Returns nil when absent or on any
// store failure; the two are indistinguishable to callers.
func (s *Service) GetHome(ctx context.Context) *content.HomeContent {
	var h content.HomeContent
	if !s.getSingleton(ctx, content.KeyHome, &h) {
		return nil
	}
	return &h
}

// UpdateHome merges the patch into the home document, stamping a fresh
// timestamp. The first write creates the document.
func (s *Service) UpdateHome(ctx context.Context, p *content.HomePatch) bool {
	return s.mergeSingleton(ctx, content.KeyHome, p.Fields())
}

func (s *Service) GetAbout(ctx context.Context) *content.AboutContent {
	var a content.AboutContent
	if !s.getSingleton(ctx, content.KeyAbout, &a) {
		return nil
	}
	return &a
}

func (s *Service) UpdateAbout(ctx context.Context, p *content.AboutPatch) bool {
	return s.mergeSingleton(ctx, content.KeyAbout, p.Fields())
}

func (s *Service) GetWork(ctx context.Context) *content.WorkContent {
	var w content.WorkContent
	if !s.getSingleton(ctx, content.KeyWork, &w) {
		return nil
	}
	return &w
}

func (s *Service) UpdateWork(ctx context.Context, p *content.WorkPatch) bool {
	return s.mergeSingleton(ctx, content.KeyWork, p.Fields())
}

func (s *Service) GetSocialLinks(ctx context.Context) *content.SocialLinks {
	var sl content.SocialLinks
	if !s.getSingleton(ctx, content.KeySocial, &sl) {
		return nil
	}
	return &sl
}

func (s *Service) UpdateSocialLinks(ctx context.Context, p *content.SocialPatch) bool {
	return s.mergeSingleton(ctx, content.KeySocial, p.Fields())
}

func (s *Service) GetSiteConfig(ctx context.Context) *content.SiteConfig {
	var c content.SiteConfig
	if !s.getSingleton(ctx, content.KeyConfig, &c) {
		return nil
	}
	return &c
}

func (s *Service) UpdateSiteConfig(ctx context.Context, p *content.ConfigPatch) bool {
	return s.mergeSingleton(ctx, content.KeyConfig, p.Fields())
}

// GetProjects returns the full collection ordered by the order field
// ascending. Empty slice on failure.
func (s *Service) GetProjects(ctx context.Context) []*content.Project {
	list, err := s.repo.ListProjects(ctx)
	if err != nil {
		logger.Errorf("error fetching projects: %v", err)
		metrics.ContentReads.WithLabelValues("projects", "error").Inc()
		return []*content.Project{}
	}
	metrics.ContentReads.WithLabelValues("projects", "ok").Inc()
	return list
}

// GetProjectsByCategory fetches the full ordered collection and filters
// client-side; there is no server-side predicate.
func (s *Service) GetProjectsByCategory(ctx context.Context, category string) []*content.Project {
	out := []*content.Project{}
	for _, p := range s.GetProjects(ctx) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// GetFeaturedProjects returns the featured subset in collection order. The
// featured flag is independent of category.
func (s *Service) GetFeaturedProjects(ctx context.Context) []*content.Project {
	out := []*content.Project{}
	for _, p := range s.GetProjects(ctx) {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// AddProject creates a new record, stamping a timestamp, and returns the
// store-assigned id. Empty string on failure.
func (s *Service) AddProject(ctx context.Context, p *content.Project) string {
	p.UpdatedAt = time.Now().UTC()
	id, err := s.repo.InsertProject(ctx, p)
	if err != nil {
		logger.Errorf("error adding project: %v", err)
		metrics.ContentWrites.WithLabelValues("projects", "error").Inc()
		return ""
	}
	metrics.ContentWrites.WithLabelValues("projects", "ok").Inc()
	return id
}

func (s *Service) UpdateProject(ctx context.Context, id string, p *content.ProjectPatch) bool {
	fields := p.Fields()
	fields["updatedAt"] = time.Now().UTC()
	if err := s.repo.PatchProject(ctx, id, fields); err != nil {
		logger.Errorf("error updating project %s: %v", id, err)
		metrics.ContentWrites.WithLabelValues("projects", "error").Inc()
		return false
	}
	metrics.ContentWrites.WithLabelValues("projects", "ok").Inc()
	return true
}

func (s *Service) DeleteProject(ctx context.Context, id string) bool {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		logger.Errorf("error deleting project %s: %v", id, err)
		metrics.ContentWrites.WithLabelValues("projects", "error").Inc()
		return false
	}
	metrics.ContentWrites.WithLabelValues("projects", "ok").Inc()
	return true
}

func (s *Service) getSingleton(ctx context.Context, key string, out interface{}) bool {
	if err := s.repo.GetSingleton(ctx, key, out); err != nil {
		if err != repository.ErrNotFound {
			logger.Errorf("error fetching %s content: %v", key, err)
			metrics.ContentReads.WithLabelValues(key, "error").Inc()
		} else {
			metrics.ContentReads.WithLabelValues(key, "miss").Inc()
		}
		return false
	}
	metrics.ContentReads.WithLabelValues(key, "ok").Inc()
	return true
}

func (s *Service) mergeSingleton(ctx context.Context, key string, fields map[string]interface{}) bool {
	fields["updatedAt"] = time.Now().UTC()
	if err := s.repo.MergeSingleton(ctx, key, fields); err != nil {
		logger.Errorf("error updating %s content: %v", key, err)
		metrics.ContentWrites.WithLabelValues(key, "error").Inc()
		return false
	}
	metrics.ContentWrites.WithLabelValues(key, "ok").Inc()
	return true
}
