package repository

import (
	"context"
	"errors"

	"github.com/foliocms/foliocms/internal/content"
)

var ErrNotFound = errors.New("content not found")

// Repository provides persistence for the singleton content documents and
// the ordered project collection.
type Repository interface {
	// GetSingleton decodes the document stored under the fixed key into out.
	// Returns ErrNotFound when no document exists yet.
	GetSingleton(ctx context.Context, key string, out interface{}) error
	// MergeSingleton merges fields into the document under key, creating it
	// when absent. Fields not present in the map are left untouched.
	MergeSingleton(ctx context.Context, key string, fields map[string]interface{}) error

	ListProjects(ctx context.Context) ([]*content.Project, error)
	// InsertProject stores a new project and returns the store-assigned id.
	InsertProject(ctx context.Context, p *content.Project) (string, error)
	PatchProject(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteProject(ctx context.Context, id string) error
}
