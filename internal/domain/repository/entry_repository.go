package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/health-planner/internal/domain/entity"
)

// ErrNotFound is returned by repositories when no record matches the id.
var ErrNotFound = errors.New("record not found")

// EntryRepository persists health plan entries.
type EntryRepository interface {
	// Create assigns e.ID. e.CreatedAt must already be set.
	Create(ctx context.Context, e *entity.Entry) error
	GetByID(ctx context.Context, id int64) (*entity.Entry, error)
	// Latest returns the entry with the greatest CreatedAt.
	Latest(ctx context.Context) (*entity.Entry, error)
	// List returns every entry, newest first.
	List(ctx context.Context) ([]entity.Entry, error)
	// Update overwrites every field except ID and CreatedAt.
	Update(ctx context.Context, e *entity.Entry) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
