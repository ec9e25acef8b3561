// Package memory holds in-process repository implementations. Every write is
// serialized through a single mutex per store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepository)(nil)

type EntryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries map[int64]entity.Entry
}

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{entries: make(map[int64]entity.Entry)}
}

func (r *EntryRepository) Create(_ context.Context, e *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	e.ID = r.nextID
	r.entries[e.ID] = cloneEntry(*e)
	return nil
}

func (r *EntryRepository) GetByID(_ context.Context, id int64) (*entity.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneEntry(e)
	return &out, nil
}

func (r *EntryRepository) Latest(ctx context.Context) (*entity.Entry, error) {
	all, _ := r.List(ctx)
	if len(all) == 0 {
		return nil, repository.ErrNotFound
	}
	return &all[0], nil
}

func (r *EntryRepository) List(_ context.Context) ([]entity.Entry, error) {
	r.mu.RLock()
	out := make([]entity.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, cloneEntry(e))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *EntryRepository) Update(_ context.Context, e *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.entries[e.ID]
	if !ok {
		return repository.ErrNotFound
	}
	updated := cloneEntry(*e)
	updated.CreatedAt = existing.CreatedAt
	r.entries[e.ID] = updated
	return nil
}

func (r *EntryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *EntryRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok, nil
}

func cloneEntry(e entity.Entry) entity.Entry {
	e.MealPlan = append([]string(nil), e.MealPlan...)
	e.WorkoutPlan = append([]string(nil), e.WorkoutPlan...)
	e.Tips = append([]string(nil), e.Tips...)
	e.Quotes = append([]string(nil), e.Quotes...)
	return e
}
