package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/internal/domain/repository"
)

var _ repository.MealRepository = (*MealRepository)(nil)

// MealRepository keeps meals newest first, inserting at the front on create.
type MealRepository struct {
	mu     sync.RWMutex
	nextID int64
	meals  []entity.Meal
}

func NewMealRepository() *MealRepository {
	return &MealRepository{}
}

func (r *MealRepository) Create(_ context.Context, m *entity.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	r.meals = append([]entity.Meal{*m}, r.meals...)
	return nil
}

func (r *MealRepository) GetByID(_ context.Context, id int64) (*entity.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		m := r.meals[i]
		return &m, nil
	}
	return nil, repository.ErrNotFound
}

func (r *MealRepository) List(_ context.Context) ([]entity.Meal, error) {
	return r.filter(func(entity.Meal) bool { return true }), nil
}

func (r *MealRepository) ListByDate(_ context.Context, date time.Time) ([]entity.Meal, error) {
	day := entity.DateOnly(date)
	return r.filter(func(m entity.Meal) bool { return m.Date.Equal(day) }), nil
}

func (r *MealRepository) ListByDateRange(_ context.Context, start, end time.Time) ([]entity.Meal, error) {
	return r.filter(inRange(start, end)), nil
}

func (r *MealRepository) SearchByName(_ context.Context, fragment string) ([]entity.Meal, error) {
	needle := strings.ToLower(fragment)
	return r.filter(func(m entity.Meal) bool {
		return strings.Contains(strings.ToLower(m.MealName), needle)
	}), nil
}

func (r *MealRepository) ListByUserEmail(_ context.Context, email string) ([]entity.Meal, error) {
	return r.filter(func(m entity.Meal) bool { return m.UserEmail != "" && m.UserEmail == email }), nil
}

func (r *MealRepository) SumCalories(_ context.Context, start, end time.Time) (int, error) {
	total := 0
	for _, m := range r.filter(inRange(start, end)) {
		total += m.Calories
	}
	return total, nil
}

func (r *MealRepository) Update(_ context.Context, m *entity.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(m.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	existing := r.meals[i]
	existing.MealName = m.MealName
	existing.Calories = m.Calories
	existing.Date = m.Date
	existing.UserEmail = m.UserEmail
	r.meals[i] = existing
	return nil
}

func (r *MealRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.meals = append(r.meals[:i], r.meals[i+1:]...)
	return nil
}

func (r *MealRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0, nil
}

// indexOf must be called with the lock held.
func (r *MealRepository) indexOf(id int64) int {
	for i, m := range r.meals {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (r *MealRepository) filter(keep func(entity.Meal) bool) []entity.Meal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Meal, 0)
	for _, m := range r.meals {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func inRange(start, end time.Time) func(entity.Meal) bool {
	from, to := entity.DateOnly(start), entity.DateOnly(end)
	return func(m entity.Meal) bool {
		return !m.Date.Before(from) && !m.Date.After(to)
	}
}
