package repository

import (
	"context"
	"time"

	"github.com/oksasatya/health-planner/internal/domain/entity"
)

// MealRepository persists meal log records. Every list method orders newest first.
type MealRepository interface {
	Create(ctx context.Context, m *entity.Meal) error
	GetByID(ctx context.Context, id int64) (*entity.Meal, error)
	List(ctx context.Context) ([]entity.Meal, error)
	ListByDate(ctx context.Context, date time.Time) ([]entity.Meal, error)
	// ListByDateRange includes both endpoints.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Meal, error)
	SearchByName(ctx context.Context, fragment string) ([]entity.Meal, error)
	ListByUserEmail(ctx context.Context, email string) ([]entity.Meal, error)
	// SumCalories totals calories between start and end inclusive, 0 when nothing matches.
	SumCalories(ctx context.Context, start, end time.Time) (int, error)
	// Update overwrites name, calories, date and user email.
	Update(ctx context.Context, m *entity.Meal) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
