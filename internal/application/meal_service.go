package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/internal/domain/repository"
)

// MealInput is a meal payload after type coercion. A nil Date means today.
type MealInput struct {
	MealName  string     `json:"mealName" validate:"required,max=255"`
	Calories  int        `json:"calories" validate:"gt=0,lte=2147483647"`
	Date      *time.Time `json:"date"`
	UserEmail string     `json:"userEmail" validate:"max=255"`
}

type MealService struct {
	Repo   repository.MealRepository
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewMealService(repo repository.MealRepository, logger *logrus.Logger) *MealService {
	return &MealService{Repo: repo, Logger: logger, Now: time.Now}
}

// ParseDate parses a YYYY-MM-DD value, reporting failures against field.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, invalidField(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func (s *MealService) normalize(in MealInput) (MealInput, error) {
	in.MealName = strings.TrimSpace(in.MealName)
	in.UserEmail = strings.TrimSpace(in.UserEmail)
	if err := validateStruct(in); err != nil {
		return in, err
	}
	return in, nil
}

func (s *MealService) mealDate(in MealInput) time.Time {
	if in.Date != nil {
		return entity.DateOnly(*in.Date)
	}
	return entity.DateOnly(s.Now())
}

func (s *MealService) AddMeal(ctx context.Context, in MealInput) (*entity.Meal, error) {
	in, err := s.normalize(in)
	if err != nil {
		return nil, err
	}
	m := &entity.Meal{
		MealName:  in.MealName,
		Calories:  in.Calories,
		Date:      s.mealDate(in),
		UserEmail: in.UserEmail,
		CreatedAt: s.Now().UTC().Truncate(time.Microsecond),
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		s.Logger.WithError(err).Error("failed to save meal")
		return nil, fmt.Errorf("save meal: %w", err)
	}
	mealsLogged.Add(1)
	return m, nil
}

func (s *MealService) GetMeal(ctx context.Context, id int64) (*entity.Meal, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get meal %d: %w", id, err)
	}
	return m, nil
}

func (s *MealService) ListMeals(ctx context.Context) ([]entity.Meal, error) {
	return s.Repo.List(ctx)
}

func (s *MealService) MealsByDate(ctx context.Context, date time.Time) ([]entity.Meal, error) {
	return s.Repo.ListByDate(ctx, entity.DateOnly(date))
}

func checkRange(start, end time.Time) (time.Time, time.Time, error) {
	start, end = entity.DateOnly(start), entity.DateOnly(end)
	if start.After(end) {
		return start, end, invalidField("endDate", "must not be before startDate")
	}
	return start, end, nil
}

// MealsByDateRange includes meals on both start and end.
func (s *MealService) MealsByDateRange(ctx context.Context, start, end time.Time) ([]entity.Meal, error) {
	start, end, err := checkRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByDateRange(ctx, start, end)
}

// SearchMeals matches name fragments case-insensitively. An empty fragment matches everything.
func (s *MealService) SearchMeals(ctx context.Context, name string) ([]entity.Meal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.Repo.List(ctx)
	}
	return s.Repo.SearchByName(ctx, name)
}

func (s *MealService) MealsByEmail(ctx context.Context, email string) ([]entity.Meal, error) {
	return s.Repo.ListByUserEmail(ctx, strings.TrimSpace(email))
}

func (s *MealService) TotalCaloriesByDate(ctx context.Context, date time.Time) (int, error) {
	d := entity.DateOnly(date)
	return s.Repo.SumCalories(ctx, d, d)
}

func (s *MealService) TotalCaloriesByDateRange(ctx context.Context, start, end time.Time) (int, error) {
	start, end, err := checkRange(start, end)
	if err != nil {
		return 0, err
	}
	return s.Repo.SumCalories(ctx, start, end)
}

// UpdateMeal replaces every mutable field. A missing date resets it to today.
func (s *MealService) UpdateMeal(ctx context.Context, id int64, in MealInput) (*entity.Meal, error) {
	in, err := s.normalize(in)
	if err != nil {
		return nil, err
	}
	m, err := s.GetMeal(ctx, id)
	if err != nil {
		return nil, err
	}
	m.MealName = in.MealName
	m.Calories = in.Calories
	m.Date = s.mealDate(in)
	m.UserEmail = in.UserEmail

	if err := s.Repo.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, fmt.Errorf("update meal %d: %w", id, err)
	}
	return m, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, id int64) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMealNotFound
	}
	if err != nil {
		return fmt.Errorf("delete meal %d: %w", id, err)
	}
	return nil
}
