package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/internal/domain/repository"
)

const mealColumns = `id, meal_name, calories, date, user_email, created_at`

type MealRepository struct {
	pool *pgxpool.Pool
}

func NewMealRepository(pool *pgxpool.Pool) *MealRepository {
	return &MealRepository{pool: pool}
}

func nullableText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func (r *MealRepository) Create(ctx context.Context, m *entity.Meal) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO meals (meal_name, calories, date, user_email, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, m.MealName, m.Calories, m.Date, nullableText(m.UserEmail), m.CreatedAt)

	return row.Scan(&m.ID)
}

func (r *MealRepository) GetByID(ctx context.Context, id int64) (*entity.Meal, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+mealColumns+` FROM meals WHERE id = $1`, id)
	m, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MealRepository) List(ctx context.Context) ([]entity.Meal, error) {
	return r.query(ctx, `SELECT `+mealColumns+` FROM meals ORDER BY created_at DESC, id DESC`)
}

func (r *MealRepository) ListByDate(ctx context.Context, date time.Time) ([]entity.Meal, error) {
	return r.query(ctx, `
		SELECT `+mealColumns+` FROM meals
		WHERE date = $1
		ORDER BY created_at DESC, id DESC
	`, entity.DateOnly(date))
}

func (r *MealRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Meal, error) {
	return r.query(ctx, `
		SELECT `+mealColumns+` FROM meals
		WHERE date BETWEEN $1 AND $2
		ORDER BY created_at DESC, id DESC
	`, entity.DateOnly(start), entity.DateOnly(end))
}

func (r *MealRepository) SearchByName(ctx context.Context, fragment string) ([]entity.Meal, error) {
	return r.query(ctx, `
		SELECT `+mealColumns+` FROM meals
		WHERE meal_name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC, id DESC
	`, escapeLike(fragment))
}

func (r *MealRepository) ListByUserEmail(ctx context.Context, email string) ([]entity.Meal, error) {
	return r.query(ctx, `
		SELECT `+mealColumns+` FROM meals
		WHERE user_email = $1
		ORDER BY created_at DESC, id DESC
	`, email)
}

func (r *MealRepository) SumCalories(ctx context.Context, start, end time.Time) (int, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(calories), 0) FROM meals WHERE date BETWEEN $1 AND $2
	`, entity.DateOnly(start), entity.DateOnly(end)).Scan(&total)
	return int(total), err
}

func (r *MealRepository) Update(ctx context.Context, m *entity.Meal) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE meals
		SET meal_name = $1, calories = $2, date = $3, user_email = $4
		WHERE id = $5
	`, m.MealName, m.Calories, m.Date, nullableText(m.UserEmail), m.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MealRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MealRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM meals WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *MealRepository) query(ctx context.Context, sql string, args ...any) ([]entity.Meal, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Meal, 0)
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func scanMeal(row pgx.Row) (*entity.Meal, error) {
	var (
		m     entity.Meal
		email pgtype.Text
	)
	if err := row.Scan(&m.ID, &m.MealName, &m.Calories, &m.Date, &email, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Date = entity.DateOnly(m.Date)
	m.UserEmail = email.String
	return &m, nil
}

// escapeLike makes % and _ in user input match literally under ILIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ repository.MealRepository = (*MealRepository)(nil)
