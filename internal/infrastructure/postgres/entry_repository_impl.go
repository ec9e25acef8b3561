package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/internal/domain/plan"
	"github.com/oksasatya/health-planner/internal/domain/repository"
)

const entryColumns = `id, email, weight_kg, height_cm, bmi, bmi_category,
	meal_plan_json, workout_plan_json, tips_json, quotes_json, created_at`

type EntryRepository struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

type entryLists struct {
	meals, workouts, tips, quotes string
}

func encodeEntryLists(e *entity.Entry) (entryLists, error) {
	var (
		l   entryLists
		err error
	)
	if l.meals, err = encodeList(e.MealPlan); err != nil {
		return l, err
	}
	if l.workouts, err = encodeList(e.WorkoutPlan); err != nil {
		return l, err
	}
	if l.tips, err = encodeList(e.Tips); err != nil {
		return l, err
	}
	l.quotes, err = encodeList(e.Quotes)
	return l, err
}

func (r *EntryRepository) Create(ctx context.Context, e *entity.Entry) error {
	lists, err := encodeEntryLists(e)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO health_entries (email, weight_kg, height_cm, bmi, bmi_category,
			meal_plan_json, workout_plan_json, tips_json, quotes_json, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, e.Email, toNumeric(e.WeightKg), toNumeric(e.HeightCm), toNumeric(e.BMI), string(e.BMICategory),
		lists.meals, lists.workouts, lists.tips, lists.quotes, e.CreatedAt)

	return row.Scan(&e.ID)
}

func (r *EntryRepository) GetByID(ctx context.Context, id int64) (*entity.Entry, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM health_entries WHERE id = $1`, id)
	return scanEntry(row)
}

func (r *EntryRepository) Latest(ctx context.Context) (*entity.Entry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM health_entries
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`)
	return scanEntry(row)
}

func (r *EntryRepository) List(ctx context.Context) ([]entity.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM health_entries
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *EntryRepository) Update(ctx context.Context, e *entity.Entry) error {
	lists, err := encodeEntryLists(e)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE health_entries
		SET email = $1, weight_kg = $2, height_cm = $3, bmi = $4, bmi_category = $5,
			meal_plan_json = $6, workout_plan_json = $7, tips_json = $8, quotes_json = $9
		WHERE id = $10
	`, e.Email, toNumeric(e.WeightKg), toNumeric(e.HeightCm), toNumeric(e.BMI), string(e.BMICategory),
		lists.meals, lists.workouts, lists.tips, lists.quotes, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM health_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM health_entries WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func scanEntry(row pgx.Row) (*entity.Entry, error) {
	var (
		e                     entity.Entry
		weight, height, bmi   pgtype.Numeric
		category              string
		meals, workouts, tips string
		quotes                string
	)
	if err := row.Scan(&e.ID, &e.Email, &weight, &height, &bmi, &category,
		&meals, &workouts, &tips, &quotes, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	e.WeightKg = fromNumeric(weight)
	e.HeightCm = fromNumeric(height)
	e.BMI = fromNumeric(bmi)
	e.BMICategory = plan.Category(category)

	var err error
	if e.MealPlan, err = decodeList("meal_plan_json", meals); err != nil {
		return nil, err
	}
	if e.WorkoutPlan, err = decodeList("workout_plan_json", workouts); err != nil {
		return nil, err
	}
	if e.Tips, err = decodeList("tips_json", tips); err != nil {
		return nil, err
	}
	if e.Quotes, err = decodeList("quotes_json", quotes); err != nil {
		return nil, err
	}
	return &e, nil
}

var _ repository.EntryRepository = (*EntryRepository)(nil)
