package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oksasatya/health-planner/internal/domain/plan"
)

// Entry is one persisted BMI computation together with the plan generated for it.
// BMI and BMICategory are always produced together from WeightKg and HeightCm.
// CreatedAt is assigned once and survives updates.
type Entry struct {
	ID          int64
	Email       string
	WeightKg    decimal.Decimal
	HeightCm    decimal.Decimal
	BMI         decimal.Decimal
	BMICategory plan.Category
	MealPlan    []string
	WorkoutPlan []string
	Tips        []string
	Quotes      []string
	CreatedAt   time.Time
}

// ApplyPlan copies a generated plan and the inputs it was generated from onto e.
func (e *Entry) ApplyPlan(email string, weightKg, heightCm decimal.Decimal, res plan.Result) {
	e.Email = email
	e.WeightKg = weightKg
	e.HeightCm = heightCm
	e.BMI = res.BMI
	e.BMICategory = res.Category
	e.MealPlan = res.Meals
	e.WorkoutPlan = res.Workouts
	e.Tips = res.Tips
	e.Quotes = res.Quotes
}
