package templates

import (
	"time"

	"github.com/oksasatya/health-planner/config"
	"github.com/oksasatya/health-planner/internal/domain/entity"
)

// PlanEmailData holds everything the health_plan templates render.
// JSON names match the template fields so a queued job's map renders the same.
type PlanEmailData struct {
	Subject     string `json:"Subject"`
	AppName     string `json:"AppName"`
	CompanyName string `json:"CompanyName"`
	SupportURL  string `json:"SupportURL"`

	Email       string   `json:"Email"`
	EntryID     int64    `json:"EntryID"`
	WeightKg    string   `json:"WeightKg"`
	HeightCm    string   `json:"HeightCm"`
	BMI         string   `json:"BMI"`
	BMICategory string   `json:"BMICategory"`
	MealPlan    []string `json:"MealPlan"`
	WorkoutPlan []string `json:"WorkoutPlan"`
	Tips        []string `json:"Tips"`
	Quotes      []string `json:"Quotes"`
	GeneratedAt string   `json:"GeneratedAt"`
}

// Option pattern
type Option func(*PlanEmailData)

func WithSubject(s string) Option { return func(d *PlanEmailData) { d.Subject = s } }

func WithGeneratedAt(t time.Time) Option {
	return func(d *PlanEmailData) { d.GeneratedAt = t.UTC().Format("02 January 2006, 15:04") }
}

// NewPlanEmailData fills branding from config and the plan from the entry.
// cfg may be nil, in which case the templates fall back to their defaults.
func NewPlanEmailData(cfg *config.Config, e *entity.Entry, opts ...Option) PlanEmailData {
	d := PlanEmailData{
		Email:       e.Email,
		EntryID:     e.ID,
		WeightKg:    e.WeightKg.String(),
		HeightCm:    e.HeightCm.String(),
		BMI:         e.BMI.StringFixed(2),
		BMICategory: e.BMICategory.String(),
		MealPlan:    e.MealPlan,
		WorkoutPlan: e.WorkoutPlan,
		Tips:        e.Tips,
		Quotes:      e.Quotes,
	}
	if !e.CreatedAt.IsZero() {
		WithGeneratedAt(e.CreatedAt)(&d)
	}
	if cfg != nil {
		d.Subject = cfg.MailSubject
		d.AppName = cfg.AppName
		d.CompanyName = cfg.CompanyName
		d.SupportURL = cfg.SupportURL
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
