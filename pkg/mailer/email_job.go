package mailer

import (
	"context"
	"fmt"

	"github.com/oksasatya/health-planner/config"
	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/pkg/mailer/templates"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Html is optional; Text is recommended as fallback.
// You can also use a template by specifying Template and Data.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "health_plan"
	Data     map[string]any `json:"data,omitempty"`
}

// Resolve returns the final subject and bodies, rendering the template when one is set.
func (j EmailJob) Resolve() (subject, text, html string, err error) {
	if j.Template == "" {
		return j.Subject, j.Text, j.HTML, nil
	}
	subject, text, html, err = templates.Render(j.Template, j.Data)
	if err != nil {
		return "", "", "", err
	}
	if j.Subject != "" {
		subject = j.Subject
	}
	return subject, text, html, nil
}

// NewPlanJob builds a templated job carrying the entry's plan.
func NewPlanJob(cfg *config.Config, e *entity.Entry) EmailJob {
	return EmailJob{
		To:       e.Email,
		Template: templates.HealthPlan,
		Data:     templates.ToMap(templates.NewPlanEmailData(cfg, e)),
	}
}

// Publisher is satisfied by helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// PlanQueue hands plan emails to the email worker.
type PlanQueue struct {
	Pub Publisher
	Cfg *config.Config
}

func NewPlanQueue(pub Publisher, cfg *config.Config) *PlanQueue {
	return &PlanQueue{Pub: pub, Cfg: cfg}
}

func (q *PlanQueue) EnqueuePlan(ctx context.Context, e *entity.Entry) error {
	if err := q.Pub.PublishJSON(ctx, NewPlanJob(q.Cfg, e)); err != nil {
		return fmt.Errorf("publish plan email: %w", err)
	}
	return nil
}
