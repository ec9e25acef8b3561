package mailer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/health-planner/config"
	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/pkg/mailer/templates"
)

// Sender delivers one rendered message. *Mailgun implements it.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// PlanMailer renders the health_plan templates for an entry and sends them synchronously.
type PlanMailer struct {
	Sender Sender
	Cfg    *config.Config
}

func NewPlanMailer(sender Sender, cfg *config.Config) *PlanMailer {
	return &PlanMailer{Sender: sender, Cfg: cfg}
}

func (p *PlanMailer) SendPlan(ctx context.Context, e *entity.Entry) error {
	subject, text, html, err := templates.Render(templates.HealthPlan, templates.NewPlanEmailData(p.Cfg, e))
	if err != nil {
		return fmt.Errorf("render plan email: %w", err)
	}
	if err := p.Sender.Send(ctx, e.Email, subject, text, html); err != nil {
		return fmt.Errorf("send plan email to %s: %w", e.Email, err)
	}
	return nil
}

// LogNotifier stands in for PlanMailer when sending is disabled.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (n LogNotifier) SendPlan(_ context.Context, e *entity.Entry) error {
	n.Logger.WithFields(logrus.Fields{
		"to":       e.Email,
		"entry_id": e.ID,
		"category": e.BMICategory,
	}).Info("mail sending disabled, plan email skipped")
	return nil
}
