package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/internal/domain/plan"
	"github.com/oksasatya/health-planner/internal/domain/repository"
)

// PlanNotifier delivers a freshly generated plan to the entry's email address.
type PlanNotifier interface {
	SendPlan(ctx context.Context, e *entity.Entry) error
}

// PlanQueue hands plan emails to a background worker.
type PlanQueue interface {
	EnqueuePlan(ctx context.Context, e *entity.Entry) error
}

// EntryInput is the validated shape of a create or update request.
type EntryInput struct {
	Email    string          `json:"email" validate:"required,email"`
	WeightKg decimal.Decimal `json:"weightKg" validate:"required,decgte=1"`
	HeightCm decimal.Decimal `json:"heightCm" validate:"required,decgte=1"`
}

var (
	sampleWeightKg = decimal.NewFromInt(70)
	sampleHeightCm = decimal.NewFromInt(170)
)

type EntryService struct {
	Repo     repository.EntryRepository
	Planner  *plan.Generator
	Notifier PlanNotifier
	Queue    PlanQueue // optional
	Logger   *logrus.Logger
	Now      func() time.Time
}

func NewEntryService(repo repository.EntryRepository, planner *plan.Generator, notifier PlanNotifier, queue PlanQueue, logger *logrus.Logger) *EntryService {
	return &EntryService{
		Repo:     repo,
		Planner:  planner,
		Notifier: notifier,
		Queue:    queue,
		Logger:   logger,
		Now:      time.Now,
	}
}

// now is truncated to microseconds so the value survives a Postgres round trip unchanged.
func (s *EntryService) now() time.Time {
	return s.Now().UTC().Truncate(time.Microsecond)
}

func normalizeEntryInput(in EntryInput) (EntryInput, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return in, err
	}
	return in, nil
}

// CreateEntry generates a plan, stores it and emails it. The entry stays stored
// when the email fails, but the call still reports ErrNotificationFailed.
func (s *EntryService) CreateEntry(ctx context.Context, in EntryInput) (*entity.Entry, error) {
	in, err := normalizeEntryInput(in)
	if err != nil {
		return nil, err
	}

	res := s.Planner.Generate(in.WeightKg, in.HeightCm)
	e := &entity.Entry{CreatedAt: s.now()}
	e.ApplyPlan(in.Email, in.WeightKg, in.HeightCm, res)

	if err := s.Repo.Create(ctx, e); err != nil {
		s.Logger.WithError(err).Error("failed to save entry")
		return nil, fmt.Errorf("save entry: %w", err)
	}
	entriesCreated.Add(1)

	if err := s.Notifier.SendPlan(ctx, e); err != nil {
		planEmailsFailed.Add(1)
		s.Logger.WithError(err).WithField("entry_id", e.ID).Warn("plan email failed")
		return nil, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}
	planEmailsSent.Add(1)

	s.Logger.WithFields(logrus.Fields{
		"entry_id": e.ID,
		"category": e.BMICategory,
	}).Info("entry created")
	return e, nil
}

func (s *EntryService) GetLatest(ctx context.Context) (*entity.Entry, error) {
	e, err := s.Repo.Latest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoEntries
	}
	if err != nil {
		return nil, fmt.Errorf("latest entry: %w", err)
	}
	return e, nil
}

// List returns entries newest first. A positive limit smaller than the total truncates.
func (s *EntryService) List(ctx context.Context, limit int) ([]entity.Entry, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (s *EntryService) GetByID(ctx context.Context, id int64) (*entity.Entry, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", id, err)
	}
	return e, nil
}

// UpdateEntry regenerates the whole plan from the new inputs. ID and CreatedAt
// are kept and no email is sent.
func (s *EntryService) UpdateEntry(ctx context.Context, id int64, in EntryInput) (*entity.Entry, error) {
	in, err := normalizeEntryInput(in)
	if err != nil {
		return nil, err
	}

	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := s.Planner.Generate(in.WeightKg, in.HeightCm)
	e.ApplyPlan(in.Email, in.WeightKg, in.HeightCm, res)

	if err := s.Repo.Update(ctx, e); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("update entry %d: %w", id, err)
	}
	entriesUpdated.Add(1)
	return e, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, id int64) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	if err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	s.Logger.WithField("entry_id", id).Info("entry deleted")
	return nil
}

// SendTestEmail sends a sample 70 kg / 170 cm plan to the given address without storing anything.
func (s *EntryService) SendTestEmail(ctx context.Context, to string) (*entity.Entry, error) {
	to = strings.TrimSpace(to)
	if err := validateStruct(struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: to}); err != nil {
		return nil, err
	}

	res := s.Planner.Generate(sampleWeightKg, sampleHeightCm)
	e := &entity.Entry{CreatedAt: s.now()}
	e.ApplyPlan(to, sampleWeightKg, sampleHeightCm, res)

	if err := s.Notifier.SendPlan(ctx, e); err != nil {
		planEmailsFailed.Add(1)
		s.Logger.WithError(err).WithField("to", to).Warn("test email failed")
		return nil, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}
	planEmailsSent.Add(1)
	return e, nil
}

// ResendPlan queues the stored plan of an entry for delivery by the email worker.
func (s *EntryService) ResendPlan(ctx context.Context, id int64) error {
	if s.Queue == nil {
		return ErrQueueUnavailable
	}
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Queue.EnqueuePlan(ctx, e); err != nil {
		s.Logger.WithError(err).WithField("entry_id", id).Error("failed to queue plan email")
		return fmt.Errorf("%w: %w", ErrQueueUnavailable, err)
	}
	planEmailsQueued.Add(1)
	return nil
}
