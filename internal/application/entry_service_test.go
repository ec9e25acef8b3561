package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/internal/domain/plan"
	"github.com/oksasatya/health-planner/internal/infrastructure/memory"
)

type recordingNotifier struct {
	sent []*entity.Entry
	err  error
}

func (n *recordingNotifier) SendPlan(_ context.Context, e *entity.Entry) error {
	n.sent = append(n.sent, e)
	return n.err
}

type recordingQueue struct {
	queued []int64
	err    error
}

func (q *recordingQueue) EnqueuePlan(_ context.Context, e *entity.Entry) error {
	q.queued = append(q.queued, e.ID)
	return q.err
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newEntryService(t *testing.T) (*EntryService, *recordingNotifier, *recordingQueue) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	n := &recordingNotifier{}
	q := &recordingQueue{}
	svc := NewEntryService(memory.NewEntryRepository(), plan.NewGenerator(), n, q, logger)
	c := &clock{t: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	svc.Now = c.now
	return svc, n, q
}

func input(email string, w, h int64) EntryInput {
	return EntryInput{Email: email, WeightKg: decimal.NewFromInt(w), HeightCm: decimal.NewFromInt(h)}
}

func TestCreateEntry_GeneratesStoresAndNotifies(t *testing.T) {
	svc, n, _ := newEntryService(t)
	ctx := context.Background()

	e, err := svc.CreateEntry(ctx, input("  ana@example.com ", 70, 170))
	require.NoError(t, err)

	assert.NotZero(t, e.ID)
	assert.Equal(t, "ana@example.com", e.Email)
	assert.Equal(t, "24.22", e.BMI.StringFixed(2))
	assert.Equal(t, plan.NormalWeight, e.BMICategory)
	assert.Len(t, e.Quotes, plan.QuoteCount)
	require.Len(t, n.sent, 1)
	assert.Equal(t, e.ID, n.sent[0].ID)

	got, err := svc.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Email, got.Email)
	assert.True(t, e.WeightKg.Equal(got.WeightKg))
	assert.True(t, e.BMI.Equal(got.BMI))
	assert.Equal(t, e.MealPlan, got.MealPlan)
	assert.Equal(t, e.Quotes, got.Quotes)
	assert.True(t, e.CreatedAt.Equal(got.CreatedAt))
}

func TestCreateEntry_ValidationRejectsBeforeWork(t *testing.T) {
	svc, n, _ := newEntryService(t)
	ctx := context.Background()

	cases := map[string]struct {
		in    EntryInput
		field string
	}{
		"bad email":      {input("not-an-email", 70, 170), "email"},
		"missing email":  {input("", 70, 170), "email"},
		"weight below 1": {EntryInput{Email: "a@b.co", WeightKg: decimal.RequireFromString("0.5"), HeightCm: decimal.NewFromInt(170)}, "weightKg"},
		"zero height":    {input("a@b.co", 70, 0), "heightCm"},
		"negative":       {input("a@b.co", -3, 170), "weightKg"},
		"weight just under 1": {
			EntryInput{Email: "a@b.co", WeightKg: decimal.RequireFromString("0.99999999999999999999"), HeightCm: decimal.NewFromInt(170)},
			"weightKg",
		},
		"height just under 1": {
			EntryInput{Email: "a@b.co", WeightKg: decimal.NewFromInt(70), HeightCm: decimal.RequireFromString("0.99999999999999999999")},
			"heightCm",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateEntry(ctx, tc.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}

	list, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, n.sent)
}

func TestCreateEntry_NotificationFailurePropagates(t *testing.T) {
	svc, n, _ := newEntryService(t)
	n.err = errors.New("smtp down")
	ctx := context.Background()

	e, err := svc.CreateEntry(ctx, input("ana@example.com", 70, 170))
	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.ErrorIs(t, err, n.err)

	// the entry was stored before the send was attempted
	latest, err := svc.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", latest.Email)
}

func TestGetLatest_Empty(t *testing.T) {
	svc, _, _ := newEntryService(t)
	_, err := svc.GetLatest(context.Background())
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestList_LimitKeepsNewest(t *testing.T) {
	svc, _, _ := newEntryService(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 5; i++ {
		e, err := svc.CreateEntry(ctx, input("ana@example.com", int64(60+i), 170))
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	two, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, ids[4], two[0].ID)
	assert.Equal(t, ids[3], two[1].ID)

	all, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	more, err := svc.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, more, 5)

	negative, err := svc.List(ctx, -1)
	require.NoError(t, err)
	assert.Len(t, negative, 5)

	latest, err := svc.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids[4], latest.ID)
}

func TestUpdateEntry_RegeneratesAndKeepsIdentity(t *testing.T) {
	svc, n, _ := newEntryService(t)
	ctx := context.Background()

	created, err := svc.CreateEntry(ctx, input("ana@example.com", 70, 170))
	require.NoError(t, err)
	later, err := svc.CreateEntry(ctx, input("bob@example.com", 50, 160))
	require.NoError(t, err)

	updated, err := svc.UpdateEntry(ctx, created.ID, input("ana@new.example.com", 90, 170))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, "31.14", updated.BMI.StringFixed(2))
	assert.Equal(t, plan.Obesity, updated.BMICategory)
	assert.Equal(t, "ana@new.example.com", updated.Email)
	assert.Len(t, n.sent, 2, "update must not send email")

	// latest ordering uses creation time, not modification time
	latest, err := svc.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, later.ID, latest.ID)
}

func TestUpdateEntry_Errors(t *testing.T) {
	svc, _, _ := newEntryService(t)
	ctx := context.Background()

	_, err := svc.UpdateEntry(ctx, 404, input("ana@example.com", 70, 170))
	assert.ErrorIs(t, err, ErrEntryNotFound)

	created, err := svc.CreateEntry(ctx, input("ana@example.com", 70, 170))
	require.NoError(t, err)
	_, err = svc.UpdateEntry(ctx, created.ID, input("ana@example.com", 70, 0))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.HeightCm.Equal(decimal.NewFromInt(170)))
}

func TestDeleteEntry(t *testing.T) {
	svc, _, _ := newEntryService(t)
	ctx := context.Background()

	e, err := svc.CreateEntry(ctx, input("ana@example.com", 70, 170))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, e.ID))
	_, err = svc.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.ErrorIs(t, svc.DeleteEntry(ctx, e.ID), ErrEntryNotFound)
}

func TestSendTestEmail(t *testing.T) {
	svc, n, _ := newEntryService(t)
	ctx := context.Background()

	e, err := svc.SendTestEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "24.22", e.BMI.StringFixed(2))
	require.Len(t, n.sent, 1)

	list, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "test email must not store an entry")

	_, err = svc.SendTestEmail(ctx, "nope")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	n.err = errors.New("rejected")
	_, err = svc.SendTestEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, ErrNotificationFailed)
}

func TestResendPlan(t *testing.T) {
	svc, _, q := newEntryService(t)
	ctx := context.Background()

	e, err := svc.CreateEntry(ctx, input("ana@example.com", 70, 170))
	require.NoError(t, err)

	require.NoError(t, svc.ResendPlan(ctx, e.ID))
	assert.Equal(t, []int64{e.ID}, q.queued)

	assert.ErrorIs(t, svc.ResendPlan(ctx, 999), ErrEntryNotFound)

	q.err = errors.New("channel closed")
	assert.ErrorIs(t, svc.ResendPlan(ctx, e.ID), ErrQueueUnavailable)

	svc.Queue = nil
	assert.ErrorIs(t, svc.ResendPlan(ctx, e.ID), ErrQueueUnavailable)
}
