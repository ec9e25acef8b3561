package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/health-planner/internal/application"
	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/internal/domain/plan"
	"github.com/oksasatya/health-planner/internal/infrastructure/memory"
	handlers "github.com/oksasatya/health-planner/internal/interface/http"
	"github.com/oksasatya/health-planner/internal/router"
	"github.com/oksasatya/health-planner/internal/router/modules"
	"github.com/oksasatya/health-planner/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

type stubNotifier struct{ err error }

func (n *stubNotifier) SendPlan(context.Context, *entity.Entry) error { return n.err }

type stubQueue struct{ n int }

func (q *stubQueue) EnqueuePlan(context.Context, *entity.Entry) error {
	q.n++
	return nil
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   map[string]any  `json:"error"`
}

type testServer struct {
	engine   *gin.Engine
	notifier *stubNotifier
	queue    *stubQueue
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger, _ := test.NewNullLogger()
	n := &stubNotifier{}
	q := &stubQueue{}

	entries := application.NewEntryService(memory.NewEntryRepository(), plan.NewGenerator(), n, q, logger)
	meals := application.NewMealService(memory.NewMealRepository(), logger)
	eh := handlers.NewEntryHandler(entries, logger)
	mh := handlers.NewMealHandler(meals, logger)
	emh := handlers.NewEmailHandler(entries, logger)

	// Same modules as the server; nil Redis disables the rate limiters.
	reg := router.NewRegistry(gin.New())
	reg.Add(modules.NewEntryModule(eh, nil, 0))
	reg.Add(modules.NewEmailModule(emh, nil, 0))
	reg.Add(modules.NewMealModule(mh))
	reg.RegisterAll()

	return &testServer{engine: reg.Engine, notifier: n, queue: q}
}

func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestEntries_CreateAndRead(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/entries", `{"email":"ana@example.com","weightKg":70,"heightCm":170}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	created := decode[map[string]any](t, env.Data)
	assert.Equal(t, 24.22, created["bmi"])
	assert.Equal(t, "Normal weight", created["bmiCategory"])
	assert.Len(t, created["quotes"], 3)
	assert.Len(t, created["mealPlan"], 4)
	assert.NotEmpty(t, created["createdAt"])

	w, env = s.do(t, http.MethodGet, "/api/entries/latest", "")
	require.Equal(t, http.StatusOK, w.Code)
	latest := decode[map[string]any](t, env.Data)
	assert.Equal(t, created["id"], latest["id"])

	w, _ = s.do(t, http.MethodGet, "/api/entries/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEntries_LatestEmptyIsNoContent(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(t, http.MethodGet, "/api/entries/latest", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestEntries_ValidationErrors(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/entries", `{"email":"bad","weightKg":0.5,"heightCm":170}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "email")
	assert.Contains(t, env.Error, "weightKg")

	w, env = s.do(t, http.MethodPost, "/api/entries", `{"email":"ana@example.com","weightKg":0.99999999999999999999,"heightCm":170}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "must be greater than or equal to 1", env.Error["weightKg"])

	w, env = s.do(t, http.MethodPost, "/api/entries", `{"email":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "payload")

	w, _ = s.do(t, http.MethodGet, "/api/entries?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/entries/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEntries_NotificationFailureIsBadGateway(t *testing.T) {
	s := newTestServer(t)
	s.notifier.err = errors.New("mailgun down")

	w, env := s.do(t, http.MethodPost, "/api/entries", `{"email":"ana@example.com","weightKg":70,"heightCm":170}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.False(t, env.Success)
}

func TestEntries_ListLimitUpdateDelete(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 3; i++ {
		w, _ := s.do(t, http.MethodPost, "/api/entries", `{"email":"ana@example.com","weightKg":70,"heightCm":170}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, env := s.do(t, http.MethodGet, "/api/entries?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]map[string]any](t, env.Data)
	require.Len(t, list, 2)
	assert.Equal(t, float64(3), list[0]["id"])
	assert.Equal(t, float64(2), list[1]["id"])

	w, env = s.do(t, http.MethodPut, "/api/entries/1", `{"email":"ana@example.com","weightKg":"45","heightCm":"170"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[map[string]any](t, env.Data)
	assert.Equal(t, 15.57, updated["bmi"])
	assert.Equal(t, "Underweight", updated["bmiCategory"])

	w, _ = s.do(t, http.MethodPut, "/api/entries/99", `{"email":"ana@example.com","weightKg":70,"heightCm":170}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/api/entries/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = s.do(t, http.MethodGet, "/api/entries/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(t, http.MethodDelete, "/api/entries/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmail_TestAndResend(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/email/test", `{"email":"ana@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	sample := decode[map[string]any](t, env.Data)
	assert.Equal(t, 24.22, sample["bmi"])

	w, _ = s.do(t, http.MethodPost, "/api/entries/1/email", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/entries", `{"email":"ana@example.com","weightKg":70,"heightCm":170}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = s.do(t, http.MethodPost, "/api/entries/1/email", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, s.queue.n)
}

func TestMeals_CreateAcceptsNumericStrings(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/meals", `{"mealName":"Salad","calories":"350","date":"2024-05-01","userEmail":"ana@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	m := decode[map[string]any](t, env.Data)
	assert.Equal(t, float64(350), m["calories"])
	assert.Equal(t, "2024-05-01", m["date"])
	assert.Equal(t, "ana@example.com", m["userEmail"])

	w, env = s.do(t, http.MethodPost, "/api/meals", `{"mealName":"Soup","calories":200}`)
	require.Equal(t, http.StatusCreated, w.Code)
	m = decode[map[string]any](t, env.Data)
	assert.Nil(t, m["userEmail"])
	assert.NotEmpty(t, m["date"])
}

func TestMeals_CreateRejectsBadPayloads(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]struct {
		body  string
		field string
	}{
		"non numeric calories": {`{"mealName":"Salad","calories":"lots"}`, "calories"},
		"fractional calories":  {`{"mealName":"Salad","calories":10.5}`, "calories"},
		"missing calories":     {`{"mealName":"Salad"}`, "calories"},
		"zero calories":        {`{"mealName":"Salad","calories":0}`, "calories"},
		"blank name":           {`{"mealName":" ","calories":10}`, "mealName"},
		"bad date":             {`{"mealName":"Salad","calories":10,"date":"01/05/2024"}`, "date"},
		"calories over int32":  {`{"mealName":"Salad","calories":"3000000000"}`, "calories"},
		"numeric over int32":   {`{"mealName":"Salad","calories":3000000000}`, "calories"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w, env := s.do(t, http.MethodPost, "/api/meals", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, env.Error, tc.field)
		})
	}
}

func TestMeals_Queries(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{
		`{"mealName":"Chicken Salad","calories":400,"date":"2024-05-01","userEmail":"ana@example.com"}`,
		`{"mealName":"Pasta","calories":700,"date":"2024-05-02"}`,
		`{"mealName":"Green salad","calories":150,"date":"2024-05-03","userEmail":"ana@example.com"}`,
	} {
		w, _ := s.do(t, http.MethodPost, "/api/meals", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	count := func(path string) int {
		w, env := s.do(t, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		return len(decode[[]map[string]any](t, env.Data))
	}
	assert.Equal(t, 3, count("/api/meals"))
	assert.Equal(t, 1, count("/api/meals/date/2024-05-02"))
	assert.Equal(t, 2, count("/api/meals/date-range?startDate=2024-05-01&endDate=2024-05-02"))
	assert.Equal(t, 2, count("/api/meals/search?name=salad"))
	assert.Equal(t, 2, count("/api/meals/user/ana@example.com"))

	w, env := s.do(t, http.MethodGet, "/api/meals/calories/date-range?startDate=2024-05-01&endDate=2024-05-03", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1250), decode[map[string]any](t, env.Data)["totalCalories"])

	w, env = s.do(t, http.MethodGet, "/api/meals/calories/date/2030-01-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode[map[string]any](t, env.Data)["totalCalories"])

	w, _ = s.do(t, http.MethodGet, "/api/meals/date-range?startDate=2024-05-03&endDate=2024-05-01", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/meals/date/yesterday", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeals_UpdateAndDelete(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(t, http.MethodPost, "/api/meals", `{"mealName":"Toast","calories":200,"date":"2024-05-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(t, http.MethodPut, "/api/meals/1", `{"mealName":"Toast with jam","calories":"260","date":"2024-05-01"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(260), decode[map[string]any](t, env.Data)["calories"])

	w, _ = s.do(t, http.MethodPut, "/api/meals/9", `{"mealName":"x","calories":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/api/meals/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodDelete, "/api/meals/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(t, http.MethodGet, "/api/meals/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
