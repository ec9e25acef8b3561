package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/health-planner/internal/application"
	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/pkg/response"
)

type EntryHandler struct {
	Svc    *application.EntryService
	Logger *logrus.Logger
}

func NewEntryHandler(svc *application.EntryService, logger *logrus.Logger) *EntryHandler {
	return &EntryHandler{Svc: svc, Logger: logger}
}

type entryRequest struct {
	Email    string          `json:"email"`
	WeightKg decimal.Decimal `json:"weightKg"`
	HeightCm decimal.Decimal `json:"heightCm"`
}

func (r entryRequest) input() application.EntryInput {
	return application.EntryInput{Email: r.Email, WeightKg: r.WeightKg, HeightCm: r.HeightCm}
}

type entryResponse struct {
	ID          int64       `json:"id"`
	Email       string      `json:"email"`
	WeightKg    json.Number `json:"weightKg"`
	HeightCm    json.Number `json:"heightCm"`
	BMI         json.Number `json:"bmi"`
	BMICategory string      `json:"bmiCategory"`
	MealPlan    []string    `json:"mealPlan"`
	WorkoutPlan []string    `json:"workoutPlan"`
	Tips        []string    `json:"tips"`
	Quotes      []string    `json:"quotes"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func toEntryResponse(e *entity.Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		Email:       e.Email,
		WeightKg:    json.Number(e.WeightKg.String()),
		HeightCm:    json.Number(e.HeightCm.String()),
		BMI:         json.Number(e.BMI.StringFixed(2)),
		BMICategory: e.BMICategory.String(),
		MealPlan:    e.MealPlan,
		WorkoutPlan: e.WorkoutPlan,
		Tips:        e.Tips,
		Quotes:      e.Quotes,
		CreatedAt:   e.CreatedAt,
	}
}

func toEntryResponses(list []entity.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(list))
	for i := range list {
		out = append(out, toEntryResponse(&list[i]))
	}
	return out
}

func (h *EntryHandler) Create(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	e, err := h.Svc.CreateEntry(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toEntryResponse(e), "health plan created", nil)
}

func (h *EntryHandler) Latest(c *gin.Context) {
	e, err := h.Svc.GetLatest(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponse(e), "latest entry", nil)
}

func (h *EntryHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"limit": "must be an integer"})
			return
		}
		limit = n
	}
	list, err := h.Svc.List(c.Request.Context(), limit)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponses(list), "entries", map[string]any{"count": len(list)})
}

func (h *EntryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponse(e), "entry", nil)
}

func (h *EntryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	e, err := h.Svc.UpdateEntry(c.Request.Context(), id, req.input())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponse(e), "entry updated", nil)
}

func (h *EntryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteEntry(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
