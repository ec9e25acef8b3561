package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/health-planner/internal/application"
	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/pkg/response"
)

type MealHandler struct {
	Svc    *application.MealService
	Logger *logrus.Logger
}

func NewMealHandler(svc *application.MealService, logger *logrus.Logger) *MealHandler {
	return &MealHandler{Svc: svc, Logger: logger}
}

type mealResponse struct {
	ID        int64     `json:"id"`
	MealName  string    `json:"mealName"`
	Calories  int       `json:"calories"`
	Date      string    `json:"date"`
	UserEmail *string   `json:"userEmail"`
	CreatedAt time.Time `json:"createdAt"`
}

func toMealResponse(m *entity.Meal) mealResponse {
	res := mealResponse{
		ID:        m.ID,
		MealName:  m.MealName,
		Calories:  m.Calories,
		Date:      m.Date.Format(entity.DateLayout),
		CreatedAt: m.CreatedAt,
	}
	if m.UserEmail != "" {
		email := m.UserEmail
		res.UserEmail = &email
	}
	return res
}

func toMealResponses(list []entity.Meal) []mealResponse {
	out := make([]mealResponse, 0, len(list))
	for i := range list {
		out = append(out, toMealResponse(&list[i]))
	}
	return out
}

func (h *MealHandler) bind(c *gin.Context) (application.MealInput, bool) {
	var p mealPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		bindError(c, err)
		return application.MealInput{}, false
	}
	in, err := p.toInput()
	if err != nil {
		writeError(c, h.Logger, err)
		return in, false
	}
	return in, true
}

func (h *MealHandler) list(c *gin.Context, list []entity.Meal, err error) {
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toMealResponses(list), "meals", map[string]any{"count": len(list)})
}

func (h *MealHandler) dateParam(c *gin.Context, field, value string) (time.Time, bool) {
	d, err := application.ParseDate(field, value)
	if err != nil {
		writeError(c, h.Logger, err)
		return time.Time{}, false
	}
	return d, true
}

func (h *MealHandler) dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, ok := h.dateParam(c, "startDate", c.Query("startDate"))
	if !ok {
		return start, start, false
	}
	end, ok := h.dateParam(c, "endDate", c.Query("endDate"))
	return start, end, ok
}

func (h *MealHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}
	m, err := h.Svc.AddMeal(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toMealResponse(m), "meal logged", nil)
}

func (h *MealHandler) List(c *gin.Context) {
	list, err := h.Svc.ListMeals(c.Request.Context())
	h.list(c, list, err)
}

func (h *MealHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.Svc.GetMeal(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toMealResponse(m), "meal", nil)
}

func (h *MealHandler) ByDate(c *gin.Context) {
	d, ok := h.dateParam(c, "date", c.Param("date"))
	if !ok {
		return
	}
	list, err := h.Svc.MealsByDate(c.Request.Context(), d)
	h.list(c, list, err)
}

func (h *MealHandler) ByDateRange(c *gin.Context) {
	start, end, ok := h.dateRange(c)
	if !ok {
		return
	}
	list, err := h.Svc.MealsByDateRange(c.Request.Context(), start, end)
	h.list(c, list, err)
}

func (h *MealHandler) Search(c *gin.Context) {
	list, err := h.Svc.SearchMeals(c.Request.Context(), c.Query("name"))
	h.list(c, list, err)
}

func (h *MealHandler) ByUser(c *gin.Context) {
	list, err := h.Svc.MealsByEmail(c.Request.Context(), c.Param("email"))
	h.list(c, list, err)
}

func (h *MealHandler) CaloriesByDate(c *gin.Context) {
	d, ok := h.dateParam(c, "date", c.Param("date"))
	if !ok {
		return
	}
	total, err := h.Svc.TotalCaloriesByDate(c.Request.Context(), d)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{
		"date":          d.Format(entity.DateLayout),
		"totalCalories": total,
	}, "total calories", nil)
}

func (h *MealHandler) CaloriesByDateRange(c *gin.Context) {
	start, end, ok := h.dateRange(c)
	if !ok {
		return
	}
	total, err := h.Svc.TotalCaloriesByDateRange(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{
		"startDate":     start.Format(entity.DateLayout),
		"endDate":       end.Format(entity.DateLayout),
		"totalCalories": total,
	}, "total calories", nil)
}

func (h *MealHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	m, err := h.Svc.UpdateMeal(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toMealResponse(m), "meal updated", nil)
}

func (h *MealHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteMeal(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"id": id, "deleted": true}, "meal deleted", nil)
}
