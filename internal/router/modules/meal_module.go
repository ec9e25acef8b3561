package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/health-planner/internal/interface/http"
)

// MealModule wires the meal log routes. Static segments are registered
// next to /meals/:id; gin resolves them before the parameter.
type MealModule struct {
	Handler *handlers.MealHandler
}

func NewMealModule(h *handlers.MealHandler) *MealModule {
	return &MealModule{Handler: h}
}

func (m *MealModule) Register(rg *gin.RouterGroup) {
	meals := rg.Group("/meals")
	{
		meals.GET("", m.Handler.List)
		meals.POST("", m.Handler.Create)
		meals.GET("/search", m.Handler.Search)
		meals.GET("/date/:date", m.Handler.ByDate)
		meals.GET("/date-range", m.Handler.ByDateRange)
		meals.GET("/user/:email", m.Handler.ByUser)
		meals.GET("/calories/date/:date", m.Handler.CaloriesByDate)
		meals.GET("/calories/date-range", m.Handler.CaloriesByDateRange)
		meals.GET("/:id", m.Handler.Get)
		meals.PUT("/:id", m.Handler.Update)
		meals.DELETE("/:id", m.Handler.Delete)
	}
}
