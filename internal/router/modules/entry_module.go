package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/health-planner/internal/interface/http"
	"github.com/oksasatya/health-planner/internal/interface/middleware"
)

// EntryModule serves /entries. Creating an entry sends an email, so it gets
// its own tighter per-IP budget.
type EntryModule struct {
	Handler         *handlers.EntryHandler
	Redis           *redis.Client
	CreatePerMinute int
}

func NewEntryModule(h *handlers.EntryHandler, rdb *redis.Client, createPerMinute int) *EntryModule {
	return &EntryModule{Handler: h, Redis: rdb, CreatePerMinute: createPerMinute}
}

func (m *EntryModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(m.Redis, middleware.PerMinute(m.CreatePerMinute, middleware.KeyByIPAndPath()))

	rg.POST("/entries", createLimiter, m.Handler.Create)
	rg.GET("/entries", m.Handler.List)
	rg.GET("/entries/latest", m.Handler.Latest)
	rg.GET("/entries/:id", m.Handler.Get)
	rg.PUT("/entries/:id", m.Handler.Update)
	rg.DELETE("/entries/:id", m.Handler.Delete)
}
