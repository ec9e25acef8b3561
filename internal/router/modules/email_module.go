package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/health-planner/internal/interface/http"
	"github.com/oksasatya/health-planner/internal/interface/middleware"
)

type EmailModule struct {
	Handler   *handlers.EmailHandler
	Redis     *redis.Client
	PerMinute int
}

func NewEmailModule(h *handlers.EmailHandler, rdb *redis.Client, perMinute int) *EmailModule {
	return &EmailModule{Handler: h, Redis: rdb, PerMinute: perMinute}
}

func (m *EmailModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(m.Redis, middleware.PerMinute(m.PerMinute, middleware.KeyByIPAndPath()))

	rg.POST("/email/test", limiter, m.Handler.SendTest)
	rg.POST("/entries/:id/email", limiter, m.Handler.Resend)
}
