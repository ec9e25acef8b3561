package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/health-planner/internal/interface/middleware"
)

type DebugModule struct {
	Redis *redis.Client
}

func NewDebugModule(rdb *redis.Client) *DebugModule { return &DebugModule{Redis: rdb} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// expvar counters, rate-limited per IP unless the caller is on a private network
	l := middleware.PerMinute(120, middleware.KeyByIP())
	l.Allow = middleware.AllowPrivateIP()
	rg.GET("/debug/vars", middleware.RateLimit(m.Redis, l), gin.WrapH(expvar.Handler()))
}
