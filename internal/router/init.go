package router

import (
	"github.com/oksasatya/health-planner/internal/application"
	"github.com/oksasatya/health-planner/internal/container"
	"github.com/oksasatya/health-planner/internal/domain/plan"
	handlers "github.com/oksasatya/health-planner/internal/interface/http"
	"github.com/oksasatya/health-planner/internal/router/modules"
)

type EntryModuleDeps struct {
	Service *application.EntryService
	Entries *handlers.EntryHandler
	Email   *handlers.EmailHandler
}

func buildEntryDeps() EntryModuleDeps {
	service := application.NewEntryService(
		container.GetEntryRepo(),
		plan.NewGenerator(),
		container.GetPlanNotifier(),
		container.GetPlanQueue(),
		container.GetLogger(),
	)
	return EntryModuleDeps{
		Service: service,
		Entries: handlers.NewEntryHandler(service, container.GetLogger()),
		Email:   handlers.NewEmailHandler(service, container.GetLogger()),
	}
}

type MealModuleDeps struct {
	Service *application.MealService
	Handler *handlers.MealHandler
}

func buildMealDeps() MealModuleDeps {
	service := application.NewMealService(container.GetMealRepo(), container.GetLogger())
	return MealModuleDeps{
		Service: service,
		Handler: handlers.NewMealHandler(service, container.GetLogger()),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	rdb := container.GetRedis()

	entryDeps := buildEntryDeps()
	mealDeps := buildMealDeps()

	r.Add(modules.NewEntryModule(entryDeps.Entries, rdb, cfg.RateLimitCreatePerMin))
	r.Add(modules.NewEmailModule(entryDeps.Email, rdb, cfg.RateLimitCreatePerMin))
	r.Add(modules.NewMealModule(mealDeps.Handler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
}
