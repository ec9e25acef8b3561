package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/health-planner/config"
	"github.com/oksasatya/health-planner/internal/domain/entity"
	"github.com/oksasatya/health-planner/internal/domain/plan"
	pginfra "github.com/oksasatya/health-planner/internal/infrastructure/postgres"
	"github.com/oksasatya/health-planner/pkg/helpers"
)

// seed writes a few demo entries and meals straight through the repositories,
// without sending any email.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	entries := pginfra.NewEntryRepository(pool)
	meals := pginfra.NewMealRepository(pool)
	planner := plan.NewGenerator()
	email := "demo@example.com"

	samples := [][2]int64{{45, 170}, {70, 170}, {80, 170}, {95, 170}}
	now := time.Now().UTC().Truncate(time.Microsecond)
	for i, s := range samples {
		w, h := decimal.NewFromInt(s[0]), decimal.NewFromInt(s[1])
		e := &entity.Entry{CreatedAt: now.Add(time.Duration(i-len(samples)) * time.Hour)}
		e.ApplyPlan(email, w, h, planner.Generate(w, h))
		if err := entries.Create(ctx, e); err != nil {
			logger.Fatalf("failed to seed entry: %v", err)
		}
		helpers.LogInfo(logger, "seeded entry", logrus.Fields{"entry_id": e.ID, "category": e.BMICategory})
	}

	today := entity.DateOnly(time.Now())
	demoMeals := []entity.Meal{
		{MealName: "Oatmeal with berries", Calories: 320, Date: today, UserEmail: email},
		{MealName: "Grilled chicken salad", Calories: 450, Date: today, UserEmail: email},
		{MealName: "Salmon with vegetables", Calories: 520, Date: today.AddDate(0, 0, -1)},
	}
	for i := range demoMeals {
		demoMeals[i].CreatedAt = now
		if err := meals.Create(ctx, &demoMeals[i]); err != nil {
			logger.Fatalf("failed to seed meal: %v", err)
		}
	}
	logger.WithField("count", len(demoMeals)).Info("seeded meals")
}
