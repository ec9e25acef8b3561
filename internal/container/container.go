package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/health-planner/config"
	"github.com/oksasatya/health-planner/internal/application"
	"github.com/oksasatya/health-planner/internal/domain/repository"
	"github.com/oksasatya/health-planner/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/health-planner/internal/infrastructure/postgres"
	"github.com/oksasatya/health-planner/pkg/helpers"
	"github.com/oksasatya/health-planner/pkg/mailer"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	mailgunClient *mailer.Mailgun
	rabbitPub     *helpers.RabbitPublisher

	entryRepo repository.EntryRepository
	mealRepo  repository.MealRepository
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetMailgun(m *mailer.Mailgun)            { mailgunClient = m }
func GetMailgun() *mailer.Mailgun             { return mailgunClient }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

// GetEntryRepo returns the Postgres repository when a pool is set, otherwise
// a process-wide in-memory one.
func GetEntryRepo() repository.EntryRepository {
	if entryRepo == nil {
		if pgPool != nil {
			entryRepo = pginfra.NewEntryRepository(pgPool)
		} else {
			entryRepo = memory.NewEntryRepository()
		}
	}
	return entryRepo
}

func GetMealRepo() repository.MealRepository {
	if mealRepo == nil {
		if pgPool != nil {
			mealRepo = pginfra.NewMealRepository(pgPool)
		} else {
			mealRepo = memory.NewMealRepository()
		}
	}
	return mealRepo
}

// GetPlanNotifier sends through Mailgun when it is configured and sending is
// enabled; otherwise plans are only logged.
func GetPlanNotifier() application.PlanNotifier {
	if mailgunClient != nil && cfg != nil && cfg.MailSendEnabled {
		return mailer.NewPlanMailer(mailgunClient, cfg)
	}
	return mailer.LogNotifier{Logger: logger}
}

// GetPlanQueue is nil when RabbitMQ is not connected.
func GetPlanQueue() application.PlanQueue {
	if rabbitPub == nil {
		return nil
	}
	return mailer.NewPlanQueue(rabbitPub, cfg)
}
