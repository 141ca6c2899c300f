package routes

import (
	"log"

	"intern-genie/internal/config"
	"intern-genie/internal/database"
	"intern-genie/internal/delivery/http/handler"
	"intern-genie/internal/delivery/http/middleware"
	"intern-genie/internal/infrastructure/cache"
	"intern-genie/internal/infrastructure/upstream"
	"intern-genie/internal/pkg/jwt"
	"intern-genie/internal/repository"
	"intern-genie/internal/usecase"
	"intern-genie/internal/usecase/insights"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg      config.Config
	db       database.DB
	cache    *cache.Redis
	upstream upstream.Client
	logger   *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis, up upstream.Client, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: c, upstream: up, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	jwtSvc := jwt.NewHMACService(r.cfg.JWT.Secret, r.cfg.JWT.ExpiresIn)

	candidateRepo := repository.NewPostgresCandidateRepository(r.db)
	internshipRepo := repository.NewPostgresInternshipRepository(r.db)
	behaviorRepo := repository.NewPostgresBehaviorRepository(r.db)
	applicationRepo := repository.NewPostgresApplicationRepository(r.db)

	authUC := usecase.NewAuthUsecase(candidateRepo, jwtSvc)
	recommendationUC := usecase.NewRecommendationUsecase(candidateRepo, internshipRepo, r.cache, cache.DefaultTTLFromEnv())
	insightsSvc := insights.NewService(behaviorRepo, applicationRepo, nil)

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	protected := app.Group("", authMw.Middleware())

	handler.NewHealthHandler(r.cfg.App.AppName).RegisterRoutes(app)
	handler.NewAuthHandler(authUC).RegisterRoutes(app)
	handler.NewRecommendationHandler(recommendationUC).RegisterRoutes(protected)
	handler.NewInsightsHandler(insightsSvc).RegisterRoutes(app, protected)
	handler.NewProxyHandler(r.upstream).RegisterRoutes(app)
}
