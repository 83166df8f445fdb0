package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"roster-system/internal/controllers"
	"roster-system/internal/repositories"
	"roster-system/internal/services"
	"roster-system/pkg/config"
	"roster-system/pkg/filestorage"
	"roster-system/pkg/middleware"
)

func runRosterRouter(
	api *echo.Group,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	validate *validator.Validate,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
	cfg *config.Config,
	authMW *middleware.AuthMiddleware,
) {
	rosterRepo := repositories.NewRosterRepository(dbConn, logger)
	attritionRepo := repositories.NewAttritionRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	ingestionSvc := services.NewIngestionService(rosterRepo, attritionRepo, validate, logger)
	reader := services.NewRosterReader(logger)

	rosterCtrl := controllers.NewRosterController(ingestionSvc, reader, rosterRepo, fileStorage, cacheRepo, cfg, logger)

	rosterGroup := api.Group("/roster", authMW.Auth)
	{
		rosterGroup.POST("/import", rosterCtrl.Import)
		rosterGroup.GET("/summary", rosterCtrl.Summary)
		rosterGroup.GET("/export", rosterCtrl.Export)
	}
}
