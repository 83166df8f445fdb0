package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"roster-system/pkg/config"
	"roster-system/pkg/filestorage"
	"roster-system/pkg/middleware"
	"roster-system/pkg/service"
)

// InitRouter wires the API: a public auth group and a token-guarded roster
// group.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	validate *validator.Validate,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	runAuthRouter(api, jwtSvc, validate, logger, cfg)
	runRosterRouter(api, dbConn, redisClient, validate, fileStorage, logger, cfg, authMW)
}
