package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"roster-system/internal/controllers"
	"roster-system/pkg/config"
	"roster-system/pkg/service"
)

func runAuthRouter(api *echo.Group, jwtSvc service.JWTService, validate *validator.Validate, logger *zap.Logger, cfg *config.Config) {
	authCtrl := controllers.NewAuthController(jwtSvc, cfg.Auth.AdminPasswordHash, validate, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
	}
}
