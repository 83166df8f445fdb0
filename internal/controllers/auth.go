package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"roster-system/internal/dto"
	apperrors "roster-system/pkg/errors"
	"roster-system/pkg/service"
	"roster-system/pkg/utils"
)

type AuthController struct {
	jwtService        service.JWTService
	adminPasswordHash string
	validate          *validator.Validate
	logger            *zap.Logger
}

func NewAuthController(jwtSvc service.JWTService, adminPasswordHash string, validate *validator.Validate, logger *zap.Logger) *AuthController {
	return &AuthController{
		jwtService:        jwtSvc,
		adminPasswordHash: adminPasswordHash,
		validate:          validate,
		logger:            logger,
	}
}

// Login exchanges the operator password for a bearer token.
func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err), ctrl.logger)
	}
	if err := ctrl.validate.Struct(payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if ctrl.adminPasswordHash == "" {
		ctrl.logger.Error("login rejected: ADMIN_PASSWORD_HASH is not configured")
		return utils.ErrorResponse(c, apperrors.ErrInvalidCredentials, ctrl.logger)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ctrl.adminPasswordHash), []byte(payload.Password)); err != nil {
		ctrl.logger.Warn("login rejected: password mismatch")
		return utils.ErrorResponse(c, apperrors.ErrInvalidCredentials, ctrl.logger)
	}

	token, err := ctrl.jwtService.GenerateToken("roster-admin")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, dto.LoginResponseDTO{AccessToken: token}, "authenticated", http.StatusOK)
}
