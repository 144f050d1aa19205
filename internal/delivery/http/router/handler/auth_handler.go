package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"gamehub/config"
	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/delivery/http/response"
	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// AuthHandler logs the operator in against the configured credentials.
type AuthHandler struct {
	admin    *config.AdminConfig
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Config   *config.Config
	Hasher   service.PasswordHasher
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	admin := params.Config.Admin
	if admin == nil {
		admin = &config.AdminConfig{}
	}

	return &AuthHandler{
		admin:    admin,
		hasher:   params.Hasher,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// Login checks the username and bcrypt password, then issues an operator token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrParse, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	// An unset hash disables login altogether
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.admin.Username)) == 1
	if h.admin.PasswordHash == "" || !h.hasher.Check(req.Password, h.admin.PasswordHash) || !userOK {
		logger.Warn("Admin login refused", slog.String("username", req.Username))

		return domainerrors.ErrInvalidCredentials
	}

	token, err := h.tokenSvc.GenerateToken(req.Username, entity.Roles{entity.RoleOperator}.ToStrings())
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	logger.Info("Admin logged in", slog.String("username", req.Username))

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokenSvc.TokenTTL().Seconds()),
	})
}
