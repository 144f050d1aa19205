package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamehub/config"
	"gamehub/internal/delivery/http/validator"
	domainerrors "gamehub/internal/domain/errors"
	mockService "gamehub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPasswordHash = "$2a$04$hash"

type authFixtures struct {
	hasher   *mockService.MockPasswordHasher
	tokenSvc *mockService.MockTokenService
	handler  *AuthHandler
}

func createAuthFixtures(t *testing.T, passwordHash string) authFixtures {
	cfg := &config.Config{Admin: &config.AdminConfig{Username: "admin", PasswordHash: passwordHash}}
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)

	return authFixtures{
		hasher:   hasher,
		tokenSvc: tokenSvc,
		handler: NewAuthHandler(AuthHandlerParams{
			Config:   cfg,
			Hasher:   hasher,
			TokenSvc: tokenSvc,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
	}
}

func loginContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	fx := createAuthFixtures(t, testPasswordHash)
	fx.hasher.EXPECT().Check("secret", testPasswordHash).Return(true)
	fx.tokenSvc.EXPECT().GenerateToken("admin", []string{"operator"}).Return("signed-token", nil)
	fx.tokenSvc.EXPECT().TokenTTL().Return(time.Hour)

	c, rec := loginContext(`{"username":"admin","password":"secret"}`)
	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body.Data.AccessToken)
	assert.Equal(t, "Bearer", body.Data.TokenType)
	assert.Equal(t, int64(3600), body.Data.ExpiresIn)
}

func TestAuthHandler_Login_Refused(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check bool
	}{
		{name: "wrong password", body: `{"username":"admin","password":"nope"}`, check: false},
		{name: "wrong username", body: `{"username":"root","password":"secret"}`, check: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createAuthFixtures(t, testPasswordHash)
			fx.hasher.EXPECT().Check(mock.AnythingOfType("string"), testPasswordHash).Return(tt.check)

			c, _ := loginContext(tt.body)
			err := fx.handler.Login(c)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthHandler_Login_NoPasswordConfigured(t *testing.T) {
	fx := createAuthFixtures(t, "")

	c, _ := loginContext(`{"username":"admin","password":"secret"}`)
	err := fx.handler.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.hasher.AssertNotCalled(t, "Check")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	fx := createAuthFixtures(t, testPasswordHash)

	c, _ := loginContext(`{"username":"admin"}`)
	err := fx.handler.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	fx := createAuthFixtures(t, testPasswordHash)

	c, _ := loginContext(`{"username":`)
	err := fx.handler.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrParse)
}
