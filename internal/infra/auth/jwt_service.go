// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"gamehub/config"
	"gamehub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const tokenIssuer = "gamehub"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing operator tokens.
	ttl    time.Duration // Time-to-live for operator tokens.
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The issuer is the service name, so a distributor token is refused by the publisher.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin == nil || cfg.Admin.TokenSecret == "" {
		return nil, errors.New("admin token secret must be provided")
	}

	issuer := tokenIssuer
	if cfg.Env.ServiceName != "" {
		issuer = tokenIssuer + "/" + cfg.Env.ServiceName
	}

	return &jwtService{
		secret: cfg.Admin.TokenSecret,
		ttl:    cfg.Admin.TokenTTL,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed HS256 access token for subject.
func (s *jwtService) GenerateToken(subject string, roles []string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature, issuer and expiry of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// TokenTTL returns the configured lifetime of operator tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
