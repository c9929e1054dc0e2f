package middleware

import (
	"crypto/subtle"

	"eventradar/config"
	domainerrors "eventradar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// AdminAuth guards the admin routes with the static token from config.
// Clients send it as "Authorization: Bearer <token>".
type AdminAuth struct {
	token string
}

// NewAdminAuth creates the admin token check
func NewAdminAuth(cfg *config.Config) *AdminAuth {
	return &AdminAuth{token: cfg.Admin.Token}
}

// Enabled reports whether a token is configured. Without one the admin routes are not served.
func (a *AdminAuth) Enabled() bool {
	return a.token != ""
}

// Authenticate returns the key-auth middleware.
func (a *AdminAuth) Authenticate() echo.MiddlewareFunc {
	return echomiddleware.KeyAuthWithConfig(echomiddleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(key string, _ echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(a.token)) == 1, nil
		},
		ErrorHandler: func(error, echo.Context) error {
			return domainerrors.ErrUnauthorized
		},
	})
}
