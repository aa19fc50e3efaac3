package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/delivery"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/account"
)

type AuthMiddleware struct {
	auth    domain.AuthUsecase
	account account.Usecase
}

func New(auth domain.AuthUsecase, account account.Usecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth:    auth,
		account: account,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

// IsAdmin rechecks the role against the account store instead of trusting
// the role claim baked into the token, so a demoted admin loses access as
// soon as the account record changes.
func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			userId := c.Get("userId").(domain.UserId)

			if res, err := m.account.IsAdmin(ctx, userId); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if !res {
				return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, "require admin privilege")
			} else {
				return next(c)
			}
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if claims, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("userId", domain.UserId(claims.UserId))
		return true, nil
	}
}
