package api

import (
	"github.com/labstack/echo/v4"

	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/utils"
)

// AuthMiddleware validates the JWT auth cookie and stores the user ID on
// the request context.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)

		return next(ctx)
	}
}
