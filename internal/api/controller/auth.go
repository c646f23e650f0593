package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
)

func (c *Controller) SignupUser(ctx echo.Context) error {
	request := new(domain.SignupRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	user, token, err := c.authService.Signup(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, token)
	return ctx.JSON(http.StatusOK, domain.AuthResponse{User: user, Message: "user registration successful"})
}

func (c *Controller) LoginUser(ctx echo.Context) error {
	request := new(domain.LoginRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	user, token, err := c.authService.Login(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, token)
	return ctx.JSON(http.StatusOK, domain.AuthResponse{User: user, Message: "user logged in"})
}

func (c *Controller) LogoutUser(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return ctx.JSON(http.StatusOK, map[string]string{"message": "user logged out"})
}

func setAuthCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	})
}
