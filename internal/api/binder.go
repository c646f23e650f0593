package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// binder binds and then validates in one step, so controllers only need a
// single Bind call per request body.
type binder struct {
	base echo.DefaultBinder
}

func NewBinder() echo.Binder {
	return &binder{}
}

func (b *binder) Bind(i interface{}, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.Validate(i)
}
