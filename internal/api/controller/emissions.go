package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
)

// GetEmissions returns every persisted activity record ordered by
// descending co2e together with per-kind and grand totals.
func (c *Controller) GetEmissions(ctx echo.Context) error {
	summary, err := c.emissionsService.Summary(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.EmissionsResponse{Emissions: *summary})
}
