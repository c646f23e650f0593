package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RunIngest triggers a full ingestion run over the configured CSV
// directories and returns its summary. A concurrent trigger while a run
// is in flight responds 409.
func (c *Controller) RunIngest(ctx echo.Context) error {
	summary, err := c.orchestrator.Run(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}
