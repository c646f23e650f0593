package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glen-sharp/emission-calculator-app/internal/ingest"
	"github.com/glen-sharp/emission-calculator-app/internal/service/auth"
	"github.com/glen-sharp/emission-calculator-app/internal/service/emissions"
)

type Controller struct {
	emissionsService *emissions.Service
	authService      *auth.Service
	orchestrator     *ingest.Orchestrator
}

func NewController(emissionsService *emissions.Service, authService *auth.Service, orchestrator *ingest.Orchestrator) *Controller {
	return &Controller{
		emissionsService: emissionsService,
		authService:      authService,
		orchestrator:     orchestrator,
	}
}

func Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
