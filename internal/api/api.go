package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"

	"github.com/glen-sharp/emission-calculator-app/internal/api/controller"
	"github.com/glen-sharp/emission-calculator-app/internal/ingest"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/logger"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store"
	"github.com/glen-sharp/emission-calculator-app/internal/service/auth"
	"github.com/glen-sharp/emission-calculator-app/internal/service/emissions"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router exposes the underlying echo instance for tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

func NewAPIService(store store.Store, orchestrator *ingest.Orchestrator) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	svc.router.GET("/healthz", controller.Health)
	svc.router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cntrl := controller.NewController(
		emissions.NewService(store),
		auth.NewService(store),
		orchestrator,
	)

	api := svc.router.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.SignupUser)
	authGroup.POST("/login", cntrl.LoginUser)
	authGroup.GET("/logout", cntrl.LogoutUser)

	api.GET("/emissions", cntrl.GetEmissions, svc.AuthMiddleware)
	api.POST("/ingest", cntrl.RunIngest, svc.AuthMiddleware)

	return svc, nil
}
