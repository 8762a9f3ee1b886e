package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the middleware chain and every route of the service.
func NewRouter(dashboard *DashboardHandler, allowedOrigins []string, logger *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(LoggingMiddleware(logger))

	health := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
	e.GET("/", health)
	e.GET("/health", health)

	api := e.Group("/api", BearerAuth(logger))
	api.GET("/user", dashboard.GetUser)
	api.GET("/repositories", dashboard.GetRepositories)
	api.GET("/pull-requests", dashboard.GetPullRequests)
	api.GET("/pull-requests/:owner/:repo/:number/reviews", dashboard.GetPullRequestReviews)
	api.GET("/stats", dashboard.GetStats)

	return e
}
