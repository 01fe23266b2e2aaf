package webserver

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/compazz/stockbridge/internal/app"
)

var server *WebServer

type WebServer struct {
	root *echo.Echo
	appx *app.Application
}

// Init creates the singleton web server bound to the application. Route
// registration (adminapi) happens after Init and before Listen.
func Init(appx *app.Application) {
	server = &WebServer{
		root: echo.New(),
		appx: appx,
	}
	server.root.HideBanner = true
	server.root.Use(middleware.Recover())
	server.root.Use(injectDB(appx))
	server.root.Use(requestLogger())
}

// Listen blocks serving the admin API.
func Listen() error {
	cfg := server.appx.Config().Web
	return server.root.Start(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port))
}

// injectDB makes the gorm handle available to handlers via context.
func injectDB(appx *app.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("db", appx.DB())
			return next(c)
		}
	}
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)))
			return err
		}
	}
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET("/api"+path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST("/api"+path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT("/api"+path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE("/api"+path, h)
}
