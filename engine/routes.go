package engine

import (
	"log/slog"
	"net/http"

	"github.com/drummonds/coursematch/config"
	"github.com/drummonds/coursematch/navigation"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// Version is set at build time via ldflags
var Version = "dev"

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	Echo         *echo.Echo
	ServerConfig config.ServerConfig

	logo []byte
}

type aboutInfo struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	MobileBreakpoint int               `json:"mobileBreakpoint"`
	Links            []navigation.Link `json:"links"`
}

// GetAboutInfo returns information about the application configuration
func (serverHandler *ServerHandler) GetAboutInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, aboutInfo{
		Name:             serverHandler.ServerConfig.AppName,
		Version:          Version,
		MobileBreakpoint: serverHandler.ServerConfig.MobileBreakpoint,
		Links:            navigation.Links(),
	})
}

// RegisterRoutes wires static assets, the API and the go-app handler onto echo.
// The go-app handler is the catch-all and must be registered last.
func (serverHandler *ServerHandler) RegisterRoutes(appHandler http.Handler) {
	e := serverHandler.Echo
	e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))

	// Serve wasm_exec.js (go-app expects it here)
	e.GET("/wasm_exec.js", func(c echo.Context) error {
		return c.File("web/wasm_exec.js")
	})

	// Register go-app specific resources
	e.GET("/app.js", echo.WrapHandler(appHandler))
	e.GET("/app.css", echo.WrapHandler(appHandler))
	e.GET("/manifest.webmanifest", echo.WrapHandler(appHandler))

	// Serve static assets
	e.Static("/web", "web")
	e.File("/webapp/webapp.css", "webapp/webapp.css")
	e.GET("/images/logo.png", serverHandler.GetLogo)

	e.GET("/api/about", serverHandler.GetAboutInfo)

	// Serve go-app handler for all other routes (must be last)
	e.Any("/*", echo.WrapHandler(appHandler))
}
