package engine

import (
	"bytes"
	"fmt"
	"net/http"
	"os"

	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"
)

// Logo rendition size shown in the navigation bar
const (
	LogoWidth  = 85
	LogoHeight = 60
)

// PrepareLogo renders the configured logo down to the navigation bar size and keeps it in memory
func (serverHandler *ServerHandler) PrepareLogo() error {
	logo, err := renderLogo(serverHandler.ServerConfig.LogoPath)
	if err != nil {
		Logger.Error("Unable to render logo, serving source file instead", "path", serverHandler.ServerConfig.LogoPath, "error", err)
		return err
	}
	serverHandler.logo = logo
	Logger.Info("Logo rendered", "path", serverHandler.ServerConfig.LogoPath, "bytes", len(logo))
	return nil
}

func renderLogo(path string) ([]byte, error) {
	source, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	resized := imaging.Fit(source, LogoWidth, LogoHeight, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode logo: %w", err)
	}
	return buf.Bytes(), nil
}

// GetLogo serves the navigation bar logo
func (serverHandler *ServerHandler) GetLogo(c echo.Context) error {
	if serverHandler.logo != nil {
		return c.Blob(http.StatusOK, "image/png", serverHandler.logo)
	}
	if _, err := os.Stat(serverHandler.ServerConfig.LogoPath); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "logo not found")
	}
	return c.File(serverHandler.ServerConfig.LogoPath)
}
