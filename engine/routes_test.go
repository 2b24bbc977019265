package engine

import (
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/drummonds/coursematch/config"
	"github.com/labstack/echo/v4"
)

func TestMain(m *testing.M) {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

// setupTestServer creates a handler with the about and logo routes configured
func setupTestServer(t *testing.T, logoPath string) (*echo.Echo, *ServerHandler) {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	serverHandler := &ServerHandler{
		Echo: e,
		ServerConfig: config.ServerConfig{
			ListenAddrPort: "8000",
			FrontEndConfig: config.FrontEndConfig{
				AppName:          "CourseMatch",
				MobileBreakpoint: 768,
				LogoPath:         logoPath,
			},
		},
	}
	e.GET("/api/about", serverHandler.GetAboutInfo)
	e.GET("/images/logo.png", serverHandler.GetLogo)
	return e, serverHandler
}

func TestGetAboutInfo(t *testing.T) {
	e, _ := setupTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/about", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var about aboutInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &about); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if about.Name != "CourseMatch" || about.MobileBreakpoint != 768 {
		t.Errorf("unexpected about info: %+v", about)
	}
	if len(about.Links) != 3 || about.Links[1].Href != "/courses" {
		t.Errorf("unexpected links: %+v", about.Links)
	}
}

func TestGetLogoRendered(t *testing.T) {
	logoPath, err := filepath.Abs("../webapp/images/logo.png")
	if err != nil {
		t.Fatal(err)
	}
	e, serverHandler := setupTestServer(t, logoPath)
	if err := serverHandler.PrepareLogo(); err != nil {
		t.Fatalf("PrepareLogo failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/images/logo.png", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("response is not a png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > LogoWidth || bounds.Dy() > LogoHeight {
		t.Errorf("logo is %dx%d, want at most %dx%d", bounds.Dx(), bounds.Dy(), LogoWidth, LogoHeight)
	}
}

func TestGetLogoMissing(t *testing.T) {
	e, serverHandler := setupTestServer(t, filepath.Join(t.TempDir(), "missing.png"))
	if err := serverHandler.PrepareLogo(); err == nil {
		t.Fatal("expected PrepareLogo to fail for a missing file")
	}

	req := httptest.NewRequest(http.MethodGet, "/images/logo.png", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
