package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "serverConfig.toml"), []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return dir
}

func TestSetupServerReadsFile(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `
[serverConfig]
ServerAddr = "127.0.0.1"
ServerPort = "9100"

[frontend]
AppName = "Campus"
MobileBreakpoint = 640
`)

	serverConfig, logger := SetupServer(dir)
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
	if serverConfig.Addr() != "127.0.0.1:9100" {
		t.Errorf("Addr() = %q", serverConfig.Addr())
	}
	if serverConfig.AppName != "Campus" {
		t.Errorf("AppName = %q", serverConfig.AppName)
	}
	if serverConfig.MobileBreakpoint != 640 {
		t.Errorf("MobileBreakpoint = %d, want 640", serverConfig.MobileBreakpoint)
	}
	if !filepath.IsAbs(serverConfig.LogoPath) {
		t.Errorf("LogoPath %q is not absolute", serverConfig.LogoPath)
	}
}

func TestSetupServerInvalidBreakpoint(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `
[frontend]
MobileBreakpoint = -5
`)

	serverConfig, _ := SetupServer(dir)
	if serverConfig.MobileBreakpoint != 768 {
		t.Errorf("MobileBreakpoint = %d, want fallback 768", serverConfig.MobileBreakpoint)
	}
	if serverConfig.ListenAddrPort != "8000" {
		t.Errorf("ListenAddrPort = %q, want default 8000", serverConfig.ListenAddrPort)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"Info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Error":   slog.LevelError,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
