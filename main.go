package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	config "github.com/drummonds/coursematch/config"
	engine "github.com/drummonds/coursematch/engine"
	"github.com/drummonds/coursematch/webapp"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	config.Logger = Logger
	engine.Logger = Logger
}

// newServer builds the echo instance with every route registered
func newServer(serverConfig config.ServerConfig) *echo.Echo {
	e := echo.New()
	Logger.Info("Echo created")
	serverHandler := engine.ServerHandler{Echo: e, ServerConfig: serverConfig}
	if err := serverHandler.PrepareLogo(); err != nil {
		Logger.Warn("Continuing without rendered logo", "error", err)
	}

	Logger.Info("Setting up go-app WASM UI", "breakpoint", serverConfig.MobileBreakpoint)
	appHandler := webapp.Handler(serverConfig.AppName, serverConfig.MobileBreakpoint)
	serverHandler.RegisterRoutes(appHandler)
	return e
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config", "", "Directory containing serverConfig.toml")
	flag.Parse()

	var searchPaths []string
	if *configDir != "" {
		searchPaths = append(searchPaths, *configDir)
	}
	serverConfig, logger := config.SetupServer(searchPaths...)
	injectGlobals(logger) //inject the logger into all of the packages

	e := newServer(serverConfig)

	if serverConfig.ListenAddrIP == "" {
		Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	Logger.Info("Starting HTTP server")

	// Try to start server with automatic port increment if port is in use
	maxRetries := 5
	startPort := serverConfig.ListenAddrPort
	var startErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		addr := serverConfig.Addr()
		Logger.Info("Attempting to start server", "address", addr, "attempt", attempt+1)

		startErr = e.Start(addr)

		// Check if error is "address already in use"
		if startErr != nil && isAddressInUse(startErr) {
			Logger.Warn("Port already in use, trying next port",
				"port", serverConfig.ListenAddrPort,
				"attempt", attempt+1,
				"max_attempts", maxRetries)

			serverConfig.ListenAddrPort = nextPort(serverConfig.ListenAddrPort)

			if attempt == maxRetries-1 {
				Logger.Error("Failed to find available port after maximum retries",
					"start_port", startPort,
					"end_port", serverConfig.ListenAddrPort,
					"max_retries", maxRetries)
				os.Exit(1)
			}
		} else if startErr != nil {
			// Some other error occurred
			Logger.Error("Failed to start server", "error", startErr)
			os.Exit(1)
		} else {
			break
		}
	}
}

// isAddressInUse checks if the error is due to address already in use
func isAddressInUse(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "address already in use")
}

// nextPort returns the port after the given one, or the same port if it is not numeric
func nextPort(port string) string {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		Logger.Warn("Configured port is not numeric, retrying on the same port", "port", port, "error", err)
		return port
	}
	return strconv.Itoa(portNum + 1)
}
