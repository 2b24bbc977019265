package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/drummonds/coursematch/navigation"
	"github.com/spf13/viper"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ServerConfig contains all of the server settings defined in the TOML file
type ServerConfig struct {
	ListenAddrIP   string
	ListenAddrPort string
	FrontEndConfig
}

// FrontEndConfig stores all of the frontend settings
type FrontEndConfig struct {
	AppName          string
	MobileBreakpoint int
	LogoPath         string //absolute path to the source logo image
}

func setDefaults() {
	viper.SetDefault("serverConfig.ServerAddr", "")
	viper.SetDefault("serverConfig.ServerPort", "8000")
	viper.SetDefault("frontend.AppName", "CourseMatch")
	viper.SetDefault("frontend.MobileBreakpoint", navigation.DefaultBreakpoint)
	viper.SetDefault("frontend.LogoPath", "webapp/images/logo.png")
	viper.SetDefault("logging.Level", "warn")
	viper.SetDefault("logging.OutputPath", "stdout")
	viper.SetDefault("logging.LogFileLocation", "coursematch.log")
}

// SetupServer does the initial configuration. Extra search paths are tried before config/ and the working directory.
func SetupServer(searchPaths ...string) (ServerConfig, *slog.Logger) {
	var serverConfigLive ServerConfig
	setDefaults()
	for _, path := range searchPaths {
		viper.AddConfigPath(path)
	}
	viper.AddConfigPath("config/")
	viper.AddConfigPath(".")
	viper.SetConfigName("serverConfig")
	viper.SetConfigType("toml")
	readErr := viper.ReadInConfig() // Find and read the config file

	logger := setupLogging()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(readErr, &notFound) {
			logger.Warn("No config file found, using defaults")
		} else {
			logger.Error("Unable to read config file, using defaults", "error", readErr)
		}
	} else {
		logger.Info("Config loaded", "file", viper.ConfigFileUsed())
	}
	logger.Info("Base Logger is setup!")

	serverConfigLive.ListenAddrPort = viper.GetString("serverConfig.ServerPort")
	serverConfigLive.ListenAddrIP = viper.GetString("serverConfig.ServerAddr")
	serverConfigLive.FrontEndConfig = setupFrontEnd(logger)
	return serverConfigLive, logger
}

func setupFrontEnd(logger *slog.Logger) FrontEndConfig {
	var frontEndConfigLive FrontEndConfig
	frontEndConfigLive.AppName = viper.GetString("frontend.AppName")
	frontEndConfigLive.MobileBreakpoint = viper.GetInt("frontend.MobileBreakpoint")
	if frontEndConfigLive.MobileBreakpoint <= 0 {
		logger.Warn("Invalid mobile breakpoint, falling back to default",
			"configured", frontEndConfigLive.MobileBreakpoint,
			"default", navigation.DefaultBreakpoint)
		frontEndConfigLive.MobileBreakpoint = navigation.DefaultBreakpoint
	}
	logoPath, err := filepath.Abs(filepath.ToSlash(viper.GetString("frontend.LogoPath")))
	if err != nil {
		logger.Error("Failed creating absolute path for logo", "error", err)
		logoPath = viper.GetString("frontend.LogoPath")
	}
	frontEndConfigLive.LogoPath = logoPath
	return frontEndConfigLive
}

// Addr returns the listen address in host:port form
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.ListenAddrIP, s.ListenAddrPort)
}

func setupLogging() *slog.Logger {
	return slog.New(slog.NewTextHandler(logOutput(), &slog.HandlerOptions{
		Level: parseLevel(viper.GetString("logging.Level")),
	}))
}

func parseLevel(logLevelString string) slog.Level {
	switch logLevelString {
	case "Debug", "debug":
		return slog.LevelDebug
	case "Info", "info":
		return slog.LevelInfo
	case "Warn", "warn":
		return slog.LevelWarn
	case "Error", "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func logOutput() io.Writer {
	if viper.GetString("logging.OutputPath") != "file" {
		return os.Stdout
	}
	logPath, err := filepath.Abs(filepath.ToSlash(viper.GetString("logging.LogFileLocation")))
	if err != nil {
		fmt.Println("Unable to create log file path: ", err)
		logPath = "output.log"
	}
	logFile, err := os.Create(logPath)
	if err != nil {
		fmt.Println("Unable to create log file: ", err)
		return os.Stdout
	}
	fmt.Println("Logging to file: ", logPath)
	return logFile
}
