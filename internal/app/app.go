package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp builds an App writing results to outW and log records to logW.
// The two are kept apart so results on stdout stay machine-checkable.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Config returns the configuration the App was built with.
func (a *App) Config() *Config {
	return a.config
}
