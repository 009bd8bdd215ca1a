package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	authform "github.com/goliatone/go-authform"
	"github.com/goliatone/go-authform/pkg/config"
)

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if storeFlag != "" {
		cfg.Store.Driver = storeFlag
	}
	if pathFlag != "" {
		cfg.Store.Path = pathFlag
	}
	if presetFlag != "" {
		cfg.Rules.Preset = presetFlag
		cfg.Rules.SpecialCharacters = ""
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// openApp builds the app with logging on stderr.
func openApp(cmd *cobra.Command) (*authform.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger(cmd.ErrOrStderr(), verbose)
	app, err := authform.New(cfg, authform.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}
	logger.Debug("authform ready", "store", cfg.Store.Driver, "preset", app.Rules().Preset)
	return app, nil
}

// signalContext cancels on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
