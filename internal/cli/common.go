package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/pushswap/internal/config"
	"github.com/danieljhkim/pushswap/internal/engine"
	"github.com/danieljhkim/pushswap/internal/logging"
)

// app carries the state shared by the commands of one tree.
type app struct {
	json bool

	cfg *config.Config
	log logr.Logger
}

func newApp() *app {
	return &app{log: logr.Discard()}
}

// setup resolves settings from flags, environment and config file, and
// builds the logger. It runs once per command invocation.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load(config.NewViper(), cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	if cfg.File != "" {
		a.log.V(1).Info("loaded config", "file", cfg.File)
	}
	return nil
}

// newEngine creates an engine backed by the embedded tables.
func (a *app) newEngine() (*engine.Engine, error) {
	eng, err := engine.NewDefault(a.log.WithName("engine"))
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return eng, nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
