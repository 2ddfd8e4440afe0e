package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"unitshift/internal/config"
	"unitshift/internal/converter"
	"unitshift/internal/history"
	"unitshift/internal/logging"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	logCloser  io.Closer
	requestID  string
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
		requestID:  uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// configValue returns the loaded config or defaults when loading failed.
func (c *commandContext) configValue() *config.Config {
	if cfg, err := c.ensureConfig(); err == nil {
		return cfg
	}
	cfg := config.Default()
	return &cfg
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// log returns the invocation logger tagged with the request correlation ID.
// Logger construction failures fall back to a console logger on stderr.
func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		base, closer, err := logging.NewFromConfig(c.configValue())
		if err != nil {
			base, closer, _ = logging.New(logging.Options{Level: "warn"})
			base.Warn("file logging unavailable", logging.Error(err))
		}
		c.logCloser = closer
		ctx := logging.WithRequestID(context.Background(), c.requestID)
		c.logger = logging.WithContext(ctx, base)
	})
	return c.logger
}

// close releases the log file opened by log, if any.
func (c *commandContext) close() error {
	if c.logCloser == nil {
		return nil
	}
	return c.logCloser.Close()
}

func (c *commandContext) engine() *converter.Engine {
	cfg := c.configValue()
	return converter.NewEngine(
		converter.WithLogger(c.log()),
		converter.WithPrecision(cfg.Format.Precision),
		converter.WithStrict(cfg.Engine.Strict),
	)
}

// withHistory opens the history database for the duration of fn.
func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	store, err := history.Open(c.configValue())
	if err != nil {
		if errors.Is(err, history.ErrDisabled) {
			return errors.New("history is disabled (set history.enabled = true in the config file)")
		}
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// recordConversion stores a successful conversion. Failures are logged and
// never fail the command.
func (c *commandContext) recordConversion(cmd *cobra.Command, entry history.Entry) {
	cfg := c.configValue()
	if !cfg.History.Enabled {
		return
	}
	logger := logging.NewComponentLogger(c.log(), "history")
	err := c.withHistory(func(store *history.Store) error {
		if _, err := store.Record(cmd.Context(), entry); err != nil {
			return err
		}
		_, err := store.Prune(cmd.Context(), cfg.History.MaxEntries)
		if errors.Is(err, history.ErrLocked) {
			logger.Debug("skipped history pruning", logging.Error(err))
			return nil
		}
		return err
	})
	if err != nil {
		logging.WarnWithContext(logger, "conversion not recorded", "history_write_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check history.path permissions or disable history"),
		)
	}
}

func (c *commandContext) colorize(w io.Writer) bool {
	switch c.configValue().Display.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
