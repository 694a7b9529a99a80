package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"biaslab/internal/biasapi"
	"biaslab/internal/config"
	"biaslab/internal/history"
	"biaslab/internal/logging"
	"biaslab/internal/session"
)

type commandContext struct {
	configFlag  *string
	baseURLFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, baseURLFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		baseURLFlag: baseURLFlag,
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
		if c.baseURLFlag != nil && strings.TrimSpace(*c.baseURLFlag) != "" {
			cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(*c.baseURLFlag), "/")
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) dialClient() (*biasapi.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	client, err := biasapi.New(cfg.API.BaseURL,
		biasapi.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second))
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (c *commandContext) withClient(fn func(*biasapi.Client) error) error {
	client, err := c.dialClient()
	if err != nil {
		return err
	}
	return wrapServiceError(fn(client), c.config)
}

// newOrchestrator wires a session over the configured service, attaching the
// history store when enabled. The returned cleanup waits for in-flight
// fetches and closes the store.
func (c *commandContext) newOrchestrator() (*session.Orchestrator, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	client, err := c.dialClient()
	if err != nil {
		return nil, nil, err
	}

	opts := []session.Option{
		session.WithArticleLimit(cfg.API.ArticleLimit),
		session.WithHighlightLimit(cfg.API.HighlightLimit),
		session.WithNarrativeOrder(biasapi.Order(cfg.API.NarrativeOrder)),
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open history store: %w", err)
		}
		opts = append(opts, session.WithRecorder(store))
	}

	orch := session.New(client, logger, opts...)
	cleanup := func() {
		orch.Wait()
		if store != nil {
			_ = store.Close()
		}
	}
	return orch, cleanup, nil
}

// wrapServiceError rewrites connection failures into a hint that the analysis
// service is not reachable at the configured address.
func wrapServiceError(err error, cfg *config.Config) error {
	if err == nil {
		return nil
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) || errors.Is(err, syscall.ECONNREFUSED) {
		base := "the configured base URL"
		if cfg != nil {
			base = cfg.API.BaseURL
		}
		return fmt.Errorf("connect to analysis service at %s: %w (is the backend running?)", base, err)
	}
	return err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
