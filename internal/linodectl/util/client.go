package util

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/coderanger/linodectl/internal/linodectl/client"
	"github.com/coderanger/linodectl/internal/linodectl/config"
)

// GetClient creates a new API client configured from the given config
func GetClient(cfg *config.Config) (*client.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured - set LINODE_API_KEY or run 'linodectl config set'")
	}

	options := []client.Option{}
	if cfg.Server != "" {
		options = append(options, client.WithBaseURL(cfg.Server))
	}
	if cfg.Timeout > 0 {
		options = append(options, client.WithTimeout(cfg.Timeout))
	}
	if cfg.Debug {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		options = append(options, client.WithLogger(logger))
	}

	c, err := client.NewClient(cfg.APIKey, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return c, nil
}
