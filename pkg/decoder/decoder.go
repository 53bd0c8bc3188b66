// Package decoder is the public entry point for extracting the page images
// of a comic container (ZIP/CBZ) or PDF document into a numbered sequence of
// files.
package decoder

import (
	"github.com/joho/godotenv"

	"github.com/thanadolps/Comic-Encoder/internal/config"
	"github.com/thanadolps/Comic-Encoder/internal/domain"
	"github.com/thanadolps/Comic-Encoder/internal/extract"
	"github.com/thanadolps/Comic-Encoder/internal/observability"
)

// Re-export option and progress types for the public API.
type (
	Options      = extract.Options
	ProgressFunc = domain.ProgressFunc
	DomainError  = domain.DomainError
	ErrorType    = domain.ErrorType
)

// Client decodes comic containers into page image files.
type Client struct {
	service *extract.Service
}

// NewClient creates a decoder client configured from the optional YAML config
// file at cfgPath (empty for defaults) plus environment overrides.
func NewClient(cfgPath string) (*Client, error) {
	// Pick up a local .env if one exists.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	return NewClientWithLogger(log), nil
}

// NewClientWithLogger creates a decoder client reporting through log. This is
// the constructor to use when the caller owns logging.
func NewClientWithLogger(log *observability.Logger) *Client {
	return &Client{service: extract.NewService(log)}
}

// Decode extracts every page image of the container named by opts and
// returns the created file paths in reading order, or a *DomainError
// describing the exact failure. The call is synchronous and not cancellable;
// on failure, files written so far are left in place.
func (c *Client) Decode(opts Options) ([]string, error) {
	return c.service.Decode(opts)
}
