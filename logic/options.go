package logic

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a Cart at construction.
type Option func(*Cart)

// WithLogger sets the logger used for mutation logs. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Cart) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithID overrides the generated cart id, e.g. to resume a session the caller
// persisted elsewhere.
func WithID(id uuid.UUID) Option {
	return func(c *Cart) {
		c.id = id
	}
}
