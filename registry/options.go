package registry

import (
	"errors"

	"github.com/arloliu/ctxdict/format"
	"github.com/arloliu/ctxdict/internal/options"
	"github.com/arloliu/ctxdict/logger"
)

// DefaultConcurrency is the number of models loaded at once.
const DefaultConcurrency = 4

type config struct {
	logger      *logger.Logger
	concurrency int
	suffix      string
	only        map[string]bool
}

func defaultConfig() *config {
	return &config{
		logger:      logger.NoopLogger(),
		concurrency: DefaultConcurrency,
		suffix:      format.ModelSuffix,
	}
}

// Option configures Load.
type Option = options.Option[*config]

// WithRegistryLogger sets the logger for load and query events.
func WithRegistryLogger(l *logger.Logger) Option {
	return options.NoError(func(c *config) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithConcurrency sets how many models are fetched and opened in parallel.
func WithConcurrency(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return errors.New("concurrency must be positive")
		}
		c.concurrency = n

		return nil
	})
}

// WithSuffix sets the file name suffix that marks a model. Packaged models
// carry a compression extension after it.
func WithSuffix(suffix string) Option {
	return options.New(func(c *config) error {
		if suffix == "" {
			return errors.New("model suffix must not be empty")
		}
		c.suffix = suffix

		return nil
	})
}

// WithIDs restricts loading to the given dictionary ids. Ids without a
// matching model are ignored.
func WithIDs(ids ...string) Option {
	return options.NoError(func(c *config) {
		c.only = make(map[string]bool, len(ids))
		for _, id := range ids {
			c.only[id] = true
		}
	})
}
