package dictionary

import (
	"errors"
	"io"

	"github.com/arloliu/ctxdict/internal/mmap"
	"github.com/arloliu/ctxdict/internal/options"
	"github.com/arloliu/ctxdict/logger"
)

// DefaultMaxLineSize is the default limit for one line of any build input.
const DefaultMaxLineSize = 16 * 1024 * 1024

// AccessPattern is the paging advice given for a memory-mapped dictionary.
type AccessPattern = mmap.AccessPattern

// Access patterns accepted by WithAccessPattern.
const (
	AccessDefault    = mmap.AccessDefault
	AccessSequential = mmap.AccessSequential
	AccessRandom     = mmap.AccessRandom
	AccessWillNeed   = mmap.AccessWillNeed
)

type buildConfig struct {
	logger           *logger.Logger
	maxLineSize      int
	validateExamples bool
	progressEvery    int
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		logger:           logger.NoopLogger(),
		maxLineSize:      DefaultMaxLineSize,
		validateExamples: true,
		progressEvery:    100_000,
	}
}

// BuildOption configures Build.
type BuildOption = options.Option[*buildConfig]

// WithBuildLogger sets the logger used to report build progress and results.
func WithBuildLogger(l *logger.Logger) BuildOption {
	return options.NoError(func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithMaxLineSize sets the longest accepted line of the phrase stream and the
// corpora, in bytes. Longer lines fail the build.
func WithMaxLineSize(n int) BuildOption {
	return options.New(func(c *buildConfig) error {
		if n <= 0 {
			return errors.New("max line size must be positive")
		}
		c.maxLineSize = n

		return nil
	})
}

// WithExampleValidation controls whether every example must address a valid
// byte range of both corpora. It is enabled by default; disabling it lets
// broken examples into the file, where they fail at query time instead.
func WithExampleValidation(enabled bool) BuildOption {
	return options.NoError(func(c *buildConfig) {
		c.validateExamples = enabled
	})
}

// WithProgressInterval logs build progress every n phrases at debug level.
// Zero disables progress logging.
func WithProgressInterval(n int) BuildOption {
	return options.New(func(c *buildConfig) error {
		if n < 0 {
			return errors.New("progress interval must not be negative")
		}
		c.progressEvery = n

		return nil
	})
}

type openConfig struct {
	logger   *logger.Logger
	inMemory bool
	access   AccessPattern
	name     string
	closer   io.Closer
}

func defaultOpenConfig() *openConfig {
	return &openConfig{
		logger: logger.NoopLogger(),
		access: AccessRandom,
	}
}

// OpenOption configures Open, OpenFile and OpenCompressed.
type OpenOption = options.Option[*openConfig]

// WithLogger sets the logger used for open and query events.
func WithLogger(l *logger.Logger) OpenOption {
	return options.NoError(func(c *openConfig) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithInMemory makes OpenFile read the whole file into memory instead of
// mapping it.
func WithInMemory() OpenOption {
	return options.NoError(func(c *openConfig) {
		c.inMemory = true
	})
}

// WithAccessPattern sets the paging advice for a mapped file. The default is
// AccessRandom, which matches trie traversal.
func WithAccessPattern(p AccessPattern) OpenOption {
	return options.NoError(func(c *openConfig) {
		c.access = p
	})
}

// WithName sets the name reported by Dictionary.Name and used in logs.
// OpenFile defaults to the file's base name.
func WithName(name string) OpenOption {
	return options.NoError(func(c *openConfig) {
		c.name = name
	})
}

// WithCloser registers c to be closed by Dictionary.Close, typically the
// blob holding the buffer passed to Open. c is also closed when opening
// fails.
func WithCloser(c io.Closer) OpenOption {
	return options.NoError(func(cfg *openConfig) {
		cfg.closer = c
	})
}

func (c *openConfig) release() {
	if c.closer != nil {
		_ = c.closer.Close()
	}
}
