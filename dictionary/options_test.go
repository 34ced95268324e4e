package dictionary

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctxdict/internal/options"
	"github.com/arloliu/ctxdict/logger"
)

func TestBuildOptions(t *testing.T) {
	cfg := defaultBuildConfig()
	require.Equal(t, DefaultMaxLineSize, cfg.maxLineSize)
	require.True(t, cfg.validateExamples)

	l := logger.NoopLogger()
	err := options.Apply(cfg,
		WithBuildLogger(l),
		WithMaxLineSize(1024),
		WithExampleValidation(false),
		WithProgressInterval(0),
	)
	require.NoError(t, err)
	require.Same(t, l, cfg.logger)
	require.Equal(t, 1024, cfg.maxLineSize)
	require.False(t, cfg.validateExamples)
	require.Zero(t, cfg.progressEvery)

	require.NoError(t, options.Apply(cfg, WithBuildLogger(nil)))
	require.Same(t, l, cfg.logger)
}

func TestOpenOptions(t *testing.T) {
	cfg := defaultOpenConfig()
	require.Equal(t, AccessRandom, cfg.access)
	require.False(t, cfg.inMemory)

	err := options.Apply(cfg, WithInMemory(), WithAccessPattern(AccessSequential), WithName("x"))
	require.NoError(t, err)
	require.True(t, cfg.inMemory)
	require.Equal(t, AccessSequential, cfg.access)
	require.Equal(t, "x", cfg.name)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewJSONLogger(&buf, slog.LevelDebug)

	var out bytes.Buffer
	_, err := Build(lines(scenario...), lines("ab"), lines("xy"), &out,
		WithBuildLogger(l), WithProgressInterval(1))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"msg":"build progress"`)
	require.Contains(t, buf.String(), `"msg":"build completed"`)

	buf.Reset()
	d, err := Open(out.Bytes(), WithLogger(l), WithName("en-fr"))
	require.NoError(t, err)
	defer d.Close()
	require.Contains(t, buf.String(), `"msg":"dictionary opened"`)

	buf.Reset()
	_, err = d.Search("ab")
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"msg":"search completed"`)
	require.Contains(t, buf.String(), `"dictionary":"en-fr"`)

	buf.Reset()
	_, err = d.Autocomplete("a")
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"msg":"autocomplete completed"`)

	buf.Reset()
	_, err = d.Completions("a")
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"msg":"autocomplete completed"`)
	require.Contains(t, buf.String(), `"query":"a"`)

	buf.Reset()
	_, err = Build(lines("b\t1", "a\t1"), lines(), lines(), &out, WithBuildLogger(l))
	require.Error(t, err)
	require.Contains(t, buf.String(), `"msg":"build failed"`)
}
