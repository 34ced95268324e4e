package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	maxLineSize int
	name        string
	inMemory    bool
	calls       []string
}

func withMaxLineSize(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n <= 0 {
			return errors.New("max line size must be positive")
		}
		c.maxLineSize = n
		c.calls = append(c.calls, "maxLineSize")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func withInMemory() Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.inMemory = true
		c.calls = append(c.calls, "inMemory")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		c := &testConfig{}
		err := Apply(c, withName("en__es"), withMaxLineSize(1024), withName("en__fr"))
		require.NoError(t, err)
		require.Equal(t, "en__fr", c.name)
		require.Equal(t, 1024, c.maxLineSize)
		require.Equal(t, []string{"name", "maxLineSize", "name"}, c.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		c := &testConfig{}
		err := Apply(c, withName("a"), withMaxLineSize(0), withInMemory())
		require.EqualError(t, err, "max line size must be positive")
		require.Equal(t, []string{"name"}, c.calls)
		require.False(t, c.inMemory)
	})

	t.Run("no options", func(t *testing.T) {
		c := &testConfig{maxLineSize: 7}
		require.NoError(t, Apply(c))
		require.Equal(t, 7, c.maxLineSize)
	})
}

func TestWhen(t *testing.T) {
	c := &testConfig{}
	err := Apply(c,
		When(false, withInMemory()),
		When(true, withName("kept")),
		nil,
	)
	require.NoError(t, err)
	require.False(t, c.inMemory)
	require.Equal(t, "kept", c.name)
	require.Equal(t, []string{"name"}, c.calls)
}
