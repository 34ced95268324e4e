package ctxdict

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctxdict/blobstore"
	"github.com/arloliu/ctxdict/dictionary"
)

func TestBuildOpenSearch(t *testing.T) {
	phrases := "a\t10\tx\t5\t0:0:1:0:1\nab\t20\ty\t3\t0:0:2:0:1\n"

	var out bytes.Buffer
	stats, err := Build(strings.NewReader(phrases), strings.NewReader("ab\n"), strings.NewReader("xy\n"), &out)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Phrases)

	d, err := Open(out.Bytes())
	require.NoError(t, err)
	defer d.Close()

	got, err := d.Search("a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "x", got[0].Text)
	require.InDelta(t, 1.0, got[0].Frequency, 1e-9)

	completions, err := d.Autocomplete("a")
	require.NoError(t, err)
	require.Equal(t, []string{"ab", "a"}, completions)

	dir := t.TempDir()
	path := filepath.Join(dir, "demo.dict.bin")
	require.NoError(t, os.WriteFile(path, out.Bytes(), 0o600))

	f, err := OpenFile(path, dictionary.WithInMemory())
	require.NoError(t, err)
	require.Equal(t, "demo", f.Name())
	require.NoError(t, f.Close())

	reg, err := LoadRegistry(context.Background(), blobstore.NewLocalStore(dir))
	require.NoError(t, err)
	defer reg.Close()
	require.Equal(t, []string{"demo"}, reg.List())

	result, err := reg.Search("demo", "ab")
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "y", result[0].Translation)
	require.Equal(t, "ab", result[0].Examples[0].SrcPhrase)
	require.Equal(t, "x", result[0].Examples[0].TrgPhrase)
}
