package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/registry"
)

const phrases = "good\t5\tbon\t2\t0:0:4:0:3\n" +
	"good morning\t9\tbonjour\t4\t0:0:12:0:7\n"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func buildModel(t *testing.T, dir string) string {
	t.Helper()

	src := writeFile(t, dir, "corpus.en", "good morning everyone\n")
	trg := writeFile(t, dir, "corpus.fr", "bonjour tout le monde\n")
	model := filepath.Join(dir, "en-fr.dict.bin")

	_, stderr, err := execute(t, phrases, "build", "-src", src, "-trg", trg, "-o", model)
	require.NoError(t, err, stderr)
	require.Contains(t, stderr, "build completed")

	return model
}

func TestBuildAndQuery(t *testing.T) {
	dir := t.TempDir()
	buildModel(t, dir)

	stdout, _, err := execute(t, "", "list", "-dir", dir)
	require.NoError(t, err)
	require.Equal(t, "en-fr\n", stdout)

	stdout, _, err = execute(t, "", "autocomplete", "-dir", dir, "-dict", "en-fr", "go")
	require.NoError(t, err)
	require.Equal(t, "good morning\ngood\n", stdout)

	stdout, _, err = execute(t, "", "search", "-dir", dir, "-dict", "en-fr", "good", "morning")
	require.NoError(t, err)

	var result []registry.Translation
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result, 1)
	require.Equal(t, "bonjour", result[0].Translation)
	require.InDelta(t, 1.0, result[0].Frequency, 1e-9)
	require.Equal(t, registry.Example{
		SrcPhrase: "good morning", SrcRightContext: " everyone",
		TrgPhrase: "bonjour", TrgRightContext: " tout le monde",
	}, result[0].Examples[0])

	_, _, err = execute(t, "", "search", "-dir", dir, "-dict", "en-de", "good")
	require.ErrorIs(t, err, errs.ErrDictionaryNotFound)
}

func TestBuild_PhrasesFileAndStdout(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "src", "good morning everyone\n")
	trg := writeFile(t, dir, "trg", "bonjour tout le monde\n")
	in := writeFile(t, dir, "phrases.tsv", phrases)

	stdout, _, err := execute(t, "", "build", "-src", src, "-trg", trg, "-phrases", in)
	require.NoError(t, err)
	require.NotEmpty(t, stdout)
	require.Equal(t, byte(0), stdout[0])
}

func TestBuild_Errors(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "src", "a\n")
	out := filepath.Join(dir, "x.dict.bin")

	_, _, err := execute(t, "", "build", "-src", src)
	require.Error(t, err)

	_, _, err = execute(t, "b\t1\na\t1\n", "build", "-src", src, "-trg", src, "-o", out)
	require.ErrorIs(t, err, errs.ErrUnsortedInput)
	_, statErr := os.Stat(out)
	require.ErrorIs(t, statErr, os.ErrNotExist)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary output must be removed")
}

func TestPackAndInfo(t *testing.T) {
	dir := t.TempDir()
	model := buildModel(t, dir)

	stdout, _, err := execute(t, "", "info", model)
	require.NoError(t, err)
	require.Contains(t, stdout, "name:             en-fr")
	require.Contains(t, stdout, "mapped:           true")
	require.Contains(t, stdout, "(1 sentences)")
	require.Contains(t, stdout, `"good morning"`)

	for _, algo := range []string{"zstd", "s2", "lz4"} {
		stdout, _, err = execute(t, "", "pack", "-c", algo, model)
		require.NoError(t, err, algo)
		require.Contains(t, stdout, "bytes")
	}
	for _, ext := range []string{".zst", ".s2", ".lz4"} {
		_, err := os.Stat(model + ext)
		require.NoError(t, err)
	}

	stdout, _, err = execute(t, "", "info", model+".zst")
	require.NoError(t, err)
	require.Contains(t, stdout, "mapped:           false")

	_, _, err = execute(t, "", "pack", "-c", "none", model)
	require.Error(t, err)
	_, _, err = execute(t, "", "pack", "-c", "brotli", model)
	require.Error(t, err)
	_, _, err = execute(t, "", "pack")
	require.Error(t, err)

	// The unpacked model wins over the packaged copies of the same id.
	stdout, _, err = execute(t, "", "list", "-dir", dir)
	require.NoError(t, err)
	require.Equal(t, "en-fr\n", stdout)
}

func TestUsage(t *testing.T) {
	_, stderr, err := execute(t, "")
	require.ErrorIs(t, err, flag.ErrHelp)
	require.Contains(t, stderr, "autocomplete")

	_, _, err = execute(t, "", "frobnicate")
	require.ErrorContains(t, err, "unknown command")

	_, _, err = execute(t, "", "search", "-dir", t.TempDir(), "x")
	require.ErrorContains(t, err, "-dict is required")

	_, _, err = execute(t, "", "list", "-dir", "a", "-s3-bucket", "b")
	require.ErrorContains(t, err, "mutually exclusive")

	_, _, err = execute(t, "", "list", "-minio-endpoint", "localhost:9000")
	require.ErrorContains(t, err, "-minio-bucket is required")
}
