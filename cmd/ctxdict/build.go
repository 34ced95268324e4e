package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arloliu/ctxdict/dictionary"
)

func runBuild(_ context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet("build", stderr)
	src := fs.String("src", "", "Source corpus, one sentence per line (required)")
	trg := fs.String("trg", "", "Target corpus, line-aligned with -src (required)")
	phrases := fs.String("phrases", "-", "Sorted phrase stream, \"-\" for stdin")
	output := fs.String("o", "-", "Output model file, \"-\" for stdout")
	maxLine := fs.Int("max-line", dictionary.DefaultMaxLineSize, "Longest accepted input line in bytes")
	noValidate := fs.Bool("no-validate", false, "Do not check example offsets against the corpora")
	progress := fs.Int("progress", 100_000, "Log progress every N phrases at debug level, 0 to disable")
	var logs logFlags
	logs.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *src == "" || *trg == "" {
		return errors.New("-src and -trg are required")
	}

	srcFile, err := os.Open(*src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	trgFile, err := os.Open(*trg)
	if err != nil {
		return err
	}
	defer trgFile.Close()

	in := stdin
	if *phrases != "-" {
		f, err := os.Open(*phrases)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	opts := []dictionary.BuildOption{
		dictionary.WithBuildLogger(logs.logger(stderr)),
		dictionary.WithMaxLineSize(*maxLine),
		dictionary.WithExampleValidation(!*noValidate),
		dictionary.WithProgressInterval(*progress),
	}

	if *output == "-" {
		_, err := dictionary.Build(in, srcFile, trgFile, stdout, opts...)
		return err
	}

	return buildFile(*output, func(w io.Writer) error {
		_, err := dictionary.Build(in, srcFile, trgFile, w, opts...)
		return err
	})
}

// buildFile writes through a temporary file next to path and renames it
// into place only on success.
func buildFile(path string, write func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	err = write(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("build %s: %w", path, err)
	}

	return nil
}
