package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/ctxdict/compress"
	"github.com/arloliu/ctxdict/dictionary"
	"github.com/arloliu/ctxdict/format"
)

func runPack(_ context.Context, args []string, _ io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet("pack", stderr)
	algo := fs.String("c", "zstd", "Compression: zstd, s2 or lz4")
	output := fs.String("o", "", "Output file (default: input name plus the compression extension)")
	verify := fs.Bool("verify", true, "Open the packed model before writing it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("pack takes exactly one model file")
	}
	input := fs.Arg(0)

	ct, ok := format.ParseCompressionType(*algo)
	if !ok || ct == format.CompressionNone {
		return fmt.Errorf("unsupported compression %q", *algo)
	}

	model, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	packed, stats, err := compress.Pack(model, ct)
	if err != nil {
		return err
	}

	if *verify {
		d, err := dictionary.OpenCompressed(packed, ct)
		if err != nil {
			return fmt.Errorf("verify packed model: %w", err)
		}
		_ = d.Close()
	}

	out := *output
	if out == "" {
		out = input + ct.Extension()
	}
	if err := buildFile(out, func(w io.Writer) error {
		_, err := w.Write(packed)
		return err
	}); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d -> %d bytes (%s, ratio %.3f, %.1f%% saved) in %s\n",
		out, stats.OriginalSize, stats.CompressedSize, stats.Algorithm,
		stats.CompressionRatio(), stats.SpaceSavings(), stats.CompressionTime)

	return nil
}
