// Command ctxdict builds, packages and queries phrase translation
// dictionaries.
//
// Usage:
//
//	ctxdict build -src corpus.en -trg corpus.fr [-phrases phrases.tsv] [-o en-fr.dict.bin]
//	ctxdict pack -c zstd en-fr.dict.bin
//	ctxdict info en-fr.dict.bin
//	ctxdict list -dir models
//	ctxdict search -dir models -dict en-fr "good morning"
//	ctxdict autocomplete -dir models -dict en-fr "good"
//
// Models can also be read from S3 (-s3-bucket) or MinIO (-minio-endpoint).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

var commands = []command{
	{"build", "compile a sorted phrase stream and its corpora into a model", runBuild},
	{"pack", "compress a model with zstd, s2 or lz4", runPack},
	{"info", "print the layout and checksum of a model file", runInfo},
	{"list", "list the dictionaries in a model store", runList},
	{"search", "look up the translations of a phrase", runSearch},
	{"autocomplete", "complete a phrase prefix", runAutocomplete},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stderr)
		return flag.ErrHelp
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, args[1:], stdin, stdout, stderr)
		}
	}
	usage(stderr)

	return fmt.Errorf("unknown command %q", args[0])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ctxdict <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-13s %s\n", c.name, c.usage)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'ctxdict <command> -h' for the flags of a command.")
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("ctxdict "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}
