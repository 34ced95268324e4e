package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/ctxdict/registry"
)

// queryFlags are shared by the commands that read from a model store.
type queryFlags struct {
	store       storeFlags
	logs        logFlags
	dict        string
	concurrency int
}

func (f *queryFlags) parse(name string, args []string, stderr io.Writer, needDict bool) ([]string, error) {
	fs := newFlagSet(name, stderr)
	f.store.register(fs)
	f.logs.register(fs)
	fs.IntVar(&f.concurrency, "concurrency", registry.DefaultConcurrency, "Models loaded in parallel")
	if needDict {
		fs.StringVar(&f.dict, "dict", "", "Dictionary id (required)")
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if needDict && f.dict == "" {
		return nil, errors.New("-dict is required")
	}

	return fs.Args(), nil
}

func (f *queryFlags) load(ctx context.Context, stderr io.Writer) (*registry.Registry, error) {
	store, err := f.store.open(ctx)
	if err != nil {
		return nil, err
	}

	opts := []registry.Option{
		registry.WithRegistryLogger(f.logs.logger(stderr)),
		registry.WithConcurrency(f.concurrency),
	}
	if f.dict != "" {
		opts = append(opts, registry.WithIDs(f.dict))
	}

	return registry.Load(ctx, store, opts...)
}

func runList(ctx context.Context, args []string, _ io.Reader, stdout, stderr io.Writer) error {
	var f queryFlags
	if _, err := f.parse("list", args, stderr, false); err != nil {
		return err
	}

	reg, err := f.load(ctx, stderr)
	if err != nil {
		return err
	}
	defer reg.Close()

	for _, id := range reg.List() {
		fmt.Fprintln(stdout, id)
	}

	return nil
}

func runSearch(ctx context.Context, args []string, _ io.Reader, stdout, stderr io.Writer) error {
	var f queryFlags
	rest, err := f.parse("search", args, stderr, true)
	if err != nil {
		return err
	}

	reg, err := f.load(ctx, stderr)
	if err != nil {
		return err
	}
	defer reg.Close()

	result, err := reg.Search(f.dict, strings.Join(rest, " "))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}

func runAutocomplete(ctx context.Context, args []string, _ io.Reader, stdout, stderr io.Writer) error {
	var f queryFlags
	rest, err := f.parse("autocomplete", args, stderr, true)
	if err != nil {
		return err
	}

	reg, err := f.load(ctx, stderr)
	if err != nil {
		return err
	}
	defer reg.Close()

	completions, err := reg.Autocomplete(f.dict, strings.Join(rest, " "))
	if err != nil {
		return err
	}
	for _, c := range completions {
		fmt.Fprintln(stdout, c)
	}

	return nil
}
