package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/ctxdict/dictionary"
)

func runInfo(_ context.Context, args []string, _ io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet("info", stderr)
	var logs logFlags
	logs.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("info takes exactly one model file")
	}

	d, err := dictionary.OpenFile(fs.Arg(0), dictionary.WithLogger(logs.logger(stderr)))
	if err != nil {
		return err
	}
	defer d.Close()

	info := d.Info()
	sum, err := d.Checksum()
	if err != nil {
		return err
	}
	top, err := d.Completions("")
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "name:             %s\n", info.Name)
	fmt.Fprintf(stdout, "size:             %d bytes\n", info.Size)
	fmt.Fprintf(stdout, "mapped:           %t\n", info.Mapped)
	fmt.Fprintf(stdout, "checksum:         %016x\n", sum)
	fmt.Fprintf(stdout, "root node:        %d\n", info.Trailer.Root)
	fmt.Fprintf(stdout, "source corpus:    %d (%d sentences)\n", info.Trailer.SourceCorpus, info.SourceSentences)
	fmt.Fprintf(stdout, "target corpus:    %d (%d sentences)\n", info.Trailer.TargetCorpus, info.TargetSentences)
	fmt.Fprintf(stdout, "root children:    %d\n", info.RootChildren)
	fmt.Fprintln(stdout, "top phrases:")
	for _, c := range top {
		fmt.Fprintf(stdout, "  %-20q %d\n", c.Text, c.Weight)
	}

	return nil
}
