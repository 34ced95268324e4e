package main

import (
	"flag"
	"io"
	"log/slog"

	"github.com/arloliu/ctxdict/logger"
)

type logFlags struct {
	verbose bool
	json    bool
}

func (f *logFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&f.verbose, "v", false, "Enable debug logging")
	fs.BoolVar(&f.json, "log-json", false, "Write logs as JSON")
}

func (f *logFlags) logger(w io.Writer) *logger.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	if f.json {
		return logger.NewJSONLogger(w, level)
	}

	return logger.NewTextLogger(w, level)
}
