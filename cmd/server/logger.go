package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/prodinfra/infrademo/internal/logging"
	"github.com/prodinfra/infrademo/internal/server"
)

type loggers struct {
	// Default goes to the console only.
	Default *slog.Logger
	// App goes to the console and, when configured, the log file.
	App *slog.Logger

	file *os.File
}

func (l *loggers) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func setupLogging(cfg *server.Config, console io.Writer) (*loggers, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	consoleHandler := tint.NewHandler(console, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isTerminal(console),
	})

	l := &loggers{Default: slog.New(consoleHandler)}

	if cfg.Log.File == "" {
		l.App = logging.Named(consoleHandler, logging.AppLogger)
		return l, nil
	}

	file, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	l.file = file

	fileHandler := logging.NewLineHandler(file, level)
	l.App = logging.Named(logging.NewMultiHandler(consoleHandler, fileHandler), logging.AppLogger)
	return l, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
