package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var Instance *slog.Logger

var logFile *os.File

// Setup installs a text logger as the slog default. Logs go to the file at
// path, appended to, or to stderr when path is empty. A file opened by an
// earlier Setup is closed.
func Setup(path string, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	var file *os.File
	if path != "" {
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		out = file
	}

	Instance = New(out, lvl)
	slog.SetDefault(Instance)
	if err := Close(); err != nil {
		slog.Warn("closing previous log file", "error", err)
	}
	logFile = file
	return nil
}

// Close closes the log file opened by Setup, if any.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel accepts debug, info, warn or error in any case. An empty string
// means info.
func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(level) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
