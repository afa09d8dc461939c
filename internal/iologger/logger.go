// Package iologger sets up the default slog logger of pandata.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/pandata/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "pandata.log"

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Init sets the default logger according to cfg. With the "file"
// destination logs go to LogFile in logDir, appended or truncated.
// The returned function closes the log file, it is a no-op for
// standard streams.
func Init(logDir string, cfg config.LogConfig, append bool) (func() error, error) {
	w, closer, err := openWriter(logDir, cfg.Destination, append)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(newHandler(w, cfg)))
	return closer, nil
}

func openWriter(logDir, dest string, append bool) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch dest {
	case "stdout":
		return os.Stdout, noop, nil
	case "file":
	default:
		return os.Stderr, noop, nil
	}

	path := filepath.Join(logDir, LogFile)
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, nil, CreateLogFileError(path, err)
	}
	return f, f.Close, nil
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	level, ok := levels[cfg.Level]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.Format {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "tint":
		// compact text for terminals, without timestamps
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}
