package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/xyproto/randomstring"

	"elevsim/src/config"
)

// InitLogger sets up global logging with compact time format and file:line sources.
// Output goes to w, and also to logFile when it is not empty. Every record carries the run ID.
// The returned function closes the log file.
func InitLogger(w io.Writer, level slog.Level, logFile string) (runID string, closeFn func() error, err error) {
	closeFn = func() error { return nil }
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return "", closeFn, fmt.Errorf("opening log file: %w", err)
		}
		w = io.MultiWriter(w, file)
		closeFn = file.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	runID = randomstring.EnglishFrequencyString(config.RunIDLength)
	slog.SetDefault(slog.New(handler).With("run", runID))
	return runID, closeFn, nil
}
