// Package log builds [slog.Handler] values for command line use.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

// CreateHandler creates a [slog.Handler] writing to w, using the named level
// and format.
func CreateHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}

	formatter, err := GetFormatter(format)
	if err != nil {
		return nil, err
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: formatter != charmlog.TextFormatter,
	}), nil
}

// GetLevel parses a log level name.
func GetLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return charmlog.ErrorLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "info", "":
		return charmlog.InfoLevel, nil
	case "debug":
		return charmlog.DebugLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// GetFormatter parses a log format name.
func GetFormatter(format string) (charmlog.Formatter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return charmlog.TextFormatter, nil
	case FormatLogfmt:
		return charmlog.LogfmtFormatter, nil
	case FormatJSON:
		return charmlog.JSONFormatter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
