// SPDX-License-Identifier: MIT

// Package logging builds the logrus logger used by the CLI and carries a
// logrus.FieldLogger through context.Context so that colonies and the
// orchestrator log with the fields of whoever started them.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Output formats accepted by New.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by New for a format other than auto, text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// New returns a logger writing to out at the given level.
// FormatAuto picks colored text on a terminal and JSON otherwise.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var formatter logrus.Formatter
	switch strings.ToLower(format) {
	case "", FormatAuto:
		if IsTerminal(out) {
			formatter = &logrus.TextFormatter{FullTimestamp: true}
		} else {
			formatter = &logrus.JSONFormatter{}
		}
	case FormatText:
		formatter = &logrus.TextFormatter{FullTimestamp: true, DisableColors: !IsTerminal(out)}
	case FormatJSON:
		formatter = &logrus.JSONFormatter{}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(formatter)

	return logger, nil
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}

// Logger returns the logger stored in ctx, or the logrus standard logger.
func Logger(ctx context.Context) logrus.FieldLogger {
	val := ctx.Value(loggerContextKeyVal)
	if val != nil {
		if logger, ok := val.(logrus.FieldLogger); ok {
			return logger
		}
	}
	return logrus.StandardLogger()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}

// WithFields returns a context whose logger carries the extra fields.
func WithFields(ctx context.Context, fields logrus.Fields) context.Context {
	return WithLogger(ctx, Logger(ctx).WithFields(fields))
}
