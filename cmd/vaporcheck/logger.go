// Copyright 2025 go-vapor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"log/slog"
)

// Logger wraps slog.Logger with the field names used by vaporcheck.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing to w in the given format ("text" or
// "json"). Debug records are emitted only when verbose is set.
func NewLogger(w io.Writer, format string, verbose bool) (*Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, invalidFlag("log-format", "unknown format %q (want text or json)", format)
	}
	return &Logger{Logger: slog.New(handler)}, nil
}

// WithKernel adds a kernel field to the logger.
func (l *Logger) WithKernel(name string) *Logger {
	return &Logger{Logger: l.Logger.With("kernel", name)}
}
