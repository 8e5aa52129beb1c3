// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seedgen/cli/internal/xdg"
)

var (
	debugOnce   sync.Once
	debugLogger *zap.Logger
)

// Verbose reports whether verbose debug logging is enabled, either via
// the SEEDGEN_VERBOSE environment variable or a --verbose flag (which
// sets the same variable).
func Verbose() bool {
	return os.Getenv("SEEDGEN_VERBOSE") == "1"
}

// Debug returns the shared debug logger. When verbose mode is off, or
// the state directory cannot be created, it returns a no-op logger so
// callers never need to nil-check. Log lines go to seedgen.log in the
// XDG state dir, never to the terminal, to keep the UI clean.
func Debug() *zap.Logger {
	debugOnce.Do(func() {
		debugLogger = zap.NewNop()
		if !Verbose() {
			return
		}
		dir, err := xdg.StateDir()
		if err != nil {
			return
		}
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{filepath.Join(dir, "seedgen.log")}
		cfg.ErrorOutputPaths = cfg.OutputPaths
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		if l, err := cfg.Build(); err == nil {
			debugLogger = l
		}
	})
	return debugLogger
}
