package config

import "go.uber.org/zap"

// logger is the package-level logger used for load warnings, locator info
// messages, and YAML path-walk diagnostics. It defaults to a no-op logger so
// the library stays silent unless the embedding application opts in.
var logger = zap.NewNop()

// SetLogger replaces the package logger. A nil argument restores the no-op
// default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
