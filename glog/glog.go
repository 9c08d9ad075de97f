// Package glog wraps zap with three named-logger constructors: New
// (production JSON at a chosen level), NewDevelopment (console) and
// Nop (discards everything). Centralised here so every caller logs in
// the same structured shape.
package glog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production-configured, JSON-encoded logger at level,
// with name set as the logger's name (zap's Named).
func New(name string, level zapcore.Level) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "ts"
	l, err := cfg.Build()
	if err != nil {
		// zap's production config never fails to build; fall back to a
		// no-op logger rather than panic in a logging constructor.
		l = zap.NewNop()
	}
	return l.Named(name)
}

// NewDevelopment returns a human-readable console logger, for
// cmd/gdsctl's default output.
func NewDevelopment(name string) *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		l = zap.NewNop()
	}
	return l.Named(name)
}

// Nop returns a logger that discards everything, for tests.
func Nop() *zap.Logger { return zap.NewNop() }
