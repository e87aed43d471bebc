// Package logger wraps zap behind a small interface so every component
// can be given a mockable logger, following the teacher's call sites
// (log.Infof, log.Errorf, log.Fatalf, log.Sync()) rather than taking a
// direct *zap.Logger dependency.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Config selects the logging mode. JSON should be on in production; the
// human-readable console encoder is for local development.
type Config struct {
	Level string // debug|info|warn|error
	JSON  bool
}

// InterfaceLogger is the contract every component depends on.
type InterfaceLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Info(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Sync() error
}

// Logger is the zap-backed production implementation.
type Logger struct {
	sugar *zap.SugaredLogger
}

var _ InterfaceLogger = (*Logger)(nil)

// NewLogger builds a Logger per Config. Mirrors the teacher's
// logger.NewLogger(&config.Log) call in cmd/main.go.
func NewLogger(cfg *Config) (*Logger, error) {
	level := zap.InfoLevel
	if cfg != nil {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			level = zap.InfoLevel
		}
	}

	var zcfg zap.Config
	if cfg != nil && cfg.JSON {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	z, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return &Logger{sugar: z.Sugar()}, nil
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.sugar.Fatalf(format, args...) }
func (l *Logger) Info(args ...interface{})                  { l.sugar.Info(args...) }
func (l *Logger) Error(args ...interface{})                 { l.sugar.Error(args...) }
func (l *Logger) Fatal(args ...interface{})                 { l.sugar.Fatal(args...) }
func (l *Logger) Sync() error                               { return l.sugar.Sync() }
