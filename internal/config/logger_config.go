package config

import (
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const loggerPrefix = "LOGGER"

// NewLoggerConfig initializes a default production config for one-shot commands, overwritten by
// LOGGER_* env vars if present
func NewLoggerConfig() (*zap.Config, error) {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	err := envconfig.Process(loggerPrefix, &cfg)
	if err != nil {
		return nil, err
	}
	// envconfig allocates every nil struct pointer it walks; a zero sampler drops every entry
	if cfg.Sampling != nil && cfg.Sampling.Initial == 0 && cfg.Sampling.Thereafter == 0 {
		cfg.Sampling = nil
	}
	return &cfg, nil
}

// NewLogger builds a logger out of NewLoggerConfig.
func NewLogger() (*zap.Logger, error) {
	cfg, err := NewLoggerConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}
