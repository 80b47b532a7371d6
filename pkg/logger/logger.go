package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	IsDevelopment     bool
	Encoding          string
	Level             string
	DisableCaller     bool
	DisableStacktrace bool
}

// NewZapLogger builds a *zap.Logger from config. Unknown levels fall back to info.
func NewZapLogger(cfg *Config) *zap.Logger {
	var level zapcore.Level
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.IsDevelopment {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	zapCfg.DisableCaller = cfg.DisableCaller
	zapCfg.DisableStacktrace = cfg.DisableStacktrace

	log, err := zapCfg.Build()
	if err != nil {
		// Config is static; a build failure here means a programming error.
		panic(err)
	}
	return log
}
