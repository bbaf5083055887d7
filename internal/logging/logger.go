package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/larder/backend/config"
)

// New returns a JSON logger in production and a console logger elsewhere
func New(env config.Environment) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case config.Production:
		cfg = zap.NewProductionConfig()
	case config.Test:
		return zap.NewNop(), nil
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build(zap.Fields(zap.String("env", string(env))))
}

// Must is New that falls back to a no-op logger on error
func Must(env config.Environment) *zap.Logger {
	logger, err := New(env)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
