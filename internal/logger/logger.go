package logger

import (
	"log"

	"quake-bknd/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.Logger
}

// New builds the process logger for service. Production writes JSON at info level,
// anything else writes colored console output at debug level. LOG_LEVEL overrides
// either default.
func New(cfg *config.Config, service string) *Logger {
	zapCfg := baseConfig(cfg.Environment)

	if cfg.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.Printf("invalid LOG_LEVEL %q, keeping %s\n", cfg.LogLevel, zapCfg.Level)
		} else {
			zapCfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	zapCfg.InitialFields = map[string]any{
		"service": service,
		"env":     cfg.Environment,
	}

	l, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{l}
}

func baseConfig(env string) zap.Config {
	if env == "production" {
		zapCfg := zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapCfg.DisableStacktrace = true
		return zapCfg
	}

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapCfg
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zap.NewNop()}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() {
	_ = l.Logger.Sync()
}
