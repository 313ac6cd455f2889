package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	Sink     string        `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger builds a json logger writing to stderr and, when Sink is set, to that file too.
func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	level := zap.NewAtomicLevelAt(cfg.LogLevel)
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}
	if cfg.Sink != "" {
		f, err := os.OpenFile(cfg.Sink, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(f), level))
		}
	}

	return zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.DPanicLevel),
	).Named(name)
}
