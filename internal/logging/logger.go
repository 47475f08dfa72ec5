// Package logging provides structured logging for envlauncher.
// It wraps zap.Logger with an optional rotating file sink. The file sink
// matters here: when envlauncher is started from a desktop menu there is
// no terminal attached, so the log file is the only place diagnostics
// survive.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the logging section of the TOML config.
type Config struct {
	Level      string `toml:"level" mapstructure:"level"` // "debug", "info", "warn", "error"
	ToStderr   bool   `toml:"to_stderr" mapstructure:"to_stderr"`
	ToFile     bool   `toml:"to_file" mapstructure:"to_file"`
	FilePath   string `toml:"file" mapstructure:"file"` // празно = XDG state директорията
	MaxSizeMB  int    `toml:"max_size" mapstructure:"max_size"`
	MaxAge     int    `toml:"max_age" mapstructure:"max_age"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups"`
}

// Log is the globally accessible sugared logger instance.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// DefaultFilePath returns the log file path inside the XDG state directory.
func DefaultFilePath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		stateDir = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(stateDir, "envlauncher", "envlauncher.log")
}

// Init initializes the global logger based on the provided config.
func Init(cfg *Config) error {
	var cores []zapcore.Core

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel
	_ = level.Set(cfg.Level) // invalid value keeps InfoLevel

	if cfg.ToStderr {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level))
	}

	if cfg.ToFile {
		path := cfg.FilePath
		if path == "" {
			path = DefaultFilePath()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		})
		cores = append(cores, zapcore.NewCore(encoder, writer, level))
	}

	if len(cores) == 0 {
		Log = zap.NewNop().Sugar()
		return nil
	}

	logger := zap.New(zapcore.NewTee(cores...))
	Log = logger.Sugar()
	return nil
}
