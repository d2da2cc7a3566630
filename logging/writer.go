package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// fileSyncer creates a zapcore.WriteSyncer backed by a lumberjack
// rotating file for the configured log path.
func fileSyncer(config Config) zapcore.WriteSyncer {
	dir := filepath.Dir(config.File)
	if dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		LocalTime:  true,
	})
}
