package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "vi-asteroids.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a no-op logger unless debug is set
// With debug, JSON lines go to dir/logFileName; the terminal belongs to tcell
// An oversized previous log is rotated aside with a timestamp suffix
func setupLogging(debug bool, dir string) (*zap.Logger, *os.File, error) {
	if !debug {
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("vi-asteroids-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	return zap.New(fileCore), f, nil
}
