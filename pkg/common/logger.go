package common

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logsDirName  = "logs"
	logsFileName = "cattle.log"
)

var (
	logger *zap.Logger
	once   sync.Once
	mu     sync.RWMutex
)

func getLogger() *zap.Logger {
	initLogger()
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func GetLogger() *zap.Logger {
	return getLogger().Named("default")
}

// GetLoggerWith returns a named child logger, e.g.
//
//	common.GetLoggerWith(common.LoggerNameCattleCore, zap.String(common.LoggerFieldCategory, common.LoggerCategoryCow))
func GetLoggerWith(name string, fields ...zap.Field) *zap.Logger {
	return getLogger().Named(name).With(fields...)
}

// SyncLogger flushes buffered entries, called once on shutdown.
func SyncLogger() {
	_ = getLogger().Sync()
}

func initLogger() {
	once.Do(func() {
		dir, err := os.Getwd()
		if err != nil {
			log.Fatalf("Error getting current directory: %v", err)
		}

		logsDir := filepath.Join(dir, logsDirName)
		if err := os.MkdirAll(logsDir, os.ModePerm); err != nil {
			log.Fatalf("Error find/create logs directory: %v", err)
		}

		logFile := &lumberjack.Logger{
			Filename:   filepath.Join(logsDir, logsFileName),
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(logFile),
			zap.InfoLevel,
		)

		var core zapcore.Core = fileCore
		if !IsProduction() {
			consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
			consoleLevel := zap.DebugLevel
			if IsTestEnv() {
				consoleLevel = zap.WarnLevel
			}
			consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), consoleLevel)
			core = zapcore.NewTee(fileCore, consoleCore)
		}

		mu.Lock()
		logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
		mu.Unlock()
	})
}

func SetTestCaptureLogger(buf *bytes.Buffer, level zapcore.Level) {
	initLogger()

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(buf), level)

	mu.Lock()
	logger = zap.New(core)
	mu.Unlock()
}

func SetTestLoggerNop() {
	initLogger()

	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}
