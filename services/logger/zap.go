package logsvc

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/classroom"
)

type ZapLogger struct {
	log *zap.Logger
}

var _ core.Logger = (*ZapLogger)(nil)

// NewZapLogger logs to w on the console and, when conf.LogFile is set, as JSON to a rotated file.
func NewZapLogger(w io.Writer, conf *core.Config) *ZapLogger {
	if w == nil {
		w = os.Stdout
	}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := zap.InfoLevel
	if conf.Debug {
		level = zap.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level),
	}
	if conf.LogFile != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.LogFile,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zap.ErrorLevel))
	return &ZapLogger{log: logger.With(zap.String("app", conf.AppName), zap.String("env", conf.Env))}
}

func (l ZapLogger) Sync() error { return l.log.Sync() }

// Close flushes buffered entries.
func (l ZapLogger) Close() error { return l.Sync() }

// expected fmt: msg | error, map[string]interface{}, classroom.Account
func fields(args []interface{}) []zap.Field {
	flds := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case classroom.Account:
			flds = append(flds, zap.String("account_id", v.ID), zap.String("account_name", v.Name))
		case error:
			flds = append(flds, zap.Error(v))
		case map[string]interface{}:
			for k, val := range v {
				flds = append(flds, zap.Any(k, val))
			}
		default:
			flds = append(flds, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return flds
}

func (l ZapLogger) Debug(msg string, args ...interface{}) { l.log.Debug(msg, fields(args)...) }

func (l ZapLogger) Info(msg string, args ...interface{}) { l.log.Info(msg, fields(args)...) }

func (l ZapLogger) Warn(msg string, args ...interface{}) { l.log.Warn(msg, fields(args)...) }

func (l ZapLogger) Error(msg string, args ...interface{}) { l.log.Error(msg, fields(args)...) }

func (l ZapLogger) Fatal(msg string, args ...interface{}) { l.log.Fatal(msg, fields(args)...) }
