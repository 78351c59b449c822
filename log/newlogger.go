package log

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

var (
	mu          sync.RWMutex
	sugarLogger *zap.SugaredLogger
	logger      *zap.Logger
)

var LogLevel = zap.InfoLevel
var atom = zap.NewAtomicLevel()

var levelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

func getLoggerLevel(lvl string) zapcore.Level {
	if level, ok := levelMap[lvl]; ok {
		return level
	}
	return zapcore.InfoLevel
}

// Results go to stdout, so logs default to stderr.
func init() {
	SetOutput(os.Stderr, true)
}

// SetOutput rebuilds the logger on top of w. Colored levels are only useful on a terminal.
func SetOutput(w io.Writer, color bool) {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config),
		zapcore.AddSync(w),
		atom,
	)
	atom.SetLevel(LogLevel)

	mu.Lock()
	defer mu.Unlock()
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	sugarLogger = logger.Sugar()
}

func SetLevel(level string) {
	LogLevel = getLoggerLevel(level)
	atom.SetLevel(LogLevel)
}

// ValidLevel reports whether level names one of the zap levels.
func ValidLevel(level string) bool {
	_, ok := levelMap[level]
	return ok
}

func sugar() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugarLogger
}

func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return logger.Sync()
}

func Debug(args ...interface{}) {
	sugar().Debug(args...)
}

func Debugf(template string, args ...interface{}) {
	sugar().Debugf(template, args...)
}

func LDebug(msg string, fields ...Field) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debug(msg, fields...)
}

func Info(args ...interface{}) {
	sugar().Info(args...)
}

func LInfo(msg string, fields ...Field) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Info(msg, fields...)
}

func Infof(template string, args ...interface{}) {
	sugar().Infof(template, args...)
}

func Warn(args ...interface{}) {
	sugar().Warn(args...)
}

func Warnf(template string, args ...interface{}) {
	sugar().Warnf(template, args...)
}

func LWarn(msg string, fields ...Field) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Warn(msg, fields...)
}

func Error(args ...interface{}) {
	sugar().Error(args...)
}

func Errorf(template string, args ...interface{}) {
	sugar().Errorf(template, args...)
}

func Fatalf(template string, args ...interface{}) {
	sugar().Fatalf(template, args...)
}
