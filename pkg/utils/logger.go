package utils

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 로그 레벨 정의
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// 로그 레벨을 문자열로 변환
func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

var (
	isDebugMode bool
	debugOnce   sync.Once

	baseLogger *zap.Logger
	loggerOnce sync.Once
)

// IsDebug는 현재 애플리케이션이 디버그 모드로 실행 중인지 확인합니다
func IsDebug() bool {
	debugOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		isDebugMode = env == "dev" || env == "local"
	})
	return isDebugMode
}

// Logger는 공용 zap 로거를 반환합니다.
// 디버그 모드에서는 개발용 콘솔 출력, 그 외에는 JSON 출력을 사용합니다.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		var cfg zap.Config
		if IsDebug() {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
			cfg.EncoderConfig.TimeKey = "time"
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		}

		logger, err := cfg.Build(zap.AddCallerSkip(2))
		if err != nil {
			fmt.Fprintf(os.Stderr, "로거 초기화 실패, nop 로거 사용: %v\n", err)
			logger = zap.NewNop()
		}
		baseLogger = logger
	})
	return baseLogger
}

// LogMessage는 지정된 레벨에 해당하는 로그 메시지를 출력합니다
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	if level == DEBUG && !IsDebug() {
		return
	}

	sugar := Logger().Sugar().With("service", service)
	message := fmt.Sprintf(format, args...)

	switch level {
	case DEBUG:
		sugar.Debug(message)
	case INFO:
		sugar.Info(message)
	case WARN:
		sugar.Warn(message)
	default:
		// 에러 레벨 이상은 메트릭에도 기록
		sugar.Error(message)
		RecordError(service, level.String())
	}
}

// 편의성 함수들
func Debug(service, format string, args ...interface{}) {
	LogMessage(DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	LogMessage(INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	LogMessage(WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	LogMessage(ERROR, service, format, args...)
}

func Fatal(service, format string, args ...interface{}) {
	LogMessage(FATAL, service, format, args...)
	_ = Logger().Sync()
	os.Exit(1)
}

// Sync는 버퍼에 남은 로그를 내보냅니다
func Sync() {
	_ = Logger().Sync()
}
