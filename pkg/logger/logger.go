package logger

import (
	"context"
	"time"

	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const loggerKey contextKey = "logger"

var log = zap.NewNop()

// Init builds the global logger from configuration
func Init(cfg config.LogConfig) error {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Environment == "production" {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	built, err := zc.Build(zap.Fields(
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
	))
	if err != nil {
		return err
	}

	log = built
	zap.ReplaceGlobals(log)
	return nil
}

// L returns the global logger instance
func L() *zap.Logger {
	return log
}

// WithContext adds the logger to the context
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the request logger, falling back to the global one
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return log
}

// Middleware logs every request and attaches a request-scoped logger to the user context.
// It expects the requestid middleware to run first.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, _ := c.Locals("requestid").(string)
		reqLogger := log.With(zap.String("request_id", requestID))
		c.SetUserContext(WithContext(c.UserContext(), reqLogger))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = errorStatus(err, fiber.StatusInternalServerError)
		}

		reqLogger.Info("HTTP Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

// errorStatus is the status the error handler will write for err
func errorStatus(err error, fallback int) int {
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	if appErr, ok := apperror.As(err); ok {
		return appErr.Status()
	}
	return fallback
}
