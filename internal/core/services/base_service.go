package services

import (
	"context"
	"log/slog"

	"github.com/gestorobras/gestor_diarias_app/internal/middleware"
)

// BaseService provides context-aware logging shared by all services.
type BaseService struct{}

// LogInfo logs an info message with the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	middleware.GetLoggerFromCtx(ctx).Info(msg, args...)
}

// LogWarn logs a warning with the request-scoped logger.
func (s *BaseService) LogWarn(ctx context.Context, msg string, args ...any) {
	middleware.GetLoggerFromCtx(ctx).Warn(msg, args...)
}

// LogError logs an error with the request-scoped logger.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, args ...any) {
	args = append(args, slog.String("error", err.Error()))
	middleware.GetLoggerFromCtx(ctx).Error(msg, args...)
}
