package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores a request id for Time and handler logging.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation. Use as
//
//	defer obs.Time(ctx, logger, "op")(&err)
func Time(ctx context.Context, logger *zap.Logger, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("req_id", RequestID(ctx)),
			zap.String("op", name),
			zap.Duration("dur", time.Since(start)),
		}

		if errp != nil && *errp != nil {
			logger.Debug("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		logger.Debug("operation done", fields...)
	}
}
