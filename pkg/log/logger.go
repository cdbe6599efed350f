package log

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	StoreKey ctxKey = "Store"
	OpKey    ctxKey = "Op"
)

// Loggable is anything that carries a context with log tags and a logger
// to write them to.
type Loggable interface {
	Ctx() context.Context
	Logger() *zap.Logger
}

// WithOp tags ctx with the name of the operation being performed.
func WithOp(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, OpKey, op)
}

func ctxFields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if store := ctx.Value(StoreKey); store != nil {
		fields = append(fields, zap.Any("store", store))
	}
	if op := ctx.Value(OpKey); op != nil {
		fields = append(fields, zap.Any("op", op))
	}
	return fields
}

func Debug(l Loggable, msg string, fields ...zap.Field) {
	l.Logger().Debug(msg, append(ctxFields(l.Ctx()), fields...)...)
}

func Info(l Loggable, msg string, fields ...zap.Field) {
	l.Logger().Info(msg, append(ctxFields(l.Ctx()), fields...)...)
}

func Warn(l Loggable, msg string, fields ...zap.Field) {
	l.Logger().Warn(msg, append(ctxFields(l.Ctx()), fields...)...)
}
