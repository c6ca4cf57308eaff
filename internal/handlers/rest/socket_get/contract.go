package socket_get

import (
	"context"

	"dispatch/internal/hub"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Register(s hub.Session) int64
	Unregister(s hub.Session)
	Dispatch(ctx context.Context, s hub.Session, frame hub.Envelope)
}
