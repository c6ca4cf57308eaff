package delivery_intake

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	deliveryservice "dispatch/internal/service/delivery"
	"dispatch/pkg/logger"
)

type Handler struct {
	deliveryService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, deliveryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		deliveryService:          deliveryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.intake: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("delivery.intake: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled, message left unmarked for
// reprocessing) and false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event intakeEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.intake handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("name", event.Nome),
		logger.NewField("date_marker", event.Dia),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.intake processing")

	created, err := h.deliveryService.CreateDelivery(ctx, event.toModify())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.intake handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, deliveryservice.ErrInvalidTimeMarker):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.intake handler rejected document with malformed time marker")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.intake handler failed to persist delivery")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("delivery", created.ID),
		logger.NewField("date_marker", created.DateMarker),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("delivery.intake: persisted")

	sess.MarkMessage(message, "")
	return false
}
