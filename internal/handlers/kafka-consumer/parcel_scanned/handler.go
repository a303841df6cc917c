package parcel_scanned

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"curior/internal/entities"
	parcelservice "curior/internal/service/parcel"
	"curior/pkg/logger"
)

// scannedEvent is one barcode scan from a hub gate or a driver app.
// Scans go through the same lifecycle checks as the HTTP API: a scan
// that skips a step is dropped, not applied.
type scannedEvent struct {
	TrackingID string `json:"tracking_id"`
	Status     string `json:"status"`
	ActorRole  string `json:"actor_role"`
}

type Handler struct {
	parcelService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, parcelService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		parcelService:            parcelService,
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
				h.log.Info("parcel.status.scanned: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("parcel.status.scanned: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true
// when ConsumeClaim should stop (context cancelled mid-processing so
// the message is reprocessed after rebalance), false to keep going.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event scannedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("parcel.status.scanned handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_id", event.TrackingID),
		logger.NewField("status", event.Status),
		logger.NewField("actor_role", event.ActorRole),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("parcel.status.scanned processing")

	target := entities.ParcelStatusType(event.Status)
	actor := entities.RoleType(event.ActorRole)

	updated, err := h.parcelService.ProcessScan(ctx, event.TrackingID, target, actor)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.scanned handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, parcelservice.ErrInvalidTransition),
			errors.Is(err, parcelservice.ErrTerminalState),
			errors.Is(err, parcelservice.ErrUnauthorized),
			errors.Is(err, parcelservice.ErrUnassignedDriver):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.scanned handler dropped illegal scan")

		case errors.Is(err, parcelservice.ErrParcelNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.scanned handler unknown tracking id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.scanned handler failed to process scan")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("parcel", updated.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", updated.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("parcel.status.scanned: processed")

	sess.MarkMessage(message, "")
	return false
}
