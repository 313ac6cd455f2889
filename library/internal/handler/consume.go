package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

// Consumer stores circulation events into the report feed.
type Consumer struct {
	events EventRecorder
	log    *zap.Logger
	ready  chan bool
}

func NewConsumer(events EventRecorder, log *zap.Logger) *Consumer {
	return &Consumer{
		events: events,
		log:    log.Named("consumer"),
		ready:  make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if err := consumer.handle(session.Context(), message); err != nil {
				consumer.log.Error("record event", zap.Error(err), zap.Int64("offset", message.Offset))
				if !errors.Is(err, errs.ErrValidation) {
					continue
				}
			}
			consumer.log.Debug("message claimed",
				zap.String("value", string(message.Value)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle stores one message. Malformed payloads come back as validation errors.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var ev kafka.EventCirculation
	if err := json.Unmarshal(message.Value, &ev); err != nil {
		return errors.Wrap(errs.ErrValidation, err.Error())
	}
	return consumer.events.RecordEvent(ctx, model.CirculationEvent{
		ID:         ev.ID,
		Type:       string(ev.Type),
		MemberID:   ev.MemberID,
		BookID:     ev.BookID,
		LoanID:     ev.LoanID,
		FineID:     ev.FineID,
		Amount:     ev.Amount,
		OccurredAt: ev.Timestamp,
	})
}
