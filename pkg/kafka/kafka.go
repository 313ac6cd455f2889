package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	CirculationTopic         = "library.circulation"
	CirculationConsumerGroup = "library-circulation-events"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventLoanIssued   EventType = "loan.issued"
	EventLoanReturned EventType = "loan.returned"
	EventLoanRenewed  EventType = "loan.renewed"
	EventFineAssessed EventType = "fine.assessed"
	EventFinePaid     EventType = "fine.paid"
)

// EventCirculation is the message published for every committed circulation state change.
type EventCirculation struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	MemberID  int64           `json:"memberID"`
	BookID    *int64          `json:"bookID,omitempty"`
	LoanID    *int64          `json:"loanID,omitempty"`
	FineID    *int64          `json:"fineID,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume blocks serving handler until ctx is done or the group is closed.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error("group.Consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}

type Enqueuer interface {
	Enqueue(topic string, key string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
