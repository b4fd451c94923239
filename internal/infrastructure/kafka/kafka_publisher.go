package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/segmentio/kafka-go"
)

const publishTimeout = 30 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type PriceRecordPublisher struct {
	writer messageWriter
}

func NewPriceRecordPublisher(brokers []string, topic string) *PriceRecordPublisher {
	return &PriceRecordPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// PublishRecords sends one message per record, keyed by market, so every
// market keeps its order within a partition.
func (p *PriceRecordPublisher) PublishRecords(ctx context.Context, runID string, records []domain.NormalizedRecord) error {
	if len(records) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(records))
	now := time.Now()
	for _, r := range records {
		v, err := json.Marshal(PriceRecordEvent{
			RunID:     runID,
			Timestamp: r.Timestamp,
			Market:    r.Market,
			Price:     domain.FormatPrice(r.Price),
		})
		if err != nil {
			return fmt.Errorf("%w: marshal %s: %w", domain.ErrPublish, r.Market, err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(r.Market),
			Value: v,
			Time:  now,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("%w: failed to write batch messages: %w", domain.ErrPublish, err)
	}
	return nil
}

func (p *PriceRecordPublisher) Close() error {
	return p.writer.Close()
}
