package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/models/events"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes ledger entry events to a single topic.
type Publisher struct {
	writer messageWriter
}

var _ portssvc.EventPublisher = (*Publisher)(nil)

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 5 * time.Second,
			// one event per request; do not wait for a batch to fill
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishEntryRecorded writes one event keyed by the entry ID.
func (p *Publisher) PublishEntryRecorded(ctx context.Context, entry domain.LedgerEntry) error {
	msg, err := newEntryRecordedMessage(entry, uuid.NewString())
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish ledger entry %d: %w", entry.ID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func newEntryRecordedMessage(entry domain.LedgerEntry, eventID string) (kafka.Message, error) {
	data, err := json.Marshal(events.LedgerEntryRecorded{
		EventID:          eventID,
		EntryID:          entry.ID,
		Type:             string(entry.Direction),
		Amount:           json.Number(domain.FormatAmount(entry.Amount)),
		NotificationSent: entry.NotificationSent,
		OccurredAt:       entry.CreatedAt,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode ledger entry event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(entry.ID, 10)),
		Value: data,
		Time:  entry.CreatedAt,
	}, nil
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

var _ portssvc.EventPublisher = NoopPublisher{}

func (NoopPublisher) PublishEntryRecorded(context.Context, domain.LedgerEntry) error { return nil }

func (NoopPublisher) Close() error { return nil }
