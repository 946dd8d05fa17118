package stream

import (
	"context"
	"time"

	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/usecase/ingest"

	"github.com/segmentio/kafka-go"
)

// Publisher writes purchase events to Kafka. Murmur2 hashing keeps every key on
// one partition, which preserves per-user order.
type Publisher struct {
	w *kafka.Writer
}

func NewPublisher(cfg config.StreamConfig) *Publisher {
	return &Publisher{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Murmur2Balancer{},
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           cfg.DialTimeout,
			AllowAutoTopicCreation: true,
			Transport: &kafka.Transport{
				DialTimeout: cfg.DialTimeout,
			},
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, key, value []byte) error {
	err := p.w.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return errs.Wrap(err, "kafka write")
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.w.Close()
}

// Subscriber reads the topic as a member of a consumer group. Commits are explicit
// and synchronous. A group with no committed offset starts at the newest message.
type Subscriber struct {
	r *kafka.Reader
}

func NewSubscriber(cfg config.StreamConfig) *Subscriber {
	return &Subscriber{
		r: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Brokers,
			GroupID:        cfg.GroupID,
			Topic:          cfg.Topic,
			StartOffset:    kafka.LastOffset,
			MinBytes:       1,
			MaxBytes:       10e6,
			MaxWait:        500 * time.Millisecond,
			CommitInterval: 0,
			Dialer: &kafka.Dialer{
				Timeout:   cfg.DialTimeout,
				DualStack: true,
			},
		}),
	}
}

func (s *Subscriber) Fetch(ctx context.Context) (ingest.Message, error) {
	m, err := s.r.FetchMessage(ctx)
	if err != nil {
		return ingest.Message{}, errs.Wrap(err, "kafka fetch")
	}
	return ingest.Message{
		Topic:     m.Topic,
		Partition: m.Partition,
		Offset:    m.Offset,
		Key:       m.Key,
		Value:     m.Value,
	}, nil
}

func (s *Subscriber) Commit(ctx context.Context, msg ingest.Message) error {
	err := s.r.CommitMessages(ctx, kafka.Message{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
	})
	if err != nil {
		return errs.Wrap(err, "kafka commit")
	}
	return nil
}

func (s *Subscriber) Close() error {
	return s.r.Close()
}
