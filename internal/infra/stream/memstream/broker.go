// Package memstream is an in-process partitioned log with consumer-group offsets.
// It stands in for Kafka in tests and local runs.
package memstream

import (
	"context"
	"hash/fnv"
	"sync"

	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/lifecycle"
	"purchase-pipeline/internal/usecase/ingest"
)

var (
	ErrUnavailable = errs.New("memstream: broker unavailable")
	ErrClosed      = errs.New("memstream: subscriber closed")
)

type record struct {
	key   []byte
	value []byte
}

type topic struct {
	partitions [][]record
	// committed[group][partition] is the next offset the group will read.
	committed map[string]map[int]int64
}

type Broker struct {
	mu         sync.Mutex
	partitions int
	topics     map[string]*topic
	available  bool
	// wake is closed and replaced on every append so blocked fetches re-scan.
	wake chan struct{}
}

func NewBroker(partitions int) *Broker {
	if partitions < 1 {
		partitions = 1
	}
	return &Broker{
		partitions: partitions,
		topics:     make(map[string]*topic),
		available:  true,
		wake:       make(chan struct{}),
	}
}

// SetAvailable simulates losing and regaining the broker.
func (b *Broker) SetAvailable(up bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.available = up
	b.broadcastLocked()
}

// PartitionFor maps a key the same way on every call.
func (b *Broker) PartitionFor(key []byte) int {
	h := fnv.New32a()
	_, _ = h.Write(key)
	return int(h.Sum32() % uint32(b.partitions))
}

// Len returns the number of records in one partition.
func (b *Broker) Len(topicName string, partition int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.topics[topicName]
	if !ok {
		return 0
	}
	return len(t.partitions[partition])
}

func (b *Broker) Publisher(topicName string) *Publisher {
	return &Publisher{broker: b, topic: topicName}
}

// Subscriber joins group on topicName. Partitions the group never committed start
// at their current end, so earlier records are skipped.
func (b *Broker) Subscriber(topicName, group string) *Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.topicLocked(topicName)
	positions := make([]int64, b.partitions)
	offsets := t.committed[group]
	for p := range positions {
		if off, ok := offsets[p]; ok {
			positions[p] = off
			continue
		}
		positions[p] = int64(len(t.partitions[p]))
	}

	return &Subscriber{broker: b, topic: topicName, group: group, positions: positions}
}

func (b *Broker) Dependency() lifecycle.Dependency {
	return brokerDependency{b: b}
}

func (b *Broker) topicLocked(name string) *topic {
	t, ok := b.topics[name]
	if !ok {
		t = &topic{
			partitions: make([][]record, b.partitions),
			committed:  make(map[string]map[int]int64),
		}
		b.topics[name] = t
	}
	return t
}

func (b *Broker) broadcastLocked() {
	close(b.wake)
	b.wake = make(chan struct{})
}

type Publisher struct {
	broker *Broker
	topic  string
}

func (p *Publisher) Publish(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b := p.broker
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.available {
		return ErrUnavailable
	}

	t := b.topicLocked(p.topic)
	part := b.PartitionFor(key)
	t.partitions[part] = append(t.partitions[part], record{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	})
	b.broadcastLocked()
	return nil
}

func (p *Publisher) Close() error { return nil }

type Subscriber struct {
	broker    *Broker
	topic     string
	group     string
	positions []int64
	next      int
	closed    bool
}

// Fetch blocks until a record is available, ctx is done or the subscriber is closed.
// Partitions are scanned round robin; order within a partition is preserved.
func (s *Subscriber) Fetch(ctx context.Context) (ingest.Message, error) {
	b := s.broker
	for {
		b.mu.Lock()
		if s.closed {
			b.mu.Unlock()
			return ingest.Message{}, ErrClosed
		}
		if !b.available {
			b.mu.Unlock()
			return ingest.Message{}, ErrUnavailable
		}

		t := b.topicLocked(s.topic)
		for i := 0; i < b.partitions; i++ {
			part := (s.next + i) % b.partitions
			pos := s.positions[part]
			if pos < int64(len(t.partitions[part])) {
				rec := t.partitions[part][pos]
				s.positions[part] = pos + 1
				s.next = (part + 1) % b.partitions
				b.mu.Unlock()
				return ingest.Message{
					Topic:     s.topic,
					Partition: part,
					Offset:    pos,
					Key:       rec.key,
					Value:     rec.value,
				}, nil
			}
		}
		wake := b.wake
		b.mu.Unlock()

		select {
		case <-ctx.Done():
			return ingest.Message{}, ctx.Err()
		case <-wake:
		}
	}
}

func (s *Subscriber) Commit(ctx context.Context, msg ingest.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b := s.broker
	b.mu.Lock()
	defer b.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if !b.available {
		return ErrUnavailable
	}

	t := b.topicLocked(s.topic)
	offsets, ok := t.committed[s.group]
	if !ok {
		offsets = make(map[int]int64)
		t.committed[s.group] = offsets
	}
	if next := msg.Offset + 1; next > offsets[msg.Partition] {
		offsets[msg.Partition] = next
	}
	return nil
}

// Close leaves the group without committing anything further.
func (s *Subscriber) Close() error {
	b := s.broker
	b.mu.Lock()
	defer b.mu.Unlock()
	s.closed = true
	b.broadcastLocked()
	return nil
}

type brokerDependency struct {
	b *Broker
}

func (d brokerDependency) Name() string { return lifecycle.DependencyStream }

func (d brokerDependency) Connect(ctx context.Context) error { return d.Check(ctx) }

func (d brokerDependency) Check(_ context.Context) error {
	d.b.mu.Lock()
	defer d.b.mu.Unlock()
	if !d.b.available {
		return ErrUnavailable
	}
	return nil
}
