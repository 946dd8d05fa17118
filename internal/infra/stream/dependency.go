package stream

import (
	"context"

	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/lifecycle"

	"github.com/segmentio/kafka-go"
)

// BrokerDependency reports broker reachability to the lifecycle supervisor.
type BrokerDependency struct {
	brokers []string
	dialer  *kafka.Dialer
}

var _ lifecycle.Dependency = (*BrokerDependency)(nil)

func NewBrokerDependency(cfg config.StreamConfig) *BrokerDependency {
	return &BrokerDependency{
		brokers: cfg.Brokers,
		dialer: &kafka.Dialer{
			Timeout:   cfg.DialTimeout,
			DualStack: true,
		},
	}
}

func (d *BrokerDependency) Name() string { return lifecycle.DependencyStream }

func (d *BrokerDependency) Connect(ctx context.Context) error {
	return d.Check(ctx)
}

// Check succeeds when any seed broker answers a metadata request.
func (d *BrokerDependency) Check(ctx context.Context) error {
	var lastErr error
	for _, addr := range d.brokers {
		conn, err := d.dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = conn.Brokers()
		_ = conn.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errs.New("no brokers configured")
	}
	return errs.Wrap(lastErr, "kafka unreachable")
}
