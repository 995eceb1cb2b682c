// v1
// internal/sink/kafka.go

// Package sink publishes run snapshots to Kafka for downstream consumers
// (dashboards, archival, fleet analytics). The publisher is optional; a nil
// *Publisher accepts and drops everything.
package sink

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/hyve-systems-inc/simulations-sub001/internal/sim"
)

type Publisher struct {
	w   *kafka.Writer
	log *slog.Logger
}

// NewPublisher wires a writer for the snapshot topic. Messages are keyed by
// run id so one run's snapshots land on one partition, in order.
func NewPublisher(brokers []string, topic string, log *slog.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	log.Info("kafka snapshot publisher created", "topic", topic, "brokers", brokers)
	return &Publisher{w: w, log: log}
}

func (p *Publisher) Publish(ctx context.Context, snap sim.Snapshot) error {
	if p == nil {
		return nil
	}
	b, err := json.Marshal(snap)
	if err != nil {
		p.log.Error("snapshot marshal failed", "err", err)
		return err
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(snap.RunID),
		Value: b,
		Time:  time.Now(),
	})
	if err != nil {
		p.log.Error("kafka write failed", "err", err, "runId", snap.RunID, "step", snap.Step)
		return err
	}
	return nil
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if err := p.w.Close(); err != nil {
		p.log.Error("failed to close kafka writer", "err", err)
	}
}
