// Package kafka publishes the cleaning report of each run to a Kafka
// topic as a single JSON message keyed by run id.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/alexanderjulianmartinez/censusclean/internal/report"
	"github.com/alexanderjulianmartinez/censusclean/internal/sink"
	"github.com/alexanderjulianmartinez/censusclean/pkg/types"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	w       messageWriter
	topic   string
	timeout time.Duration
}

// Payload is the JSON document written for each run.
type Payload struct {
	Summary types.RunSummary `json:"summary"`
	Report  *report.Report   `json:"report"`
}

func New(brokers []string, topic string) (*Publisher, error) {
	var addrs []string
	for _, b := range brokers {
		b = strings.TrimSpace(b)
		if b != "" {
			addrs = append(addrs, b)
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no kafka brokers provided")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{w: w, topic: topic, timeout: 10 * time.Second}, nil
}

func (p *Publisher) Name() string { return "kafka" }

func (p *Publisher) Close() error { return p.w.Close() }

func (p *Publisher) Write(ctx context.Context, out sink.Output) error {
	msg, err := BuildMessage(out)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish report to %s: %w", p.topic, err)
	}
	slog.Info("Cleaning report published",
		slog.String("topic", p.topic),
		slog.String("run_id", out.Summary.RunID))
	return nil
}

// BuildMessage encodes the run summary and report of out.
func BuildMessage(out sink.Output) (kafka.Message, error) {
	value, err := json.Marshal(Payload{Summary: out.Summary, Report: out.Report})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode report: %w", err)
	}
	return kafka.Message{
		Key:   []byte(out.Summary.RunID),
		Value: value,
		Time:  out.Summary.StartedAt,
		Headers: []kafka.Header{
			{Key: "status", Value: []byte(out.Summary.Status)},
		},
	}, nil
}
