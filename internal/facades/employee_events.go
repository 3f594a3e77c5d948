package facades

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=employee_events.go -destination=mock_employee_events.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EmployeeEventsKafkaFacade publishes employee change events to Kafka.
type EmployeeEventsKafkaFacade struct {
	writer KafkaWriter
}

// NewEmployeeEventsKafkaFacade creates a new facade over a Kafka writer.
func NewEmployeeEventsKafkaFacade(writer KafkaWriter) *EmployeeEventsKafkaFacade {
	return &EmployeeEventsKafkaFacade{writer: writer}
}

// Publish writes the event as JSON, keyed by employee id so that
// all changes of one employee land on the same partition.
func (f *EmployeeEventsKafkaFacade) Publish(ctx context.Context, event models.EmployeeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal employee event", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(event.EmployeeID)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "operation", Value: []byte(event.Operation)},
		},
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish employee event to Kafka", "event_id", event.EventID, "error", err)
		return err
	}

	logger.Log.Infow("employee event published to Kafka",
		"event_id", event.EventID,
		"operation", event.Operation,
		"employee_id", event.EmployeeID,
	)
	return nil
}

// Close closes the underlying writer.
func (f *EmployeeEventsKafkaFacade) Close() error {
	return f.writer.Close()
}
