package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/UmerAzizGujjar/portfolio/internal/config"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/contact"
)

const (
	TopicContactEvents = "contact.events"
)

type ContactEventType string

const (
	ContactEventTypeSubmitted ContactEventType = "contact.submitted"
)

type ContactEventPayload struct {
	EventType   ContactEventType `json:"event_type"`
	ContactID   uuid.UUID        `json:"contact_id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Message     string           `json:"message"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

type KafkaProducerClient struct {
	ContactEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contactWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{
		ContactEventsWriter: contactWriter,
	}, nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producer")
}

// NotifySubmitted publishes a contact.submitted event. It implements
// service.ContactNotifier; delivery to the owner happens in the worker.
func (c *KafkaProducerClient) NotifySubmitted(ctx context.Context, submitted *contact.Contact) error {
	payload := ContactEventPayload{
		EventType:   ContactEventTypeSubmitted,
		ContactID:   submitted.ID,
		Name:        submitted.Name,
		Email:       submitted.Email,
		Message:     submitted.Message,
		SubmittedAt: submitted.CreatedAt,
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact event: %w", err)
	}

	return c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(submitted.ID.String()),
		Value: value,
	})
}
