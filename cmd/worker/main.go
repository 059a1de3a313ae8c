package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/UmerAzizGujjar/portfolio/adapters/email"
	"github.com/UmerAzizGujjar/portfolio/adapters/event"
	"github.com/UmerAzizGujjar/portfolio/internal/config"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/contact"
)

func main() {
	fmt.Println("Starting Portfolio Notification Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	// SMTP Mailer
	mailer, err := email.NewSMTPMailer(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize mailer: %v", err)
	}

	// Kafka Consumer
	contactConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContactEvents,
		GroupID:  "contact-notifier-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contactConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContactEvents)

	ctx := context.Background()
	for {
		msg, err := contactConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		var payload event.ContactEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(contactConsumer, msg)
			continue
		}

		if payload.EventType != event.ContactEventTypeSubmitted {
			log.Printf("Unknown event type '%s'. Skipping.", payload.EventType)
			commitMessage(contactConsumer, msg)
			continue
		}

		submitted := &contact.Contact{
			ID:        payload.ContactID,
			Name:      payload.Name,
			Email:     payload.Email,
			Message:   payload.Message,
			CreatedAt: payload.SubmittedAt,
		}

		if err := mailer.SendContactNotification(ctx, submitted); err != nil {
			log.Printf("ERROR: Failed to send notification for contact %s: %v", payload.ContactID, err)
			continue
		}

		log.Printf("Notification email sent for contact %s", payload.ContactID)
		commitMessage(contactConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
