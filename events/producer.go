package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

// DefaultTopic receives one message per new newsletter subscriber.
const DefaultTopic = "newsdesk.subscribers"

// SubscribedEvent is the payload published for each new subscriber.
type SubscribedEvent struct {
	Email        string    `json:"email"`
	SubscriberID int64     `json:"subscriber_id"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// Producer publishes subscriber events to Kafka.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducerFromEnv creates a producer when KAFKA_BROKERS (comma-separated)
// is set. Returns (nil, nil) when unconfigured.
func NewProducerFromEnv() (*Producer, error) {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = DefaultTopic
	}
	return &Producer{producer: producer, topic: topic}, nil
}

// PublishSubscribed emits a subscriber event keyed by email.
func (p *Producer) PublishSubscribed(_ context.Context, email string, subscriberID int64) error {
	payload, err := json.Marshal(SubscribedEvent{
		Email:        email,
		SubscriberID: subscriberID,
		SubscribedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(email),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}
