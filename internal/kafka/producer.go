package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
)

// Producer publishes booking lifecycle events. With no brokers configured
// it runs in mock mode: events are logged, nothing is sent.
type Producer struct {
	producer    sarama.SyncProducer
	topicPrefix string
	mockMode    bool
	log         *logger.Logger
}

func NewProducer(brokers []string, topicPrefix string, log *logger.Logger) (*Producer, error) {
	if len(brokers) == 0 {
		log.LogKafka("MOCK_MODE", "producer", "No brokers configured - events will be logged only")
		return &Producer{
			producer:    nil,
			topicPrefix: topicPrefix,
			mockMode:    true,
			log:         log,
		}, nil
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	log.LogKafka("CONNECTED", "producer", fmt.Sprintf("Connected to Kafka brokers: %v", brokers))
	return &Producer{
		producer:    producer,
		topicPrefix: topicPrefix,
		mockMode:    false,
		log:         log,
	}, nil
}

// PublishBookingEvent sends a booking event keyed by booking id.
func (p *Producer) PublishBookingEvent(event *models.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	topic := p.getTopicForEvent(event.Type)

	if p.mockMode {
		p.log.LogKafka("MOCK_PUBLISH", topic, fmt.Sprintf("Mock publishing event: %s for booking %d", event.Type, event.BookingID))
		return nil
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", event.BookingID)),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Error("KAFKA", fmt.Sprintf("Failed to send message to topic %s: %v", topic, err))
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.log.LogKafka("PUBLISHED", topic, fmt.Sprintf("Message sent to partition %d at offset %d for booking %d", partition, offset, event.BookingID))
	return nil
}

func (p *Producer) getTopicForEvent(eventType string) string {
	switch eventType {
	case "booking.created":
		return p.topicPrefix + "-bookings"
	default:
		return p.topicPrefix + "-events"
	}
}

func (p *Producer) Close() error {
	if p.mockMode {
		return nil
	}
	if p.producer != nil {
		p.log.LogKafka("CLOSING", "producer", "Closing Kafka producer connection")
		return p.producer.Close()
	}
	return nil
}
