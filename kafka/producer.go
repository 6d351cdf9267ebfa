package kafka

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Producer publishes best-effort domain events. A nil Producer (no
// KAFKA_BROKER configured) is valid and drops everything.
type Producer struct {
	producer sarama.SyncProducer
}

func NewProducer(broker string) *Producer {
	if broker == "" {
		log.Println("Kafka broker not configured, events disabled")
		return nil
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	var producer sarama.SyncProducer
	var err error

	for i := 1; i <= 10; i++ {
		producer, err = sarama.NewSyncProducer([]string{broker}, config)
		if err == nil {
			log.Println("Kafka producer initialized")
			return &Producer{producer: producer}
		}

		log.Printf("Waiting for Kafka... (%d/10) Error: %v", i, err)
		time.Sleep(5 * time.Second)
	}

	log.Fatalf("Failed to start Kafka producer after retries: %v", err)
	return nil
}

func (p *Producer) PublishOrderCreated(event map[string]interface{}) {
	p.publish("order.created", event)
}

func (p *Producer) PublishOrderPaid(event map[string]interface{}) {
	p.publish("order.paid", event)
}

func (p *Producer) PublishPartCreated(event map[string]interface{}) {
	p.publish("part.created", event)
}

func (p *Producer) PublishPartDeleted(event map[string]interface{}) {
	p.publish("part.deleted", event)
}

func (p *Producer) publish(topic string, event map[string]interface{}) {
	if p == nil {
		return
	}

	event["eventId"] = uuid.NewString()
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal event: %v", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Printf("Failed to send Kafka message: %v", err)
		return
	}

	log.Printf("Published %s: %s", topic, string(data))
}

func (p *Producer) Close() {
	if p == nil {
		return
	}
	if err := p.producer.Close(); err != nil {
		log.Printf("kafka close: %v", err)
	}
}
