package config

import "github.com/segmentio/kafka-go"

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{}, // Balancer for selecting partition
		AllowAutoTopicCreation: true,
	}
}
