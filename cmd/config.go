package cmd

import "time"

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost             string
	KafkaConsumerGroup    string
	KafkaOrderPlacedTopic string

	KitchenToken       string
	KitchenTokenHeader string

	PreparationTime time.Duration
}
