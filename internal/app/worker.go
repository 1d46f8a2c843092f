package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-hrms/internal/config"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/messaging/kafka/producer"
	"go-hrms/internal/shared/connection"

	"go.uber.org/zap"
)

var errKafkaBrokerRequired = errors.New("KAFKA_BROKER is required")

// RunWorker relays pending outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return errKafkaBrokerRequired
	}

	_, sqlDB, err := connectDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Kafka.PollInterval)

	logger.Info("worker shutting down")
	return nil
}
