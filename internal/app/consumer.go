package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/salarymaster"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer follows the employee lifecycle topic and reports salary
// masters left behind by deleted employees.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return errKafkaBrokerRequired
	}

	gormDB, sqlDB, err := connectDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	salaryMasterRepo := salarymaster.NewRepository(gormDB)
	salaryMasterService := salarymaster.NewService(sqlDB, salaryMasterRepo, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeEmployeeLifecycle(ctx, reader, salaryMasterService, logger)

	logger.Info("consumer shutting down")
	return nil
}
