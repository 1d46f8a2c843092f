package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/salarymaster"
	salarymastererrors "go-hrms/internal/salarymaster/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type options struct {
	attempts   int
	retryDelay time.Duration
	fetchDelay time.Duration
}

// Option tunes how the consumer retries.
type Option func(*options)

// WithRetry sets how many times an event is handled before it is given up,
// and the first delay between tries. The delay doubles after each failure.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(o *options) {
		if attempts > 0 {
			o.attempts = attempts
		}
		o.retryDelay = delay
	}
}

// WithFetchDelay sets the pause after a failed fetch.
func WithFetchDelay(delay time.Duration) Option {
	return func(o *options) { o.fetchDelay = delay }
}

// ConsumeEmployeeLifecycle watches employee lifecycle events. Salary masters
// are keyed by employee code without a foreign key, so a deleted employee can
// leave one behind; those are reported, never removed.
//
// A failing event is retried with exponential backoff. Once the attempts are
// spent it is logged and committed so the partition keeps moving; it is never
// skipped while a later offset gets committed over it.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	salaryMasterService salarymaster.Service,
	logger *zap.Logger,
	opts ...Option,
) {
	o := options{attempts: 5, retryDelay: 500 * time.Millisecond, fetchDelay: time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			if !sleep(ctx, o.fetchDelay) {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			continue
		}

		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			commit(ctx, reader, msg, log)
			continue
		}

		delay := o.retryDelay
		for attempt := 1; ; attempt++ {
			err := handleLifecycleEvent(ctx, event, salaryMasterService, log)
			if err == nil {
				break
			}
			log.Error("handle employee lifecycle event failed",
				zap.String("event_type", event.EventType),
				zap.Int("employee_code", event.EmployeeCode),
				zap.Int64("offset", msg.Offset),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", o.attempts),
				zap.Error(err),
			)
			if attempt >= o.attempts {
				log.Error("giving up on employee lifecycle event",
					zap.String("event_type", event.EventType),
					zap.Int("employee_code", event.EmployeeCode),
					zap.Int64("offset", msg.Offset),
				)
				break
			}
			if !sleep(ctx, delay) {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			delay *= 2
		}

		commit(ctx, reader, msg, log)
	}
}

func handleLifecycleEvent(
	ctx context.Context,
	event events.EmployeeLifecycleEvent,
	salaryMasterService salarymaster.Service,
	log *zap.Logger,
) error {
	fields := []zap.Field{
		zap.String("employee_id", event.EmployeeID),
		zap.Int("employee_code", event.EmployeeCode),
		zap.String("request_id", event.RequestID),
	}

	switch event.EventType {
	case events.EventEmployeeOnboarded:
		log.Info("employee onboarded", fields...)
		return nil
	case events.EventEmployeeDeleted:
		sm, err := salaryMasterService.GetByEmployeeCode(ctx, event.EmployeeCode)
		if errors.Is(err, salarymastererrors.ErrSalaryMasterNotFound) {
			log.Debug("deleted employee had no salary master", fields...)
			return nil
		}
		if err != nil {
			return err
		}
		log.Warn("salary master orphaned by employee deletion",
			append(fields, zap.String("salary_master_id", sm.ID))...,
		)
		return nil
	default:
		log.Debug("ignoring employee lifecycle event", append(fields, zap.String("event_type", event.EventType))...)
		return nil
	}
}

// sleep waits for d and reports false when ctx ends first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit employee lifecycle message failed", zap.Error(err))
	}
}
