package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/salarymaster"
	salarymastererrors "go-hrms/internal/salarymaster/errors"
	salarymasterMock "go-hrms/internal/salarymaster/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeReader replays msgs once and then cancels the consumer.
type fakeReader struct {
	msgs      []kafkago.Message
	fetchErrs []error
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.fetchErrs) > 0 {
		err := r.fetchErrs[0]
		r.fetchErrs = r.fetchErrs[1:]
		return kafkago.Message{}, err
	}
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func lifecycleMessage(t *testing.T, offset int64, eventType string, code int) kafkago.Message {
	t.Helper()
	value, err := json.Marshal(events.EmployeeLifecycleEvent{
		EventType:    eventType,
		EmployeeID:   "emp-1",
		EmployeeCode: code,
	})
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: value}
}

func run(t *testing.T, svc salarymaster.Service, msgs ...kafkago.Message) (*fakeReader, *observer.ObservedLogs) {
	t.Helper()
	return runReader(t, svc, &fakeReader{msgs: msgs})
}

func runReader(t *testing.T, svc salarymaster.Service, reader *fakeReader) (*fakeReader, *observer.ObservedLogs) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core, logs := observer.New(zapcore.DebugLevel)
	reader.cancel = cancel
	consumer.ConsumeEmployeeLifecycle(ctx, reader, svc, zap.New(core),
		consumer.WithRetry(3, time.Millisecond),
		consumer.WithFetchDelay(time.Millisecond),
	)
	return reader, logs
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	t.Run("warns about orphaned salary master", func(t *testing.T) {
		svc := salarymasterMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetByEmployeeCode(gomock.Any(), 1234).
			Return(salarymaster.SalaryMasterResponse{ID: "sm-1", EmployeeCode: 1234}, nil)

		reader, logs := run(t, svc, lifecycleMessage(t, 7, events.EventEmployeeDeleted, 1234))

		assert.Equal(t, []int64{7}, reader.committed)
		warns := logs.FilterMessage("salary master orphaned by employee deletion").All()
		require.Len(t, warns, 1)
		assert.Equal(t, "sm-1", warns[0].ContextMap()["salary_master_id"])
	})

	t.Run("no salary master", func(t *testing.T) {
		svc := salarymasterMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetByEmployeeCode(gomock.Any(), 1234).
			Return(salarymaster.SalaryMasterResponse{}, salarymastererrors.ErrSalaryMasterNotFound)

		reader, logs := run(t, svc, lifecycleMessage(t, 3, events.EventEmployeeDeleted, 1234))

		assert.Equal(t, []int64{3}, reader.committed)
		assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	})

	t.Run("transient lookup failure is retried before commit", func(t *testing.T) {
		svc := salarymasterMock.NewMockService(gomock.NewController(t))
		gomock.InOrder(
			svc.EXPECT().GetByEmployeeCode(gomock.Any(), 1234).
				Return(salarymaster.SalaryMasterResponse{}, errors.New("connection reset")),
			svc.EXPECT().GetByEmployeeCode(gomock.Any(), 1234).
				Return(salarymaster.SalaryMasterResponse{ID: "sm-1", EmployeeCode: 1234}, nil),
		)

		reader, logs := run(t, svc,
			lifecycleMessage(t, 3, events.EventEmployeeDeleted, 1234),
			lifecycleMessage(t, 4, events.EventEmployeeOnboarded, 5678),
		)

		assert.Equal(t, []int64{3, 4}, reader.committed)
		assert.Equal(t, 1, logs.FilterMessage("handle employee lifecycle event failed").Len())
		assert.Equal(t, 1, logs.FilterMessage("salary master orphaned by employee deletion").Len())
	})

	t.Run("persistent failure is given up after the last attempt", func(t *testing.T) {
		svc := salarymasterMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetByEmployeeCode(gomock.Any(), 1234).
			Return(salarymaster.SalaryMasterResponse{}, errors.New("connection reset")).
			Times(3)

		reader, logs := run(t, svc, lifecycleMessage(t, 3, events.EventEmployeeDeleted, 1234))

		assert.Equal(t, []int64{3}, reader.committed)
		assert.Equal(t, 3, logs.FilterMessage("handle employee lifecycle event failed").Len())
		assert.Equal(t, 1, logs.FilterMessage("giving up on employee lifecycle event").Len())
	})

	t.Run("fetch error backs off and resumes", func(t *testing.T) {
		svc := salarymasterMock.NewMockService(gomock.NewController(t))

		reader, logs := runReader(t, svc, &fakeReader{
			fetchErrs: []error{errors.New("broker unavailable")},
			msgs:      []kafkago.Message{lifecycleMessage(t, 9, events.EventEmployeeOnboarded, 1234)},
		})

		assert.Equal(t, []int64{9}, reader.committed)
		assert.Equal(t, 1, logs.FilterMessage("fetch employee lifecycle message failed").Len())
	})

	t.Run("onboarded and malformed messages are committed", func(t *testing.T) {
		svc := salarymasterMock.NewMockService(gomock.NewController(t))

		reader, _ := run(t, svc,
			lifecycleMessage(t, 1, events.EventEmployeeOnboarded, 1234),
			kafkago.Message{Offset: 2, Value: []byte("{not json")},
		)

		assert.Equal(t, []int64{1, 2}, reader.committed)
	})
}
