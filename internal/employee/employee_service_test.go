package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/shared/contextutil"

	employeeMock "go-hrms/internal/employee/mock"
	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

// setupServiceTest wires the service with a generator that returns the given
// offsets from MinEmployeeCode in order.
func setupServiceTest(t *testing.T, offsets ...int) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	next := 0
	gen := employee.NewCodeGenerator(repo, employee.WithIntN(func(int) int {
		v := offsets[next%len(offsets)]
		next++
		return v
	}))

	svc := employee.NewServiceWithGenerator(db, repo, gen, outboxRepo, dbRedis, zap.NewNop())

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeName:   "Asha Rao",
		EmployeeEmail:  "asha@example.com",
		EmployeeNumber: "9876543210",
		Dob:            "1990-05-01",
		JoiningDate:    "2020-01-01",
	}
}

func strPtr(v string) *string { return &v }

func TestEmployeeService_Onboard(t *testing.T) {
	t.Run("success - generates code and queues onboarded event", func(t *testing.T) {
		deps := setupServiceTest(t, 234)
		ctx := contextutil.WithRequestID(context.Background(), "rid-1")
		req := validCreateRequest()

		deps.repo.EXPECT().ExistsByCode(gomock.Any(), 1234).Return(false, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, 1234, e.EmployeeCode)
				assert.Equal(t, req.EmployeeName, e.EmployeeName)
				assert.Equal(t, req.EmployeeEmail, e.EmployeeEmail)
				assert.Equal(t, "1990-05-01", e.Dob.Format("2006-01-02"))
				assert.NotEqual(t, uuid.Nil, e.ID)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EventEmployeeOnboarded, ev.EventType)
				assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
				assert.Equal(t, "rid-1", ev.RequestID)

				var payload events.EmployeeLifecycleEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, 1234, payload.EmployeeCode)
				return nil
			})
		deps.sqlMock.ExpectCommit()
		deps.redismock.ExpectDel(employee.EmployeeSummaryKey).SetVal(1)

		resp, err := deps.service.Onboard(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 1234, resp.EmployeeCode)
		assert.Equal(t, "2020-01-01", resp.JoiningDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("retries with a new code when insert hits uq_employee_code", func(t *testing.T) {
		deps := setupServiceTest(t, 234, 235)
		ctx := context.Background()

		deps.repo.EXPECT().ExistsByCode(gomock.Any(), 1234).Return(false, nil)
		deps.repo.EXPECT().ExistsByCode(gomock.Any(), 1235).Return(false, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		gomock.InOrder(
			deps.repo.EXPECT().Create(ctx, gomock.Any()).
				Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_code"}),
			deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(employee.EmployeeSummaryKey).SetVal(1)

		resp, err := deps.service.Onboard(ctx, validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, 1235, resp.EmployeeCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email is not retried", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		ctx := context.Background()

		deps.repo.EXPECT().ExistsByCode(gomock.Any(), 1000).Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Onboard(ctx, validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeEmailAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("under eighteen at joining is rejected before any write", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		req := validCreateRequest()
		req.Dob = "2005-06-15"
		req.JoiningDate = "2023-06-14"

		_, err := deps.service.Onboard(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrAgeIneligible)
	})

	t.Run("exactly eighteen on joining day is accepted", func(t *testing.T) {
		deps := setupServiceTest(t, 1)
		ctx := context.Background()
		req := validCreateRequest()
		req.Dob = "2005-06-15"
		req.JoiningDate = "2023-06-15"

		deps.repo.EXPECT().ExistsByCode(gomock.Any(), 1001).Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(employee.EmployeeSummaryKey).SetVal(1)

		_, err := deps.service.Onboard(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("invalid date format", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		req := validCreateRequest()
		req.JoiningDate = "01/02/2020"

		_, err := deps.service.Onboard(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateFormat)
	})

	t.Run("blank name", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		req := validCreateRequest()
		req.EmployeeName = "   "

		_, err := deps.service.Onboard(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrMissingRequiredFields)
	})

	t.Run("generator failure surfaces", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		deps.repo.EXPECT().ExistsByCode(gomock.Any(), 1000).Return(false, errors.New("db down"))

		_, err := deps.service.Onboard(context.Background(), validCreateRequest())

		assert.EqualError(t, err, "db down")
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t, 0)
	ctx := context.Background()

	rows := []employee.Employee{{ID: uuid.New(), EmployeeCode: 1111, EmployeeName: "A"}}
	deps.repo.EXPECT().FindAllPaginated(ctx, 1, employee.DefaultPageLimit).Return(rows, int64(7), nil)

	resp, total, err := deps.service.GetAll(ctx, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, resp, 1)
	assert.Equal(t, 1111, resp[0].EmployeeCode)
}

func TestEmployeeService_GetSummary(t *testing.T) {
	ctx := context.Background()
	summary := []employee.EmployeeSummaryResponse{{EmployeeCode: 1234, EmployeeName: "Asha Rao"}}
	data, _ := json.Marshal(summary)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		deps.redismock.ExpectGet(employee.EmployeeSummaryKey).SetVal(string(data))

		resp, err := deps.service.GetSummary(ctx)

		require.NoError(t, err)
		assert.Equal(t, summary, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		deps.redismock.ExpectGet(employee.EmployeeSummaryKey).RedisNil()
		deps.repo.EXPECT().FindAllSummary(ctx).
			Return([]employee.EmployeeSummary{{EmployeeCode: 1234, EmployeeName: "Asha Rao"}}, nil)
		deps.redismock.ExpectSet(employee.EmployeeSummaryKey, data, time.Hour).SetVal("OK")

		resp, err := deps.service.GetSummary(ctx)

		require.NoError(t, err)
		assert.Equal(t, summary, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		deps.redismock.ExpectGet(employee.EmployeeSummaryKey).RedisNil()
		deps.repo.EXPECT().FindAllSummary(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.GetSummary(ctx)

		assert.Error(t, err)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid uuid", func(t *testing.T) {
		deps := setupServiceTest(t, 0)

		_, err := deps.service.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("found by code", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		deps.repo.EXPECT().FindByCode(ctx, 4321).Return(&employee.Employee{ID: uuid.New(), EmployeeCode: 4321}, nil)

		resp, err := deps.service.GetByCode(ctx, 4321)

		require.NoError(t, err)
		assert.Equal(t, 4321, resp.EmployeeCode)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *employee.Employee {
		dob, _ := time.Parse("2006-01-02", "1990-05-01")
		joining, _ := time.Parse("2006-01-02", "2020-01-01")
		return &employee.Employee{
			ID:             uuid.New(),
			EmployeeCode:   2468,
			EmployeeName:   "Asha Rao",
			EmployeeEmail:  "asha@example.com",
			EmployeeNumber: "9876543210",
			Dob:            dob,
			JoiningDate:    joining,
		}
	}

	t.Run("merges whitelisted fields and keeps code", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		current := existing()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, current.ID.String()).Return(current, nil)
		deps.repo.EXPECT().UpdateByID(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "Asha R.", e.EmployeeName)
				assert.Equal(t, "asha@example.com", e.EmployeeEmail)
				assert.Equal(t, 2468, e.EmployeeCode)
				return nil
			})
		deps.redismock.ExpectDel(employee.EmployeeSummaryKey).SetVal(1)

		resp, err := deps.service.Update(ctx, current.ID.String(), employee.UpdateEmployeeRequest{
			EmployeeName: strPtr("Asha R."),
		})

		require.NoError(t, err)
		assert.Equal(t, "Asha R.", resp.EmployeeName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("age is re-validated on the merged record", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		current := existing()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByCode(ctx, 2468).Return(current, nil)

		_, err := deps.service.UpdateByCode(ctx, 2468, employee.UpdateEmployeeRequest{
			Dob: strPtr("2010-01-01"),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrAgeIneligible)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing record", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		id := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{EmployeeName: strPtr("X")})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("duplicate phone number", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		current := existing()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, current.ID.String()).Return(current, nil)
		deps.repo.EXPECT().UpdateByID(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_number"})

		_, err := deps.service.Update(ctx, current.ID.String(), employee.UpdateEmployeeRequest{
			EmployeeNumber: strPtr("1111111111"),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and queues deleted event", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		current := &employee.Employee{ID: uuid.New(), EmployeeCode: 1357}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByCode(ctx, 1357).Return(current, nil)
		deps.repo.EXPECT().DeleteByCode(ctx, 1357).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EventEmployeeDeleted, ev.EventType)
				assert.Equal(t, current.ID.String(), ev.AggregateID)
				return nil
			})
		deps.redismock.ExpectDel(employee.EmployeeSummaryKey).SetVal(1)

		err := deps.service.DeleteByCode(ctx, 1357)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing record", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		id := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid uuid", func(t *testing.T) {
		deps := setupServiceTest(t, 0)

		err := deps.service.Delete(ctx, "42")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_CodeExists(t *testing.T) {
	deps := setupServiceTest(t, 0)
	ctx := context.Background()
	deps.repo.EXPECT().ExistsByCode(ctx, 1234).Return(true, nil)

	exists, err := deps.service.CodeExists(ctx, 1234)

	require.NoError(t, err)
	assert.True(t, exists)
}
