package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeSummaryKey = "employees:summary"
	summaryTTL         = time.Hour

	dateLayout        = "2006-01-02"
	minimumAge        = 18
	employeeAggregate = "employee"

	// maxOnboardAttempts caps how often a lost race on employee_code is
	// retried with a freshly generated code.
	maxOnboardAttempts = 5
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Onboard(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error)
	GetSummary(ctx context.Context) ([]EmployeeSummaryResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByCode(ctx context.Context, code int) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateByCode(ctx context.Context, code int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteByCode(ctx context.Context, code int) error
	CodeExists(ctx context.Context, code int) (bool, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	generator *CodeGenerator
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	return newService(db, repo, NewCodeGenerator(repo), outboxRepo, rdb, logger...)
}

// NewServiceWithGenerator is used where the code sampling must be
// deterministic.
func NewServiceWithGenerator(
	db *sql.DB,
	repo Repository,
	generator *CodeGenerator,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	return newService(db, repo, generator, outboxRepo, rdb, logger...)
}

func newService(
	db *sql.DB,
	repo Repository,
	generator *CodeGenerator,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) *service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		generator: generator,
		outbox:    outboxRepo,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Onboard(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("onboard employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.EmployeeEmail),
	)

	if strings.TrimSpace(req.EmployeeName) == "" || req.EmployeeEmail == "" ||
		req.EmployeeNumber == "" || req.Dob == "" || req.JoiningDate == "" {
		return EmployeeResponse{}, employeeerrors.ErrMissingRequiredFields
	}

	dob, err := parseDate(req.Dob)
	if err != nil {
		return EmployeeResponse{}, err
	}
	joining, err := parseDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := validateAge(dob, joining); err != nil {
		s.logger.Warn("onboard employee rejected: under age",
			zap.String("request_id", rid),
			zap.String("dob", req.Dob),
			zap.String("joining_date", req.JoiningDate),
		)
		return EmployeeResponse{}, err
	}

	for attempt := 1; attempt <= maxOnboardAttempts; attempt++ {
		code, err := s.generator.Generate(ctx)
		if err != nil {
			s.logger.Error("onboard employee generate code failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		empl := &Employee{
			ID:             uuid.New(),
			EmployeeCode:   code,
			EmployeeName:   strings.TrimSpace(req.EmployeeName),
			EmployeeEmail:  req.EmployeeEmail,
			EmployeeNumber: req.EmployeeNumber,
			Dob:            dob,
			JoiningDate:    joining,
		}

		err = s.insert(ctx, rid, empl)
		if errors.Is(err, employeeerrors.ErrEmployeeCodeAlreadyExists) {
			s.logger.Warn("onboard employee code taken concurrently, regenerating",
				zap.String("request_id", rid),
				zap.Int("employee_code", code),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return EmployeeResponse{}, err
		}

		s.invalidateSummary(ctx)
		s.logger.Info("onboard employee success",
			zap.String("request_id", rid),
			zap.String("employee_id", empl.ID.String()),
			zap.Int("employee_code", empl.EmployeeCode),
		)
		return mapToResponse(*empl), nil
	}

	s.logger.Error("onboard employee gave up after repeated code collisions", zap.String("request_id", rid))
	return EmployeeResponse{}, employeeerrors.ErrCodeCapacityExceeded
}

// insert persists empl and its outbox row in one transaction.
func (s *service) insert(ctx context.Context, rid string, empl *Employee) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("onboard employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		mapped := mapRepositoryError(err)
		if !isDomainError(mapped) {
			s.logger.Error("onboard employee persist failed", zap.String("request_id", rid), zap.Error(err))
		}
		return mapped
	}

	if err := s.enqueueLifecycle(ctx, tx, events.EventEmployeeOnboarded, empl); err != nil {
		s.logger.Error("onboard employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("onboard employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) GetAll(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error) {
	page, limit = response.NormalizePage(page, limit, DefaultPageLimit)
	s.logger.Debug("get all employees requested", zap.Int("page", page), zap.Int("limit", limit))

	empls, total, err := s.repo.FindAllPaginated(ctx, page, limit)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(empls), total, nil
}

func (s *service) GetSummary(ctx context.Context) ([]EmployeeSummaryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeSummaryKey).Result(); err == nil {
			var resp []EmployeeSummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeSummaryKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllSummary(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeSummaryResponse, len(rows))
		for i, r := range rows {
			resp[i] = EmployeeSummaryResponse{EmployeeCode: r.EmployeeCode, EmployeeName: r.EmployeeName}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeSummaryKey, data, summaryTTL).Err(); err != nil {
					s.logger.Warn("cache employee summary failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee summary failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeSummaryResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, s.lookupError("get employee by id", err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetByCode(ctx context.Context, code int) (EmployeeResponse, error) {
	empl, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return EmployeeResponse{}, s.lookupError("get employee by code", err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	return s.update(ctx, req,
		func(r Repository) (*Employee, error) { return r.FindByID(ctx, id) },
		func(r Repository, e *Employee) error { return r.UpdateByID(ctx, e) },
	)
}

func (s *service) UpdateByCode(ctx context.Context, code int, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	return s.update(ctx, req,
		func(r Repository) (*Employee, error) { return r.FindByCode(ctx, code) },
		func(r Repository, e *Employee) error { return r.UpdateByCode(ctx, e) },
	)
}

func (s *service) update(
	ctx context.Context,
	req UpdateEmployeeRequest,
	find func(Repository) (*Employee, error),
	save func(Repository, *Employee) error,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := find(qtx)
	if err != nil {
		return EmployeeResponse{}, s.lookupError("update employee", err)
	}

	if err := applyUpdate(empl, req); err != nil {
		s.logger.Warn("update employee rejected",
			zap.String("request_id", rid),
			zap.Int("employee_code", empl.EmployeeCode),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := save(qtx, empl); err != nil {
		mapped := mapRepositoryError(err)
		if !isDomainError(mapped) {
			s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		}
		return EmployeeResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateSummary(ctx)
	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	return s.delete(ctx,
		func(r Repository) (*Employee, error) { return r.FindByID(ctx, id) },
		func(r Repository, e *Employee) error { return r.DeleteByID(ctx, e.ID.String()) },
	)
}

func (s *service) DeleteByCode(ctx context.Context, code int) error {
	return s.delete(ctx,
		func(r Repository) (*Employee, error) { return r.FindByCode(ctx, code) },
		func(r Repository, e *Employee) error { return r.DeleteByCode(ctx, e.EmployeeCode) },
	)
}

func (s *service) delete(
	ctx context.Context,
	find func(Repository) (*Employee, error),
	remove func(Repository, *Employee) error,
) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := find(qtx)
	if err != nil {
		return s.lookupError("delete employee", err)
	}

	if err := remove(qtx, empl); err != nil {
		return s.lookupError("delete employee", err)
	}

	if err := s.enqueueLifecycle(ctx, tx, events.EventEmployeeDeleted, empl); err != nil {
		s.logger.Error("delete employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.invalidateSummary(ctx)
	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.Int("employee_code", empl.EmployeeCode),
	)
	return nil
}

func (s *service) CodeExists(ctx context.Context, code int) (bool, error) {
	exists, err := s.repo.ExistsByCode(ctx, code)
	if err != nil {
		s.logger.Error("check employee code failed", zap.Int("employee_code", code), zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (s *service) enqueueLifecycle(ctx context.Context, tx *sql.Tx, eventType string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, employeeAggregate, empl.ID.String(), eventType, events.EmployeeLifecycleTopic,
		events.EmployeeLifecycleEvent{
			EventType:    eventType,
			RequestID:    rid,
			EmployeeID:   empl.ID.String(),
			EmployeeCode: empl.EmployeeCode,
			OccurredAt:   s.now().UTC(),
		})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) invalidateSummary(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeSummaryKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee summary cache",
			zap.Error(err),
			zap.String("key", EmployeeSummaryKey),
		)
	}
}

// lookupError maps a repository error and logs it at the level it deserves.
func (s *service) lookupError(op string, err error) error {
	mapped := mapRepositoryError(err)
	if errors.Is(mapped, employeeerrors.ErrEmployeeNotFound) {
		s.logger.Warn(op + ": not found")
	} else {
		s.logger.Error(op+" failed", zap.Error(err))
	}
	return mapped
}

func applyUpdate(empl *Employee, req UpdateEmployeeRequest) error {
	if req.EmployeeName != nil {
		name := strings.TrimSpace(*req.EmployeeName)
		if name == "" {
			return employeeerrors.ErrMissingRequiredFields
		}
		empl.EmployeeName = name
	}
	if req.EmployeeEmail != nil {
		empl.EmployeeEmail = *req.EmployeeEmail
	}
	if req.EmployeeNumber != nil {
		empl.EmployeeNumber = *req.EmployeeNumber
	}

	datesChanged := false
	if req.Dob != nil {
		dob, err := parseDate(*req.Dob)
		if err != nil {
			return err
		}
		empl.Dob = dob
		datesChanged = true
	}
	if req.JoiningDate != nil {
		joining, err := parseDate(*req.JoiningDate)
		if err != nil {
			return err
		}
		empl.JoiningDate = joining
		datesChanged = true
	}

	if datesChanged {
		return validateAge(empl.Dob, empl.JoiningDate)
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// validateAge requires the employee to have turned 18 on or before joining.
func validateAge(dob, joining time.Time) error {
	if joining.Before(dob.AddDate(minimumAge, 0, 0)) {
		return employeeerrors.ErrAgeIneligible
	}
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeCode:   empl.EmployeeCode,
		EmployeeName:   empl.EmployeeName,
		EmployeeEmail:  empl.EmployeeEmail,
		EmployeeNumber: empl.EmployeeNumber,
		Dob:            empl.Dob.Format(dateLayout),
		JoiningDate:    empl.JoiningDate.Format(dateLayout),
		CreatedAt:      empl.CreatedAt,
		UpdatedAt:      empl.UpdatedAt,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
