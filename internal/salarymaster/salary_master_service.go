package salarymaster

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	salarymastererrors "go-hrms/internal/salarymaster/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const salaryMasterAggregate = "salary_master"

//go:generate mockgen -source=salary_master_service.go -destination=mock/salary_master_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryMasterRequest) (SalaryMasterResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]SalaryMasterResponse, int64, error)
	GetByID(ctx context.Context, id string) (SalaryMasterResponse, error)
	GetByEmployeeCode(ctx context.Context, code int) (SalaryMasterResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryMasterRequest) (SalaryMasterResponse, error)
	UpdateByEmployeeCode(ctx context.Context, code int, req UpdateSalaryMasterRequest) (SalaryMasterResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmployeeCode(ctx context.Context, code int) error
	Payslip(ctx context.Context, id string) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarymaster.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarymaster.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		now:    time.Now,
		logger: l,
	}
}

// Create checks, in order: no record yet for the employee, no negative
// earnings, the employee exists. The unique index still decides a race
// between two creates for the same code.
func (s *service) Create(ctx context.Context, req CreateSalaryMasterRequest) (SalaryMasterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary master requested",
		zap.String("request_id", rid),
		zap.Int("employee_code", req.EmployeeCode),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create salary master begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryMasterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		s.logger.Error("create salary master existence check failed", zap.Error(err))
		return SalaryMasterResponse{}, err
	}
	if exists {
		s.logger.Warn("create salary master rejected: already exists", zap.Int("employee_code", req.EmployeeCode))
		return SalaryMasterResponse{}, salarymastererrors.ErrSalaryMasterAlreadyExists
	}

	earnings := req.Earnings()
	if earnings.HasNegative() {
		s.logger.Warn("create salary master rejected: negative earnings", zap.Int("employee_code", req.EmployeeCode))
		return SalaryMasterResponse{}, salarymastererrors.ErrNegativeEarnings
	}

	employeeExists, err := qtx.EmployeeExistsByCode(ctx, req.EmployeeCode)
	if err != nil {
		s.logger.Error("create salary master employee lookup failed", zap.Error(err))
		return SalaryMasterResponse{}, err
	}
	if !employeeExists {
		s.logger.Warn("create salary master rejected: unknown employee", zap.Int("employee_code", req.EmployeeCode))
		return SalaryMasterResponse{}, salarymastererrors.ErrEmployeeNotFound
	}

	sm := &SalaryMaster{
		ID:           uuid.New(),
		EmployeeCode: req.EmployeeCode,
	}
	sm.apply(earnings)

	if err := qtx.Create(ctx, sm); err != nil {
		mapped := mapRepositoryError(err)
		if !isDomainError(mapped) {
			s.logger.Error("create salary master persist failed", zap.String("request_id", rid), zap.Error(err))
		}
		return SalaryMasterResponse{}, mapped
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(rid, salaryMasterAggregate, sm.ID.String(),
			events.EventSalaryMasterCreated, events.SalaryMasterTopic,
			events.SalaryMasterCreatedEvent{
				EventType:      events.EventSalaryMasterCreated,
				RequestID:      rid,
				SalaryMasterID: sm.ID.String(),
				EmployeeCode:   sm.EmployeeCode,
				CTC:            sm.CTC.Decimal,
				OccurredAt:     s.now().UTC(),
			})
		if err == nil {
			err = s.outbox.WithTx(tx).Create(ctx, event)
		}
		if err != nil {
			s.logger.Error("create salary master outbox persist failed",
				zap.String("salary_master_id", sm.ID.String()),
				zap.Error(err),
			)
			return SalaryMasterResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create salary master commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryMasterResponse{}, err
	}

	s.logger.Info("create salary master success",
		zap.String("request_id", rid),
		zap.String("salary_master_id", sm.ID.String()),
		zap.Int("employee_code", sm.EmployeeCode),
	)
	return mapToResponse(*sm), nil
}

func (s *service) GetAll(ctx context.Context, page, limit int) ([]SalaryMasterResponse, int64, error) {
	page, limit = response.NormalizePage(page, limit, DefaultPageLimit)

	rows, total, err := s.repo.FindAllPaginated(ctx, page, limit)
	if err != nil {
		s.logger.Error("get all salary masters failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	res := make([]SalaryMasterResponse, len(rows))
	for i, sm := range rows {
		res[i] = mapToResponse(sm)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryMasterResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalaryMasterResponse{}, salarymastererrors.ErrInvalidSalaryMasterID
	}

	sm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalaryMasterResponse{}, s.lookupError("get salary master by id", err)
	}
	return mapToResponse(*sm), nil
}

func (s *service) GetByEmployeeCode(ctx context.Context, code int) (SalaryMasterResponse, error) {
	sm, err := s.repo.FindByEmployeeCode(ctx, code)
	if err != nil {
		return SalaryMasterResponse{}, s.lookupError("get salary master by employee code", err)
	}
	return mapToResponse(*sm), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSalaryMasterRequest) (SalaryMasterResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalaryMasterResponse{}, salarymastererrors.ErrInvalidSalaryMasterID
	}
	return s.update(ctx, req, func(r Repository) (*SalaryMaster, error) { return r.FindByID(ctx, id) })
}

func (s *service) UpdateByEmployeeCode(ctx context.Context, code int, req UpdateSalaryMasterRequest) (SalaryMasterResponse, error) {
	return s.update(ctx, req, func(r Repository) (*SalaryMaster, error) { return r.FindByEmployeeCode(ctx, code) })
}

// update merges the earnings patch and always recomputes the derived
// figures, even when the patch is empty.
func (s *service) update(
	ctx context.Context,
	req UpdateSalaryMasterRequest,
	find func(Repository) (*SalaryMaster, error),
) (SalaryMasterResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update salary master begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryMasterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	sm, err := find(qtx)
	if err != nil {
		return SalaryMasterResponse{}, s.lookupError("update salary master", err)
	}

	earnings := req.mergeInto(sm.Earnings())
	if earnings.HasNegative() {
		s.logger.Warn("update salary master rejected: negative earnings", zap.String("salary_master_id", sm.ID.String()))
		return SalaryMasterResponse{}, salarymastererrors.ErrNegativeEarnings
	}
	sm.apply(earnings)

	if err := qtx.Update(ctx, sm); err != nil {
		return SalaryMasterResponse{}, s.lookupError("update salary master", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update salary master commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryMasterResponse{}, err
	}

	s.logger.Info("update salary master success",
		zap.String("request_id", rid),
		zap.String("salary_master_id", sm.ID.String()),
	)
	return mapToResponse(*sm), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return salarymastererrors.ErrInvalidSalaryMasterID
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return s.lookupError("delete salary master", err)
	}
	s.logger.Info("delete salary master success", zap.String("salary_master_id", id))
	return nil
}

func (s *service) DeleteByEmployeeCode(ctx context.Context, code int) error {
	if err := s.repo.DeleteByEmployeeCode(ctx, code); err != nil {
		return s.lookupError("delete salary master by employee code", err)
	}
	s.logger.Info("delete salary master success", zap.Int("employee_code", code))
	return nil
}

func (s *service) Payslip(ctx context.Context, id string) ([]byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, salarymastererrors.ErrInvalidSalaryMasterID
	}

	sm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError("payslip", err)
	}

	name, err := s.repo.EmployeeNameByCode(ctx, sm.EmployeeCode)
	if err != nil {
		s.logger.Error("payslip employee lookup failed", zap.Error(err))
		return nil, err
	}

	var buf bytes.Buffer
	if err := RenderPayslip(&buf, Payslip{
		Record:       *sm,
		EmployeeName: name,
		GeneratedAt:  s.now(),
	}); err != nil {
		s.logger.Error("render payslip failed", zap.String("salary_master_id", id), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *service) lookupError(op string, err error) error {
	mapped := mapRepositoryError(err)
	if errors.Is(mapped, salarymastererrors.ErrSalaryMasterNotFound) {
		s.logger.Warn(op + ": not found")
	} else if !isDomainError(mapped) {
		s.logger.Error(op+" failed", zap.Error(err))
	}
	return mapped
}

func mapToResponse(sm SalaryMaster) SalaryMasterResponse {
	return SalaryMasterResponse{
		ID:             sm.ID.String(),
		EmployeeCode:   sm.EmployeeCode,
		Basic:          sm.Basic,
		HRA:            sm.HRA,
		Conveyance:     sm.Conveyance,
		OtherAllowance: sm.OtherAllowance,
		GrossSalary:    sm.GrossSalary,
		EmployeePF:     sm.EmployeePF,
		EmployerPF:     sm.EmployerPF,
		EPS:            sm.EPS,
		EPF:            sm.EPF,
		EmployeeESIC:   sm.EmployeeESIC,
		EmployerESIC:   sm.EmployerESIC,
		NetSalary:      sm.NetSalary,
		CTC:            sm.CTC,
		CreatedAt:      sm.CreatedAt,
		UpdatedAt:      sm.UpdatedAt,
	}
}
