package salarymaster

import (
	"errors"
	"strings"

	salarymastererrors "go-hrms/internal/salarymaster/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const constraintSalaryMasterEmployeeCode = "uq_salary_master_employee_code"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarymastererrors.ErrSalaryMasterNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintSalaryMasterEmployeeCode {
		return salarymastererrors.ErrSalaryMasterAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintSalaryMasterEmployeeCode) {
		return salarymastererrors.ErrSalaryMasterAlreadyExists
	}

	return err
}

func isDomainError(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr)
}
