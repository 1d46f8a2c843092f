package employee

import (
	"errors"
	"strings"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	constraintEmployeeCode   = "uq_employee_code"
	constraintEmployeeEmail  = "uq_employee_email"
	constraintEmployeeNumber = "uq_employee_number"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			if mapped := duplicateFor(pgErr.ConstraintName); mapped != nil {
				return mapped
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		for _, name := range []string{constraintEmployeeCode, constraintEmployeeEmail, constraintEmployeeNumber} {
			if strings.Contains(errMsg, name) {
				return duplicateFor(name)
			}
		}
	}

	return err
}

func duplicateFor(constraint string) error {
	switch constraint {
	case constraintEmployeeCode:
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	case constraintEmployeeEmail:
		return employeeerrors.ErrEmployeeEmailAlreadyExists
	case constraintEmployeeNumber:
		return employeeerrors.ErrEmployeeNumberAlreadyExists
	}
	return nil
}

// isDomainError reports whether err already carries an HTTP mapping.
func isDomainError(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr)
}
