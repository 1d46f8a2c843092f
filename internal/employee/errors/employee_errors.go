package employeeerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeAlreadyExists = apperror.Conflict(
		"employeeCode",
		"Employee code already exists",
	)
	ErrEmployeeEmailAlreadyExists = apperror.Conflict(
		"employeeEmail",
		"Employee with the same email already exists",
	)
	ErrEmployeeNumberAlreadyExists = apperror.Conflict(
		"employeeNumber",
		"Employee with the same phone number already exists",
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeCode = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee code",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)
	ErrAgeIneligible = apperror.New(
		apperror.CodeInvalidInput,
		"Employee must be at least 18 years old at joining",
		http.StatusBadRequest,
	)
	ErrCodeCapacityExceeded = apperror.New(
		apperror.CodeServiceUnavailable,
		"No free employee code is available",
		http.StatusServiceUnavailable,
	)
)
