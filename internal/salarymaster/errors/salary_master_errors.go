package salarymastererrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrSalaryMasterNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary master not found",
		http.StatusNotFound,
	)
	ErrSalaryMasterAlreadyExists = apperror.Conflict(
		"employeeCode",
		"Salary master already exists for this employee",
	)
	ErrNegativeEarnings = apperror.New(
		apperror.CodeInvalidInput,
		"Earnings cannot be negative",
		http.StatusBadRequest,
	)
	// ErrEmployeeNotFound is a client error here: the request referenced an
	// employee code that does not exist.
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Employee with this code does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryMasterID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary master ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeCode = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee code",
		http.StatusBadRequest,
	)
)
