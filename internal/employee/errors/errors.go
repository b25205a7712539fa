package employeeerrors

import (
	"net/http"

	"go-hradmin/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidLicenseID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid license id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee with this email already exists",
		http.StatusConflict,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee number already exists",
		http.StatusConflict,
	)
	ErrEmployeeAlreadyArchived = apperror.New(
		apperror.CodeInvalidState,
		"employee is already archived",
		http.StatusBadRequest,
	)
	ErrLicenseNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"license does not belong to this company",
		http.StatusBadRequest,
	)
)
