package violationerrors

import (
	"net/http"

	"go-hradmin/internal/shared/apperror"
)

var (
	ErrInvalidViolationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid violation id",
		http.StatusBadRequest,
	)
	ErrViolationNotFound = apperror.New(
		apperror.CodeNotFound,
		"violation not found",
		http.StatusNotFound,
	)
	ErrInvalidOccurredAt = apperror.New(
		apperror.CodeInvalidInput,
		"invalid occurred_at format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeNotFound,
		"employee not found in company",
		http.StatusNotFound,
	)
)
