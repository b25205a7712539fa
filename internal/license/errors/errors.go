package licenseerrors

import (
	"net/http"

	"go-hradmin/internal/shared/apperror"
)

var (
	ErrInvalidLicenseID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid license id",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidExpiryDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid expiry date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrLicenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"license not found",
		http.StatusNotFound,
	)
)
