package companyusererrors

import (
	"net/http"

	"go-hradmin/internal/shared/apperror"
)

var (
	ErrInvalidMembershipID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid membership id",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrMembershipNotFound = apperror.New(
		apperror.CodeNotFound,
		"membership not found",
		http.StatusNotFound,
	)
	ErrDuplicateMembership = apperror.New(
		apperror.CodeConflict,
		"user is already a member of this company",
		http.StatusConflict,
	)
)
