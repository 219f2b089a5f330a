package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledger-ar/company_transfers_app/internal/apperrors"
	"github.com/ledger-ar/company_transfers_app/internal/dto"
	"github.com/ledger-ar/company_transfers_app/internal/utils/validation"
)

// respondError maps service errors to HTTP responses. Internal failures are
// reported generically with a stable code; the cause stays in the logs.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		resp := dto.ErrorResponse{Error: "resource not found"}
		if errors.As(err, &appErr) {
			resp.Error = appErr.Message
			resp.Code = appErr.Code
		}
		c.JSON(http.StatusNotFound, resp)
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "an unexpected error occurred",
			Code:  apperrors.CodeInternalFailure,
		})
	}
}

// respondFieldErrors renders an aggregated 400 with every failed field.
func respondFieldErrors(c *gin.Context, errs validation.Errors) {
	fields := make([]dto.FieldFailure, len(errs))
	for i, fe := range errs {
		fields[i] = dto.FieldFailure{Field: fe.Field, Message: fe.Message}
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}
