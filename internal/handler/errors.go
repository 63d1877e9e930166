package handler

import (
	"errors"
	"net/http"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/gin-gonic/gin"
)

// respondError maps a business error to the right HTTP status and envelope.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, message, err)
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrExpiredToken):
		common.ErrorResponse(c, http.StatusUnauthorized, message, err)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, http.StatusForbidden, message, err)
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrBlockNotFound),
		errors.Is(err, common.ErrRevisionNotFound),
		errors.Is(err, common.ErrMemberNotFound):
		common.ErrorResponse(c, http.StatusNotFound, message, err)
	case errors.Is(err, common.ErrConflict):
		common.ErrorResponse(c, http.StatusConflict, message, err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, message, err)
	}
}
