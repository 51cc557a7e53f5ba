package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ai-company/internal/api/shared/errors"
	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(message))
}

// respondError maps an executor error to a status code.
// Unknown errors are logged under op and their message forwarded with a 500.
func respondError(c *gin.Context, err error, op string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		status := statusForCode(apiErr.Code)
		if status >= http.StatusInternalServerError {
			logger.ErrorCtx(c.Request.Context(), err, zap.String("op", op), zap.String("path", c.Request.URL.Path))
		}
		c.JSON(status, apiErr)
		return
	}

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrPipelineRunNotFound):
		respondNotFound(c, err.Error())

	case errors.Is(err, domain.ErrDuplicateTokenSymbol),
		errors.Is(err, domain.ErrInsufficientTokens),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidInput):
		respondBadRequest(c, err.Error())

	default:
		logger.ErrorCtx(c.Request.Context(), err, zap.String("op", op), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(err.Error()))
	}
}

func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
