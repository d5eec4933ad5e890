package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/products-api/internal/core/logger"
	"github.com/rafaelleal24/products-api/internal/core/serviceerrors"
)

const internalServerErrorMessage = "Internal Server Error"

type ErrorResponse struct {
	StatusCode string `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"Could not find product with id 42."`
}

func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{StatusCode: strconv.Itoa(code), Message: message}
}

// Abort writes the error body and stops the handler chain.
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, NewErrorResponse(code, message))
}

// HandleError maps service errors to their status code. Anything else is
// logged with full detail and answered with a generic 500.
func HandleError(c *gin.Context, err error) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		Abort(c, mapKindToHTTP(svcErr.Kind), svcErr.Message)
		return
	}

	logger.Error(c.Request.Context(), "unhandled error", err, map[string]any{
		"http.method": c.Request.Method,
		"http.path":   c.Request.URL.Path,
	})
	Abort(c, http.StatusInternalServerError, internalServerErrorMessage)
}

// Recover is the gin.CustomRecovery handler; panics get the same body as
// unhandled errors.
func Recover(c *gin.Context, recovered any) {
	logger.Error(c.Request.Context(), "panic recovered", nil, map[string]any{
		"http.method": c.Request.Method,
		"http.path":   c.Request.URL.Path,
		"panic":       recovered,
	})
	Abort(c, http.StatusInternalServerError, internalServerErrorMessage)
}

func NotFound(c *gin.Context) {
	Abort(c, http.StatusNotFound, "Resource not found.")
}

func MethodNotAllowed(c *gin.Context) {
	Abort(c, http.StatusMethodNotAllowed, "Method not allowed.")
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case serviceerrors.KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
