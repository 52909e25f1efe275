package response

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

const unexpectedErrorMessage = "An unexpected error occurred"

type Err struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`

	cause error
}

func (e *Err) Error() string {
	return e.Message
}

func newErr(status int, message string, cause error) *Err {
	return &Err{
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
		cause:     cause,
	}
}

// RenderErr writes err as the JSON body. Server errors are logged with the
// request id before the masked body goes out.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.Status >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err.cause),
		)
	}

	ctx.AbortWithStatusJSON(err.Status, err)
}

// ErrBadRequest turns ozzo validation errors into a field -> message map.
func ErrBadRequest(err error) *Err {
	e := newErr(http.StatusBadRequest, err.Error(), err)

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		e.Message = "Validation failed"
		e.Errors = make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			e.Errors[field] = fieldErr.Error()
		}
	}

	return e
}

func ErrNotFound(err error) *Err {
	return newErr(http.StatusNotFound, err.Error(), err)
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err.Error(), err)
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, "Invalid email or password", err)
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, fmt.Sprintf("Unauthorized: %v", err), err)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err.Error(), err)
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, unexpectedErrorMessage, err)
}
