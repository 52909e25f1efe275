package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/training-calendar-api/internal/service"
)

// renderServiceErr maps a service error onto its HTTP status; anything
// unknown becomes a masked 500 tagged with op.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	var argErr *service.ArgumentError

	switch {
	case errors.As(err, &argErr):
		response.RenderErr(ctx, response.ErrBadRequest(argErr))
	case errors.Is(err, service.ErrEventFull):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrEventFull))
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))
	case errors.Is(err, service.ErrParticipantNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrParticipantNotFound))
	case errors.Is(err, service.ErrCategoryNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrCategoryNotFound))
	case errors.Is(err, service.ErrUserNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))
	case errors.Is(err, service.ErrTimeConflict):
		response.RenderErr(ctx, response.ErrConflict(service.ErrTimeConflict))
	case errors.Is(err, service.ErrDuplicateRegistration):
		response.RenderErr(ctx, response.ErrConflict(service.ErrDuplicateRegistration))
	case errors.Is(err, service.ErrUserEmailExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
	case errors.Is(err, service.ErrCategoryExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrCategoryExists))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}
