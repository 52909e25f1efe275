package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/training-calendar-api/internal/api/middleware"
	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

var errNoClaims = errors.New("no authenticated user")

type UserService interface {
	GetIdentity(ctx context.Context, id string) (domain.Identity, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetMe godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Me
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNoClaims))
		return
	}

	identity, err := h.svc.GetIdentity(ctx.Request.Context(), claims.UserID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetMe -> h.svc.GetIdentity", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewMe(identity))
}
