package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/training-calendar-api/internal/api/middleware"
	"github.com/vietanh2810/training-calendar-api/internal/config"
	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/training-calendar-api/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (domain.Identity, error)
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Logout(token string)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterRequest  true  "request body"
// @Success      200      {object}  response.Auth
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(h.conf.AllowedEmailDomain); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	identity, err := h.svc.Register(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRegister -> h.svc.Register", err)
		return
	}

	h.respondWithToken(ctx, "v1.HandleRegister", identity)
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.Auth
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.respondWithToken(ctx, "v1.HandleLogin", identity)
}

// HandleLogout godoc
// @Summary      Revoke the bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Err
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	token, err := middleware.BearerToken(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	h.svc.Logout(token)

	ctx.JSON(http.StatusOK, response.Message{Message: "Logged out successfully"})
}

func (h *AuthHandler) respondWithToken(ctx *gin.Context, op string, identity domain.Identity) {
	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), identity.AccountID, identity.Email,
		identity.RoleNames, h.conf.JWTExpiration)
	if err != nil {
		err = fmt.Errorf("%s -> jwthelper.GenerateToken -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewAuth(token, identity))
}
