package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

type ParticipantService interface {
	RegisterForEvent(ctx context.Context, eventID string, in domain.ParticipantInput) (domain.Participant, error)
	RemoveParticipant(ctx context.Context, id string) error
	GetParticipant(ctx context.Context, id string) (domain.Participant, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Participant, error)
	ListByManagerEmail(ctx context.Context, email string) ([]domain.Participant, error)
	ListByLocation(ctx context.Context, location string) ([]domain.Participant, error)
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register a participant for an event
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        eventId  path      string                                true  "event id"
// @Param        request  body      request.RegisterParticipantRequest   true  "request body"
// @Success      201      {object}  response.Participant
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /participants/event/{eventId}/register [post]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	p, err := h.svc.RegisterForEvent(ctx.Request.Context(), ctx.Param("eventId"), req.ToInput())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRegister -> h.svc.RegisterForEvent", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewParticipant(p))
}

// HandleListByEvent godoc
// @Summary      List the participants of an event
// @Tags         participants
// @Produce      json
// @Param        eventId  path      string  true  "event id"
// @Success      200      {array}   response.Participant
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /participants/event/{eventId} [get]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleListByEvent(ctx *gin.Context) {
	participants, err := h.svc.ListByEvent(ctx.Request.Context(), ctx.Param("eventId"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListByEvent -> h.svc.ListByEvent", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipants(participants))
}

// HandleGetParticipant godoc
// @Summary      Get a participant
// @Tags         participants
// @Produce      json
// @Param        id   path      string  true  "participant id"
// @Success      200  {object}  response.Participant
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{id} [get]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleGetParticipant(ctx *gin.Context) {
	p, err := h.svc.GetParticipant(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetParticipant -> h.svc.GetParticipant", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipant(p))
}

// HandleListByManager godoc
// @Summary      List participants registered by a manager
// @Tags         participants
// @Produce      json
// @Param        email  path      string  true  "manager email"
// @Success      200    {array}   response.Participant
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /participants/manager/{email} [get]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleListByManager(ctx *gin.Context) {
	participants, err := h.svc.ListByManagerEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListByManager -> h.svc.ListByManagerEmail", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipants(participants))
}

// HandleListByLocation godoc
// @Summary      List participants whose location contains the given text
// @Tags         participants
// @Produce      json
// @Param        location  path      string  true  "location, case-insensitive"
// @Success      200       {array}   response.Participant
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /participants/location/{location} [get]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleListByLocation(ctx *gin.Context) {
	participants, err := h.svc.ListByLocation(ctx.Request.Context(), ctx.Param("location"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListByLocation -> h.svc.ListByLocation", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipants(participants))
}

// HandleRemoveParticipant godoc
// @Summary      Remove a participant
// @Tags         participants
// @Param        id   path  string  true  "participant id"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{id} [delete]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleRemoveParticipant(ctx *gin.Context) {
	if err := h.svc.RemoveParticipant(ctx.Request.Context(), ctx.Param("id")); err != nil {
		renderServiceErr(ctx, "v1.HandleRemoveParticipant -> h.svc.RemoveParticipant", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
