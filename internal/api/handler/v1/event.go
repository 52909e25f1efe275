package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

type EventService interface {
	HasTimeConflict(ctx context.Context, date time.Time, start, end domain.TimeOfDay, excludeEventID string) (bool, error)
	CreateEvent(ctx context.Context, in domain.EventInput) (domain.Event, error)
	UpdateEvent(ctx context.Context, id string, in domain.EventInput) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListEventsByMonth(ctx context.Context, year int, month time.Month) ([]domain.Event, error)
	ListEventsByDay(ctx context.Context, date time.Time) ([]domain.Event, error)
	ListEventsByCategory(ctx context.Context, categoryID string) ([]domain.Event, error)
	ListEventsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	ListEventsByLocation(ctx context.Context, location string) ([]domain.Event, error)
	HasAvailableSpots(ctx context.Context, id string) (bool, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}   response.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListEvents -> h.svc.ListEvents", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events))
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "event id"
// @Success      200  {object}  response.Event
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	event, err := h.svc.GetEvent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetEvent -> h.svc.GetEvent", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvent(event))
}

// HandleListEventsByMonth godoc
// @Summary      List events of a month
// @Tags         events
// @Produce      json
// @Param        year   query     int  true  "year"
// @Param        month  query     int  true  "month, 1-12"
// @Success      200    {array}   response.Event
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events/month [get]
func (h *EventHandler) HandleListEventsByMonth(ctx *gin.Context) {
	var q request.MonthQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	events, err := h.svc.ListEventsByMonth(ctx.Request.Context(), q.Year, time.Month(q.Month))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListEventsByMonth -> h.svc.ListEventsByMonth", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events))
}

// HandleListEventsByDay godoc
// @Summary      List events of a day, ordered by start time
// @Tags         events
// @Produce      json
// @Param        date  query     string  true  "YYYY-MM-DD"
// @Success      200   {array}   response.Event
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /events/day [get]
func (h *EventHandler) HandleListEventsByDay(ctx *gin.Context) {
	var q request.DayQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, _ := domain.ParseDate(q.Date)

	events, err := h.svc.ListEventsByDay(ctx.Request.Context(), date)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListEventsByDay -> h.svc.ListEventsByDay", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events))
}

// HandleListEventsByCategory godoc
// @Summary      List events of a category
// @Tags         events
// @Produce      json
// @Param        categoryId  path      string  true  "category id"
// @Success      200         {array}   response.Event
// @Failure      500         {object}  response.Err
// @Router       /events/category/{categoryId} [get]
func (h *EventHandler) HandleListEventsByCategory(ctx *gin.Context) {
	events, err := h.svc.ListEventsByCategory(ctx.Request.Context(), ctx.Param("categoryId"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListEventsByCategory -> h.svc.ListEventsByCategory", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events))
}

// HandleListEventsByLocation godoc
// @Summary      List events whose location contains the given text
// @Tags         events
// @Produce      json
// @Param        location  path      string  true  "location, case-insensitive"
// @Success      200       {array}   response.Event
// @Failure      500       {object}  response.Err
// @Router       /events/location/{location} [get]
func (h *EventHandler) HandleListEventsByLocation(ctx *gin.Context) {
	events, err := h.svc.ListEventsByLocation(ctx.Request.Context(), ctx.Param("location"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListEventsByLocation -> h.svc.ListEventsByLocation", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events))
}

// HandleListEventsByDateRange godoc
// @Summary      List events between two dates, both included
// @Tags         events
// @Produce      json
// @Param        startDate  query     string  true  "YYYY-MM-DD"
// @Param        endDate    query     string  true  "YYYY-MM-DD"
// @Success      200        {array}   response.Event
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /events/date-range [get]
func (h *EventHandler) HandleListEventsByDateRange(ctx *gin.Context) {
	var q request.DateRangeQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	from, _ := domain.ParseDate(q.StartDate)
	to, _ := domain.ParseDate(q.EndDate)

	events, err := h.svc.ListEventsByDateRange(ctx.Request.Context(), from, to)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListEventsByDateRange -> h.svc.ListEventsByDateRange", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events))
}

// HandleCheckAvailability godoc
// @Summary      Whether an event still has free spots
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "event id"
// @Success      200  {boolean} bool
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id}/available [get]
func (h *EventHandler) HandleCheckAvailability(ctx *gin.Context) {
	available, err := h.svc.HasAvailableSpots(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCheckAvailability -> h.svc.HasAvailableSpots", err)
		return
	}

	ctx.JSON(http.StatusOK, available)
}

// HandleCheckConflict godoc
// @Summary      Whether an interval overlaps an existing event
// @Tags         events
// @Produce      json
// @Param        date            query     string  true   "YYYY-MM-DD"
// @Param        startTime       query     string  true   "HH:MM"
// @Param        endTime         query     string  true   "HH:MM"
// @Param        excludeEventId  query     string  false  "event to ignore"
// @Success      200             {boolean} bool
// @Failure      400             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /events/check-conflict [get]
func (h *EventHandler) HandleCheckConflict(ctx *gin.Context) {
	var q request.ConflictQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, _ := domain.ParseDate(q.Date)
	start, _ := domain.ParseTimeOfDay(q.StartTime)
	end, _ := domain.ParseTimeOfDay(q.EndTime)

	conflict, err := h.svc.HasTimeConflict(ctx.Request.Context(), date, start, end, q.ExcludeEventID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCheckConflict -> h.svc.HasTimeConflict", err)
		return
	}

	ctx.JSON(http.StatusOK, conflict)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.EventRequest  true  "request body"
// @Success      201      {object}  response.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), req.ToInput())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateEvent -> h.svc.CreateEvent", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewEvent(event))
}

// HandleUpdateEvent godoc
// @Summary      Replace every field of an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "event id"
// @Param        request  body      request.EventRequest  true  "request body"
// @Success      200      {object}  response.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{id} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), ctx.Param("id"), req.ToInput())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateEvent -> h.svc.UpdateEvent", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvent(event))
}

// HandleDeleteEvent godoc
// @Summary      Delete an event and its participants
// @Tags         events
// @Param        id   path  string  true  "event id"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	if err := h.svc.DeleteEvent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteEvent -> h.svc.DeleteEvent", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
