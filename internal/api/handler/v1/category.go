package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

type CategoryService interface {
	InitializeDefaultCategories(ctx context.Context) error
	CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error)
	GetCategory(ctx context.Context, id string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type CategoryHandler struct {
	svc CategoryService
}

func NewCategoryHandler(svc CategoryService) *CategoryHandler {
	return &CategoryHandler{
		svc: svc,
	}
}

// HandleListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   response.Category
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /categories [get]
// @Security     BearerAuth
func (h *CategoryHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListCategories -> h.svc.ListCategories", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewCategories(categories))
}

// HandleGetCategory godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "category id"
// @Success      200  {object}  response.Category
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /categories/{id} [get]
// @Security     BearerAuth
func (h *CategoryHandler) HandleGetCategory(ctx *gin.Context) {
	c, err := h.svc.GetCategory(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetCategory -> h.svc.GetCategory", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewCategory(c))
}

// HandleCreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request  body      request.CategoryRequest  true  "request body"
// @Success      201      {object}  response.Category
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /categories [post]
// @Security     BearerAuth
func (h *CategoryHandler) HandleCreateCategory(ctx *gin.Context) {
	var req request.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	c, err := h.svc.CreateCategory(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateCategory -> h.svc.CreateCategory", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewCategory(c))
}

// HandleInitializeCategories godoc
// @Summary      Insert the default categories that are missing
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Message
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /categories/initialize [post]
// @Security     BearerAuth
func (h *CategoryHandler) HandleInitializeCategories(ctx *gin.Context) {
	if err := h.svc.InitializeDefaultCategories(ctx.Request.Context()); err != nil {
		renderServiceErr(ctx, "v1.HandleInitializeCategories -> h.svc.InitializeDefaultCategories", err)
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Default categories initialized"})
}
