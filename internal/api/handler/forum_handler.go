package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demoforums/forum-api/internal/core/ports"
)

// ForumHandler handles HTTP requests for forum operations.
type ForumHandler struct {
	service ports.ForumService
}

func NewForumHandler(service ports.ForumService) *ForumHandler {
	return &ForumHandler{service: service}
}

type createForumRequest struct {
	Slug        string `json:"slug"        validate:"required"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required,oneof=Technology Science Art"`
}

// List returns all forums in creation order.
//
// @Summary      List all forums
// @Tags         forums
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Forum
// @Failure      401  {object}  errorResponse
// @Router       /api/forums [get]
func (h *ForumHandler) List(c echo.Context) error {
	forums, err := h.service.ListForums(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, forums)
}

// Create opens a new forum (admin only).
//
// @Summary      Create a new forum
// @Tags         forums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createForumRequest  true  "Forum details"
// @Success      201   {object}  domain.Forum
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/forums [post]
func (h *ForumHandler) Create(c echo.Context) error {
	var req createForumRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	forum, err := h.service.CreateForum(c.Request().Context(), ports.CreateForumInput{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, forum)
}
