package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

func postNumber(c echo.Context) (int, error) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return 0, domain.ErrPostNotFound
	}
	return number, nil
}

// List returns a post's comments in creation order.
//
// @Summary      List comments on a post
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        slug    path      string  true  "Forum slug"
// @Param        number  path      int     true  "Post number within the forum"
// @Success      200     {array}   domain.Comment
// @Failure      404     {object}  errorResponse
// @Router       /api/forums/{slug}/posts/{number}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	number, err := postNumber(c)
	if err != nil {
		return err
	}

	comments, err := h.service.ListComments(c.Request().Context(), c.Param("slug"), number)
	if err != nil {
		return err
	}

	if comments == nil {
		comments = []domain.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}

// Create attaches a comment to a post.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug    path      string                true  "Forum slug"
// @Param        number  path      int                   true  "Post number within the forum"
// @Param        body    body      createCommentRequest  true  "Comment body"
// @Success      201     {object}  domain.Comment
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/forums/{slug}/posts/{number}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	number, err := postNumber(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	comment, err := h.service.CreateComment(c.Request().Context(), ports.CreateCommentInput{
		ForumSlug:  c.Param("slug"),
		PostNumber: number,
		Content:    req.Content,
		AuthorID:   user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}
