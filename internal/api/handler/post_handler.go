package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/core/ports"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Title   string   `json:"title"   validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent. A present but malformed value is a validation error,
// not a silent default.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrInvalidPagination
	}
	return n, nil
}

// List returns one page of a forum's posts ordered by ascending post number.
//
// @Summary      List posts in a forum
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        slug       path      string  true   "Forum slug"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        page_size  query     int     false  "Page size (default 10)"
// @Success      200        {object}  pagination.PageResult[domain.Post]
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/forums/{slug}/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, err := queryInt(c, "page", defaultPage)
	if err != nil {
		return err
	}
	pageSize, err := queryInt(c, "page_size", defaultPageSize)
	if err != nil {
		return err
	}

	result, err := h.service.ListPosts(c.Request().Context(), ports.ListPostsInput{
		ForumSlug: c.Param("slug"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Get returns a single post by its per-forum number.
//
// @Summary      Get a post by number
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        slug    path      string  true  "Forum slug"
// @Param        number  path      int     true  "Post number within the forum"
// @Success      200     {object}  domain.Post
// @Failure      404     {object}  errorResponse
// @Router       /api/forums/{slug}/posts/{number} [get]
func (h *PostHandler) Get(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return domain.ErrPostNotFound
	}

	post, err := h.service.GetPost(c.Request().Context(), c.Param("slug"), number)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

// Create opens a new post in a forum.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string             true  "Forum slug"
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/forums/{slug}/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
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

	post, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		ForumSlug: c.Param("slug"),
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		AuthorID:  user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, post)
}
