package handlers

import (
	"net/http"
	"strconv"

	apperrors "deal-tracker-backend/internal/errors"
	"deal-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PostHandler handles HTTP requests for posts
type PostHandler struct {
	service service.PostServiceInterface
}

// NewPostHandler creates a new post handler
func NewPostHandler(service service.PostServiceInterface) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePost handles POST /api/v1/posts
// @Summary Create a new post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body service.CreatePostRequest true "Post data"
// @Success 201 {object} service.PostResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	post, err := h.service.CreatePost(&req)
	if err != nil {
		respondPostError(c, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost handles GET /api/v1/posts/:id
// @Summary Get post by ID
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} service.PostResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.service.GetPostByID(id)
	if err != nil {
		respondPostError(c, err, "Failed to get post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts handles GET /api/v1/posts
// @Summary List posts with pagination, search and the has_links filter
// @Tags posts
// @Produce json
// @Success 200 {object} service.PostListResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	var query service.PostQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	posts, err := h.service.GetAllPosts(&query)
	if err != nil {
		respondPostError(c, err, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdatePost handles PUT /api/v1/posts/:id
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body service.UpdatePostRequest true "Fields to update"
// @Success 200 {object} service.PostResponse
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	post, err := h.service.UpdatePost(id, &req)
	if err != nil {
		respondPostError(c, err, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /api/v1/posts/:id
// @Summary Delete a post
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204 "No Content"
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePost(id); err != nil {
		respondPostError(c, err, "Failed to delete post")
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchPosts handles GET /api/v1/posts/search
// @Summary Search posts by substring of title or description
// @Tags posts
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Result cap (1-100, default 20)"
// @Success 200 {array} service.PostResponse
// @Router /posts/search [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	posts, err := h.service.SearchPosts(query, limit)
	if err != nil {
		respondPostError(c, err, "Failed to search posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetStatistics handles GET /api/v1/posts/statistics
// @Summary Get aggregate post counts
// @Tags posts
// @Produce json
// @Success 200 {object} repository.PostStatistics
// @Router /posts/statistics [get]
func (h *PostHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get post statistics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// respondPostError maps service errors onto HTTP statuses
func respondPostError(c *gin.Context, err error, message string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}
