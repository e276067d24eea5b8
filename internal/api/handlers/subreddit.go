package handlers

import (
	"net/http"
	"strconv"

	apperrors "deal-tracker-backend/internal/errors"
	"deal-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubredditHandler handles HTTP requests for subreddits
type SubredditHandler struct {
	service service.SubredditServiceInterface
}

// NewSubredditHandler creates a new subreddit handler
func NewSubredditHandler(service service.SubredditServiceInterface) *SubredditHandler {
	return &SubredditHandler{service: service}
}

// CreateSubreddit handles POST /api/v1/subreddits
// @Summary Create a new subreddit
// @Tags subreddits
// @Accept json
// @Produce json
// @Param subreddit body service.CreateSubredditRequest true "Subreddit data"
// @Success 201 {object} service.SubredditResponse
// @Router /subreddits [post]
func (h *SubredditHandler) CreateSubreddit(c *gin.Context) {
	var req service.CreateSubredditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	subreddit, err := h.service.CreateSubreddit(&req)
	if err != nil {
		respondSubredditError(c, err, "Failed to create subreddit")
		return
	}

	c.JSON(http.StatusCreated, subreddit)
}

// GetSubreddit handles GET /api/v1/subreddits/:id
// @Summary Get subreddit by ID
// @Tags subreddits
// @Produce json
// @Param id path int true "Subreddit ID"
// @Success 200 {object} service.SubredditResponse
// @Router /subreddits/{id} [get]
func (h *SubredditHandler) GetSubreddit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	subreddit, err := h.service.GetSubredditByID(id)
	if err != nil {
		respondSubredditError(c, err, "Failed to get subreddit")
		return
	}

	c.JSON(http.StatusOK, subreddit)
}

// GetSubredditByName handles GET /api/v1/subreddits/by-name/:name
// @Summary Get subreddit by normalized name
// @Tags subreddits
// @Produce json
// @Param name path string true "Subreddit name"
// @Success 200 {object} service.SubredditResponse
// @Router /subreddits/by-name/{name} [get]
func (h *SubredditHandler) GetSubredditByName(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subreddit name is required"})
		return
	}

	subreddit, err := h.service.GetSubredditByName(name)
	if err != nil {
		respondSubredditError(c, err, "Failed to get subreddit")
		return
	}

	c.JSON(http.StatusOK, subreddit)
}

// ListSubreddits handles GET /api/v1/subreddits
// @Summary List subreddits with pagination, search and sorting
// @Tags subreddits
// @Produce json
// @Success 200 {object} service.SubredditListResponse
// @Router /subreddits [get]
func (h *SubredditHandler) ListSubreddits(c *gin.Context) {
	var query service.SubredditQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	subreddits, err := h.service.GetAllSubreddits(&query)
	if err != nil {
		respondSubredditError(c, err, "Failed to list subreddits")
		return
	}

	c.JSON(http.StatusOK, subreddits)
}

// UpdateSubreddit handles PUT /api/v1/subreddits/:id
// @Summary Update a subreddit
// @Tags subreddits
// @Accept json
// @Produce json
// @Param id path int true "Subreddit ID"
// @Param subreddit body service.UpdateSubredditRequest true "Fields to update"
// @Success 200 {object} service.SubredditResponse
// @Router /subreddits/{id} [put]
func (h *SubredditHandler) UpdateSubreddit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateSubredditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	subreddit, err := h.service.UpdateSubreddit(id, &req)
	if err != nil {
		respondSubredditError(c, err, "Failed to update subreddit")
		return
	}

	c.JSON(http.StatusOK, subreddit)
}

// DeleteSubreddit handles DELETE /api/v1/subreddits/:id
// @Summary Delete a subreddit
// @Tags subreddits
// @Param id path int true "Subreddit ID"
// @Success 204 "No Content"
// @Router /subreddits/{id} [delete]
func (h *SubredditHandler) DeleteSubreddit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSubreddit(id); err != nil {
		respondSubredditError(c, err, "Failed to delete subreddit")
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchSubreddits handles GET /api/v1/subreddits/search
// @Summary Search subreddits by substring of the normalized name
// @Tags subreddits
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Result cap (1-100, default 20)"
// @Success 200 {array} service.SubredditResponse
// @Router /subreddits/search [get]
func (h *SubredditHandler) SearchSubreddits(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	subreddits, err := h.service.SearchSubreddits(query, limit)
	if err != nil {
		respondSubredditError(c, err, "Failed to search subreddits")
		return
	}

	c.JSON(http.StatusOK, subreddits)
}

// GetStatistics handles GET /api/v1/subreddits/statistics
// @Summary Get aggregate subreddit counts
// @Tags subreddits
// @Produce json
// @Success 200 {object} repository.SubredditStatistics
// @Router /subreddits/statistics [get]
func (h *SubredditHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get subreddit statistics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// respondSubredditError maps service errors onto HTTP statuses
func respondSubredditError(c *gin.Context, err error, message string) {
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
