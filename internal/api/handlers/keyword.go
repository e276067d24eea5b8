package handlers

import (
	"net/http"
	"strconv"

	apperrors "deal-tracker-backend/internal/errors"
	"deal-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// KeywordHandler handles HTTP requests for keywords
type KeywordHandler struct {
	service service.KeywordServiceInterface
}

// NewKeywordHandler creates a new keyword handler
func NewKeywordHandler(service service.KeywordServiceInterface) *KeywordHandler {
	return &KeywordHandler{service: service}
}

// CreateKeyword handles POST /api/v1/keywords
// @Summary Create a new keyword
// @Tags keywords
// @Accept json
// @Produce json
// @Param keyword body service.CreateKeywordRequest true "Keyword data"
// @Success 201 {object} service.KeywordResponse
// @Router /keywords [post]
func (h *KeywordHandler) CreateKeyword(c *gin.Context) {
	var req service.CreateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	keyword, err := h.service.CreateKeyword(&req)
	if err != nil {
		respondKeywordError(c, err, "Failed to create keyword")
		return
	}

	c.JSON(http.StatusCreated, keyword)
}

// GetKeyword handles GET /api/v1/keywords/:id
// @Summary Get keyword by ID
// @Tags keywords
// @Produce json
// @Param id path int true "Keyword ID"
// @Success 200 {object} service.KeywordResponse
// @Router /keywords/{id} [get]
func (h *KeywordHandler) GetKeyword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	keyword, err := h.service.GetKeywordByID(id)
	if err != nil {
		respondKeywordError(c, err, "Failed to get keyword")
		return
	}

	c.JSON(http.StatusOK, keyword)
}

// ListKeywords handles GET /api/v1/keywords
// @Summary List keywords with pagination, search and sorting
// @Tags keywords
// @Produce json
// @Success 200 {object} service.KeywordListResponse
// @Router /keywords [get]
func (h *KeywordHandler) ListKeywords(c *gin.Context) {
	var query service.KeywordQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	keywords, err := h.service.GetAllKeywords(&query)
	if err != nil {
		respondKeywordError(c, err, "Failed to list keywords")
		return
	}

	c.JSON(http.StatusOK, keywords)
}

// UpdateKeyword handles PUT /api/v1/keywords/:id
// @Summary Update a keyword
// @Tags keywords
// @Accept json
// @Produce json
// @Param id path int true "Keyword ID"
// @Param keyword body service.UpdateKeywordRequest true "Fields to update"
// @Success 200 {object} service.KeywordResponse
// @Router /keywords/{id} [put]
func (h *KeywordHandler) UpdateKeyword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	keyword, err := h.service.UpdateKeyword(id, &req)
	if err != nil {
		respondKeywordError(c, err, "Failed to update keyword")
		return
	}

	c.JSON(http.StatusOK, keyword)
}

// DeleteKeyword handles DELETE /api/v1/keywords/:id
// @Summary Delete a keyword
// @Tags keywords
// @Param id path int true "Keyword ID"
// @Success 204 "No Content"
// @Router /keywords/{id} [delete]
func (h *KeywordHandler) DeleteKeyword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteKeyword(id); err != nil {
		respondKeywordError(c, err, "Failed to delete keyword")
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchKeywords handles GET /api/v1/keywords/search
// @Summary Search keywords by substring
// @Tags keywords
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Result cap (1-100, default 20)"
// @Success 200 {array} service.KeywordResponse
// @Router /keywords/search [get]
func (h *KeywordHandler) SearchKeywords(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	keywords, err := h.service.SearchKeywords(query, limit)
	if err != nil {
		respondKeywordError(c, err, "Failed to search keywords")
		return
	}

	c.JSON(http.StatusOK, keywords)
}

// GetStatistics handles GET /api/v1/keywords/statistics
// @Summary Get aggregate keyword counts
// @Tags keywords
// @Produce json
// @Success 200 {object} repository.KeywordStatistics
// @Router /keywords/statistics [get]
func (h *KeywordHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get keyword statistics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// respondKeywordError maps service errors onto HTTP statuses
func respondKeywordError(c *gin.Context, err error, message string) {
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

// parseID parses the :id path parameter, responding 400 on bad input
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
