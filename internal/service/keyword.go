package service

import (
	"errors"
	"fmt"
	"strings"

	"deal-tracker-backend/internal/database/models"
	apperrors "deal-tracker-backend/internal/errors"
	"deal-tracker-backend/internal/logger"
	"deal-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// KeywordService handles business logic for keywords
type KeywordService struct {
	repo      repository.KeywordRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure KeywordService implements KeywordServiceInterface
var _ KeywordServiceInterface = (*KeywordService)(nil)

// NewKeywordService creates a new keyword service
func NewKeywordService(repo repository.KeywordRepositoryInterface, validator *validator.Validate) *KeywordService {
	return &KeywordService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateKeywordRequest represents the request to create a keyword
type CreateKeywordRequest struct {
	Keyword string `json:"keyword" validate:"required,min=1,max=500"`
}

// UpdateKeywordRequest represents the request to update a keyword; all
// fields are optional
type UpdateKeywordRequest struct {
	Keyword  *string `json:"keyword" validate:"omitempty,min=1,max=500"`
	IsActive *bool   `json:"is_active"`
}

// KeywordQuery represents the list query parameters for keywords
type KeywordQuery struct {
	Page      int    `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit     int    `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Search    string `form:"search" json:"search"`
	SortBy    string `form:"sort_by" json:"sort_by" validate:"omitempty,oneof=keyword created_at updated_at"`
	SortOrder string `form:"sort_order" json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// KeywordResponse represents a keyword in API responses
type KeywordResponse struct {
	ID        uint   `json:"id"`
	Keyword   string `json:"keyword"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// KeywordListResponse represents a paginated list of keywords
type KeywordListResponse struct {
	Keywords []KeywordResponse `json:"keywords"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Pages    int               `json:"pages"`
}

// CreateKeyword validates, normalizes and creates a new keyword
func (s *KeywordService) CreateKeyword(req *CreateKeywordRequest) (*KeywordResponse, error) {
	req.Keyword = strings.TrimSpace(req.Keyword)

	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	exists, err := s.repo.Exists(req.Keyword)
	if err != nil {
		s.log.WithError(err).Error("failed to check existing keyword")
		return nil, fmt.Errorf("failed to check existing keyword: %w", err)
	}
	if exists {
		return nil, apperrors.ErrKeywordExists
	}

	keyword := &models.Keyword{
		Keyword:  req.Keyword,
		IsActive: true,
	}

	if err := s.repo.Create(keyword); err != nil {
		s.log.WithError(err).Error("failed to create keyword")
		return nil, fmt.Errorf("failed to create keyword: %w", err)
	}

	s.log.WithEntity("keyword", keyword.ID).Info("keyword created")
	return s.toResponse(keyword), nil
}

// GetKeywordByID retrieves a keyword by ID
func (s *KeywordService) GetKeywordByID(id uint) (*KeywordResponse, error) {
	if id == 0 {
		return nil, apperrors.ErrInvalidID
	}

	keyword, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeywordNotFound
		}
		s.log.WithEntity("keyword", id).WithError(err).Error("failed to get keyword")
		return nil, fmt.Errorf("failed to get keyword: %w", err)
	}

	return s.toResponse(keyword), nil
}

// GetAllKeywords retrieves keywords with pagination, filtering and sorting
func (s *KeywordService) GetAllKeywords(query *KeywordQuery) (*KeywordListResponse, error) {
	if query == nil {
		query = &KeywordQuery{}
	}
	if err := s.validator.Struct(query); err != nil {
		return nil, translateValidationError(err)
	}

	page, limit := normalizePage(query.Page, query.Limit)
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := query.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}

	keywords, total, err := s.repo.List(repository.ListOptions{
		Search:    strings.TrimSpace(query.Search),
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		s.log.WithError(err).Error("failed to list keywords")
		return nil, fmt.Errorf("failed to get keywords: %w", err)
	}

	responses := make([]KeywordResponse, len(keywords))
	for i, keyword := range keywords {
		responses[i] = *s.toResponse(&keyword)
	}

	return &KeywordListResponse{
		Keywords: responses,
		Total:    total,
		Page:     page,
		Limit:    limit,
		Pages:    totalPages(total, limit),
	}, nil
}

// UpdateKeyword updates a keyword. The uniqueness check only runs when the
// keyword text is present in the patch and differs from the stored value.
func (s *KeywordService) UpdateKeyword(id uint, req *UpdateKeywordRequest) (*KeywordResponse, error) {
	if id == 0 {
		return nil, apperrors.ErrInvalidID
	}

	if req.Keyword != nil {
		trimmed := strings.TrimSpace(*req.Keyword)
		req.Keyword = &trimmed
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	keyword, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeywordNotFound
		}
		s.log.WithEntity("keyword", id).WithError(err).Error("failed to get keyword")
		return nil, fmt.Errorf("failed to get keyword: %w", err)
	}

	if req.Keyword != nil && *req.Keyword != keyword.Keyword {
		exists, err := s.repo.Exists(*req.Keyword)
		if err != nil {
			s.log.WithError(err).Error("failed to check existing keyword")
			return nil, fmt.Errorf("failed to check existing keyword: %w", err)
		}
		if exists {
			return nil, apperrors.ErrKeywordExists
		}
		keyword.Keyword = *req.Keyword
	}
	if req.IsActive != nil {
		keyword.IsActive = *req.IsActive
	}

	if err := s.repo.Update(keyword); err != nil {
		s.log.WithEntity("keyword", id).WithError(err).Error("failed to update keyword")
		return nil, fmt.Errorf("failed to update keyword: %w", err)
	}

	return s.toResponse(keyword), nil
}

// DeleteKeyword deletes a keyword by ID
func (s *KeywordService) DeleteKeyword(id uint) error {
	if id == 0 {
		return apperrors.ErrInvalidID
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrKeywordNotFound
		}
		s.log.WithEntity("keyword", id).WithError(err).Error("failed to get keyword")
		return fmt.Errorf("failed to get keyword: %w", err)
	}

	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.log.WithEntity("keyword", id).WithError(err).Error("failed to delete keyword")
		return fmt.Errorf("failed to delete keyword: %w", err)
	}
	if !deleted {
		return apperrors.ErrKeywordDeletionFailed
	}

	s.log.WithEntity("keyword", id).Info("keyword deleted")
	return nil
}

// SearchKeywords retrieves keywords whose text contains the query
func (s *KeywordService) SearchKeywords(query string, limit int) ([]KeywordResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ErrEmptySearchQuery
	}

	keywords, err := s.repo.Search(query, normalizeSearchLimit(limit))
	if err != nil {
		s.log.WithError(err).Error("failed to search keywords")
		return nil, fmt.Errorf("failed to search keywords: %w", err)
	}

	responses := make([]KeywordResponse, 0, len(keywords))
	for i := range keywords {
		responses = append(responses, *s.toResponse(&keywords[i]))
	}
	return responses, nil
}

// GetStatistics returns aggregate keyword counts
func (s *KeywordService) GetStatistics() (*repository.KeywordStatistics, error) {
	stats, err := s.repo.GetStatistics()
	if err != nil {
		s.log.WithError(err).Error("failed to get keyword statistics")
		return nil, fmt.Errorf("failed to get keyword statistics: %w", err)
	}
	return stats, nil
}

// toResponse converts a keyword model to response
func (s *KeywordService) toResponse(keyword *models.Keyword) *KeywordResponse {
	return &KeywordResponse{
		ID:        keyword.ID,
		Keyword:   keyword.Keyword,
		IsActive:  keyword.IsActive,
		CreatedAt: keyword.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: keyword.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
