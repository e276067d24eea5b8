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

// SubredditService handles business logic for subreddits
type SubredditService struct {
	repo      repository.SubredditRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure SubredditService implements SubredditServiceInterface
var _ SubredditServiceInterface = (*SubredditService)(nil)

// NewSubredditService creates a new subreddit service
func NewSubredditService(repo repository.SubredditRepositoryInterface, validator *validator.Validate) *SubredditService {
	return &SubredditService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateSubredditRequest represents the request to create a subreddit
type CreateSubredditRequest struct {
	Name string `json:"name" validate:"required,min=1,max=500"`
}

// UpdateSubredditRequest represents the request to update a subreddit; all
// fields are optional
type UpdateSubredditRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=500"`
}

// SubredditQuery represents the list query parameters for subreddits
type SubredditQuery struct {
	Page      int    `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit     int    `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Search    string `form:"search" json:"search"`
	SortBy    string `form:"sort_by" json:"sort_by" validate:"omitempty,oneof=name created_at updated_at"`
	SortOrder string `form:"sort_order" json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// SubredditResponse represents a subreddit in API responses
type SubredditResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SubredditListResponse represents a paginated list of subreddits
type SubredditListResponse struct {
	Subreddits []SubredditResponse `json:"subreddits"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Pages      int                 `json:"pages"`
}

// NormalizeSubredditName trims, lowercases and strips a leading "r/"
// prefix. Applied before every write and every name-based lookup.
func NormalizeSubredditName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "r/")
	return strings.TrimSpace(name)
}

// CreateSubreddit validates, normalizes and creates a new subreddit
func (s *SubredditService) CreateSubreddit(req *CreateSubredditRequest) (*SubredditResponse, error) {
	req.Name = NormalizeSubredditName(req.Name)

	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	exists, err := s.repo.Exists(req.Name)
	if err != nil {
		s.log.WithError(err).Error("failed to check existing subreddit")
		return nil, fmt.Errorf("failed to check existing subreddit: %w", err)
	}
	if exists {
		return nil, apperrors.ErrSubredditExists
	}

	subreddit := &models.Subreddit{
		Name: req.Name,
	}

	if err := s.repo.Create(subreddit); err != nil {
		s.log.WithError(err).Error("failed to create subreddit")
		return nil, fmt.Errorf("failed to create subreddit: %w", err)
	}

	s.log.WithEntity("subreddit", subreddit.ID).Info("subreddit created")
	return s.toResponse(subreddit), nil
}

// GetSubredditByID retrieves a subreddit by ID
func (s *SubredditService) GetSubredditByID(id uint) (*SubredditResponse, error) {
	if id == 0 {
		return nil, apperrors.ErrInvalidID
	}

	subreddit, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubredditNotFound
		}
		s.log.WithEntity("subreddit", id).WithError(err).Error("failed to get subreddit")
		return nil, fmt.Errorf("failed to get subreddit: %w", err)
	}

	return s.toResponse(subreddit), nil
}

// GetSubredditByName retrieves a subreddit by its normalized name
func (s *SubredditService) GetSubredditByName(name string) (*SubredditResponse, error) {
	name = NormalizeSubredditName(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}

	subreddit, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubredditNotFound
		}
		s.log.WithField("name", name).WithError(err).Error("failed to get subreddit")
		return nil, fmt.Errorf("failed to get subreddit: %w", err)
	}

	return s.toResponse(subreddit), nil
}

// GetAllSubreddits retrieves subreddits with pagination, filtering and
// sorting (alphabetical by default)
func (s *SubredditService) GetAllSubreddits(query *SubredditQuery) (*SubredditListResponse, error) {
	if query == nil {
		query = &SubredditQuery{}
	}
	if err := s.validator.Struct(query); err != nil {
		return nil, translateValidationError(err)
	}

	page, limit := normalizePage(query.Page, query.Limit)
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	sortOrder := query.SortOrder
	if sortOrder == "" {
		sortOrder = "asc"
	}

	subreddits, total, err := s.repo.List(repository.ListOptions{
		Search:    strings.TrimSpace(query.Search),
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		s.log.WithError(err).Error("failed to list subreddits")
		return nil, fmt.Errorf("failed to get subreddits: %w", err)
	}

	responses := make([]SubredditResponse, len(subreddits))
	for i, subreddit := range subreddits {
		responses[i] = *s.toResponse(&subreddit)
	}

	return &SubredditListResponse{
		Subreddits: responses,
		Total:      total,
		Page:       page,
		Limit:      limit,
		Pages:      totalPages(total, limit),
	}, nil
}

// UpdateSubreddit updates a subreddit. The uniqueness check only runs when
// the name is present in the patch and its normalized form differs from the
// stored value.
func (s *SubredditService) UpdateSubreddit(id uint, req *UpdateSubredditRequest) (*SubredditResponse, error) {
	if id == 0 {
		return nil, apperrors.ErrInvalidID
	}

	if req.Name != nil {
		normalized := NormalizeSubredditName(*req.Name)
		req.Name = &normalized
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	subreddit, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubredditNotFound
		}
		s.log.WithEntity("subreddit", id).WithError(err).Error("failed to get subreddit")
		return nil, fmt.Errorf("failed to get subreddit: %w", err)
	}

	if req.Name != nil && *req.Name != subreddit.Name {
		exists, err := s.repo.Exists(*req.Name)
		if err != nil {
			s.log.WithError(err).Error("failed to check existing subreddit")
			return nil, fmt.Errorf("failed to check existing subreddit: %w", err)
		}
		if exists {
			return nil, apperrors.ErrSubredditExists
		}
		subreddit.Name = *req.Name
	}

	if err := s.repo.Update(subreddit); err != nil {
		s.log.WithEntity("subreddit", id).WithError(err).Error("failed to update subreddit")
		return nil, fmt.Errorf("failed to update subreddit: %w", err)
	}

	return s.toResponse(subreddit), nil
}

// DeleteSubreddit deletes a subreddit by ID
func (s *SubredditService) DeleteSubreddit(id uint) error {
	if id == 0 {
		return apperrors.ErrInvalidID
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubredditNotFound
		}
		s.log.WithEntity("subreddit", id).WithError(err).Error("failed to get subreddit")
		return fmt.Errorf("failed to get subreddit: %w", err)
	}

	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.log.WithEntity("subreddit", id).WithError(err).Error("failed to delete subreddit")
		return fmt.Errorf("failed to delete subreddit: %w", err)
	}
	if !deleted {
		return apperrors.ErrSubredditDeletionFailed
	}

	s.log.WithEntity("subreddit", id).Info("subreddit deleted")
	return nil
}

// SearchSubreddits retrieves subreddits whose name contains the normalized
// query. Always returns a possibly-empty slice, never a not-found error.
func (s *SubredditService) SearchSubreddits(query string, limit int) ([]SubredditResponse, error) {
	query = NormalizeSubredditName(query)
	if query == "" {
		return nil, apperrors.ErrEmptySearchQuery
	}

	subreddits, err := s.repo.Search(query, normalizeSearchLimit(limit))
	if err != nil {
		s.log.WithError(err).Error("failed to search subreddits")
		return nil, fmt.Errorf("failed to search subreddits: %w", err)
	}

	responses := make([]SubredditResponse, 0, len(subreddits))
	for i := range subreddits {
		responses = append(responses, *s.toResponse(&subreddits[i]))
	}
	return responses, nil
}

// GetStatistics returns aggregate subreddit counts
func (s *SubredditService) GetStatistics() (*repository.SubredditStatistics, error) {
	stats, err := s.repo.GetStatistics()
	if err != nil {
		s.log.WithError(err).Error("failed to get subreddit statistics")
		return nil, fmt.Errorf("failed to get subreddit statistics: %w", err)
	}
	return stats, nil
}

// toResponse converts a subreddit model to response
func (s *SubredditService) toResponse(subreddit *models.Subreddit) *SubredditResponse {
	return &SubredditResponse{
		ID:        subreddit.ID,
		Name:      subreddit.Name,
		CreatedAt: subreddit.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: subreddit.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
