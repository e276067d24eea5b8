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

// PostService handles business logic for posts
type PostService struct {
	repo      repository.PostRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure PostService implements PostServiceInterface
var _ PostServiceInterface = (*PostService)(nil)

// NewPostService creates a new post service
func NewPostService(repo repository.PostRepositoryInterface, validator *validator.Validate) *PostService {
	return &PostService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreatePostRequest represents the request to create a post. Links default
// to an empty list; each entry must be a well-formed URL.
type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=500"`
	Description *string  `json:"description" validate:"omitempty,max=10000"`
	Links       []string `json:"links" validate:"omitempty,dive,url"`
}

// UpdatePostRequest represents the request to update a post; all fields are
// optional
type UpdatePostRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=500"`
	Description *string  `json:"description" validate:"omitempty,max=10000"`
	Links       []string `json:"links" validate:"omitempty,dive,url"`
}

// PostQuery represents the list query parameters for posts. Posts have no
// sort fields; results are always newest first.
type PostQuery struct {
	Page     int    `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit    int    `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Search   string `form:"search" json:"search"`
	HasLinks *bool  `form:"has_links" json:"has_links"`
}

// PostResponse represents a post in API responses, including the derived
// display fields
type PostResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Links       []string `json:"links"`
	HasLinks    bool     `json:"has_links"`
	LinkCount   int      `json:"link_count"`
	Preview     string   `json:"preview"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// PostListResponse represents a paginated list of posts
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Pages int            `json:"pages"`
}

// CreatePost validates, normalizes and creates a new post
func (s *PostService) CreatePost(req *CreatePostRequest) (*PostResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = trimDescription(req.Description)

	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	exists, err := s.repo.ExistsByTitle(req.Title)
	if err != nil {
		s.log.WithError(err).Error("failed to check existing post")
		return nil, fmt.Errorf("failed to check existing post: %w", err)
	}
	if exists {
		return nil, apperrors.ErrPostExists
	}

	post := &models.Post{
		Title:       req.Title,
		Description: req.Description,
		Links:       toLinkList(req.Links),
	}

	if err := s.repo.Create(post); err != nil {
		s.log.WithError(err).Error("failed to create post")
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.log.WithEntity("post", post.ID).Info("post created")
	return s.toResponse(post), nil
}

// GetPostByID retrieves a post by ID
func (s *PostService) GetPostByID(id uint) (*PostResponse, error) {
	if id == 0 {
		return nil, apperrors.ErrInvalidID
	}

	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		s.log.WithEntity("post", id).WithError(err).Error("failed to get post")
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return s.toResponse(post), nil
}

// GetAllPosts retrieves posts with pagination, substring search and the
// optional has_links filter
func (s *PostService) GetAllPosts(query *PostQuery) (*PostListResponse, error) {
	if query == nil {
		query = &PostQuery{}
	}
	if err := s.validator.Struct(query); err != nil {
		return nil, translateValidationError(err)
	}

	page, limit := normalizePage(query.Page, query.Limit)

	posts, total, err := s.repo.List(repository.PostListOptions{
		ListOptions: repository.ListOptions{
			Search: strings.TrimSpace(query.Search),
			Limit:  limit,
			Offset: (page - 1) * limit,
		},
		HasLinks: query.HasLinks,
	})
	if err != nil {
		s.log.WithError(err).Error("failed to list posts")
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	responses := make([]PostResponse, len(posts))
	for i := range posts {
		responses[i] = *s.toResponse(&posts[i])
	}

	return &PostListResponse{
		Posts: responses,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: totalPages(total, limit),
	}, nil
}

// UpdatePost updates a post. The uniqueness check only runs when the title
// is present in the patch and differs from the stored value.
func (s *PostService) UpdatePost(id uint, req *UpdatePostRequest) (*PostResponse, error) {
	if id == 0 {
		return nil, apperrors.ErrInvalidID
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	req.Description = trimDescription(req.Description)

	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		s.log.WithEntity("post", id).WithError(err).Error("failed to get post")
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if req.Title != nil && *req.Title != post.Title {
		exists, err := s.repo.ExistsByTitle(*req.Title)
		if err != nil {
			s.log.WithError(err).Error("failed to check existing post")
			return nil, fmt.Errorf("failed to check existing post: %w", err)
		}
		if exists {
			return nil, apperrors.ErrPostExists
		}
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = req.Description
	}
	if req.Links != nil {
		post.Links = toLinkList(req.Links)
	}

	if err := s.repo.Update(post); err != nil {
		s.log.WithEntity("post", id).WithError(err).Error("failed to update post")
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return s.toResponse(post), nil
}

// DeletePost deletes a post by ID
func (s *PostService) DeletePost(id uint) error {
	if id == 0 {
		return apperrors.ErrInvalidID
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		s.log.WithEntity("post", id).WithError(err).Error("failed to get post")
		return fmt.Errorf("failed to get post: %w", err)
	}

	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.log.WithEntity("post", id).WithError(err).Error("failed to delete post")
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !deleted {
		return apperrors.ErrPostDeletionFailed
	}

	s.log.WithEntity("post", id).Info("post deleted")
	return nil
}

// SearchPosts retrieves posts whose title or description contains the query
func (s *PostService) SearchPosts(query string, limit int) ([]PostResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ErrEmptySearchQuery
	}

	posts, err := s.repo.Search(query, normalizeSearchLimit(limit))
	if err != nil {
		s.log.WithError(err).Error("failed to search posts")
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, *s.toResponse(&posts[i]))
	}
	return responses, nil
}

// GetStatistics returns aggregate post counts
func (s *PostService) GetStatistics() (*repository.PostStatistics, error) {
	stats, err := s.repo.GetStatistics()
	if err != nil {
		s.log.WithError(err).Error("failed to get post statistics")
		return nil, fmt.Errorf("failed to get post statistics: %w", err)
	}
	return stats, nil
}

// toResponse converts a post model to response with derived fields
func (s *PostService) toResponse(post *models.Post) *PostResponse {
	links := post.Links
	if links == nil {
		links = models.LinkList{}
	}
	return &PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Links:       links,
		HasLinks:    post.HasLinks(),
		LinkCount:   post.LinkCount(),
		Preview:     post.Preview(),
		CreatedAt:   post.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   post.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// trimDescription trims a present description, preserving nil
func trimDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	return &trimmed
}

// toLinkList converts request links to the persisted list type, defaulting
// to an empty list
func toLinkList(links []string) models.LinkList {
	if links == nil {
		return models.LinkList{}
	}
	return models.LinkList(links)
}
