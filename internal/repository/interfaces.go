package repository

import (
	"deal-tracker-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ListOptions carries the common filtered-list parameters. SortBy must be a
// column name already validated by the service layer.
type ListOptions struct {
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// PostListOptions extends ListOptions with the tri-state has-links filter
type PostListOptions struct {
	ListOptions
	HasLinks *bool
}

// KeywordStatistics holds aggregate counts over the keywords table
type KeywordStatistics struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// SubredditStatistics holds aggregate counts over the subreddits table
type SubredditStatistics struct {
	Total int64 `json:"total"`
}

// PostStatistics holds aggregate counts over the posts table
type PostStatistics struct {
	Total                int64 `json:"total"`
	WithLinks            int64 `json:"with_links"`
	WithoutLinks         int64 `json:"without_links"`
	AvgDescriptionLength int   `json:"avg_description_length"`
}

// KeywordRepositoryInterface defines the interface for keyword repository operations
type KeywordRepositoryInterface interface {
	Create(keyword *models.Keyword) error
	GetByID(id uint) (*models.Keyword, error)
	GetByKeyword(keyword string) (*models.Keyword, error)
	Exists(keyword string) (bool, error)
	List(opts ListOptions) ([]models.Keyword, int64, error)
	Search(query string, limit int) ([]models.Keyword, error)
	Update(keyword *models.Keyword) error
	Delete(id uint) (bool, error)
	GetStatistics() (*KeywordStatistics, error)
}

// SubredditRepositoryInterface defines the interface for subreddit repository operations
type SubredditRepositoryInterface interface {
	Create(subreddit *models.Subreddit) error
	GetByID(id uint) (*models.Subreddit, error)
	GetByName(name string) (*models.Subreddit, error)
	Exists(name string) (bool, error)
	List(opts ListOptions) ([]models.Subreddit, int64, error)
	Search(query string, limit int) ([]models.Subreddit, error)
	Update(subreddit *models.Subreddit) error
	Delete(id uint) (bool, error)
	GetStatistics() (*SubredditStatistics, error)
}

// PostRepositoryInterface defines the interface for post repository operations
type PostRepositoryInterface interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetByTitle(title string) (*models.Post, error)
	ExistsByTitle(title string) (bool, error)
	List(opts PostListOptions) ([]models.Post, int64, error)
	Search(query string, limit int) ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) (bool, error)
	GetStatistics() (*PostStatistics, error)
}
