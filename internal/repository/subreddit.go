package repository

import (
	"deal-tracker-backend/internal/database/models"

	"gorm.io/gorm"
)

// SubredditRepository handles database operations for subreddits
type SubredditRepository struct {
	db *gorm.DB
}

// Ensure SubredditRepository implements SubredditRepositoryInterface
var _ SubredditRepositoryInterface = (*SubredditRepository)(nil)

// NewSubredditRepository creates a new subreddit repository
func NewSubredditRepository(db *gorm.DB) *SubredditRepository {
	return &SubredditRepository{db: db}
}

// Create creates a new subreddit
func (r *SubredditRepository) Create(subreddit *models.Subreddit) error {
	return r.db.Create(subreddit).Error
}

// GetByID retrieves a subreddit by ID
func (r *SubredditRepository) GetByID(id uint) (*models.Subreddit, error) {
	var subreddit models.Subreddit
	err := r.db.First(&subreddit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &subreddit, nil
}

// GetByName retrieves a subreddit by its exact (normalized) name
func (r *SubredditRepository) GetByName(name string) (*models.Subreddit, error) {
	var subreddit models.Subreddit
	err := r.db.First(&subreddit, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &subreddit, nil
}

// Exists reports whether a subreddit with the exact name is present
func (r *SubredditRepository) Exists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subreddit{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List retrieves subreddits matching the options with a total count
// independent of pagination
func (r *SubredditRepository) List(opts ListOptions) ([]models.Subreddit, int64, error) {
	var subreddits []models.Subreddit
	var total int64

	query := r.db.Model(&models.Subreddit{})
	if opts.Search != "" {
		query = query.Where("name ILIKE ?", "%"+opts.Search+"%")
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	order := subredditSortColumn(opts.SortBy) + " " + sortDirection(opts.SortOrder)
	err := query.Order(order).Limit(opts.Limit).Offset(opts.Offset).Find(&subreddits).Error
	if err != nil {
		return nil, 0, err
	}

	return subreddits, total, nil
}

// Search retrieves subreddits whose name contains the query, alphabetically
func (r *SubredditRepository) Search(query string, limit int) ([]models.Subreddit, error) {
	var subreddits []models.Subreddit
	err := r.db.Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&subreddits).Error
	if err != nil {
		return nil, err
	}
	return subreddits, nil
}

// Update saves a subreddit
func (r *SubredditRepository) Update(subreddit *models.Subreddit) error {
	return r.db.Save(subreddit).Error
}

// Delete deletes a subreddit, reporting whether a row was removed
func (r *SubredditRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Subreddit{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetStatistics returns aggregate counts over the subreddits table
func (r *SubredditRepository) GetStatistics() (*SubredditStatistics, error) {
	stats := &SubredditStatistics{}
	if err := r.db.Model(&models.Subreddit{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// subredditSortColumn maps a validated sort field to its column
func subredditSortColumn(sortBy string) string {
	switch sortBy {
	case "created_at", "updated_at":
		return sortBy
	default:
		return "name"
	}
}
