package repository

import (
	"deal-tracker-backend/internal/database/models"

	"gorm.io/gorm"
)

// hasLinksCondition matches rows whose serialized links column holds at
// least one entry. Empty lists are stored as "[]".
const hasLinksCondition = "links IS NOT NULL AND links <> '' AND links <> '[]'"

// PostRepository handles database operations for posts
type PostRepository struct {
	db *gorm.DB
}

// Ensure PostRepository implements PostRepositoryInterface
var _ PostRepositoryInterface = (*PostRepository)(nil)

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post
func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByTitle retrieves a post by its exact title
func (r *PostRepository) GetByTitle(title string) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ExistsByTitle reports whether a post with the exact title is present
func (r *PostRepository) ExistsByTitle(title string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("title = ?", title).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List retrieves posts matching the options with a total count independent
// of pagination. Posts are always ordered newest first.
func (r *PostRepository) List(opts PostListOptions) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{})
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if opts.HasLinks != nil {
		if *opts.HasLinks {
			query = query.Where(hasLinksCondition)
		} else {
			query = query.Where("NOT (" + hasLinksCondition + ")")
		}
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(opts.Limit).Offset(opts.Offset).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Search retrieves posts whose title or description contains the query,
// newest first
func (r *PostRepository) Search(query string, limit int) ([]models.Post, error) {
	var posts []models.Post
	pattern := "%" + query + "%"
	err := r.db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update saves a post
func (r *PostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete deletes a post, reporting whether a row was removed
func (r *PostRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetStatistics returns aggregate counts over the posts table, including
// the average description length rounded to the nearest integer
func (r *PostRepository) GetStatistics() (*PostStatistics, error) {
	stats := &PostStatistics{}

	if err := r.db.Model(&models.Post{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Post{}).Where(hasLinksCondition).Count(&stats.WithLinks).Error; err != nil {
		return nil, err
	}
	stats.WithoutLinks = stats.Total - stats.WithLinks

	row := r.db.Model(&models.Post{}).
		Select("COALESCE(ROUND(AVG(LENGTH(description))), 0)").
		Row()
	if err := row.Scan(&stats.AvgDescriptionLength); err != nil {
		return nil, err
	}

	return stats, nil
}
