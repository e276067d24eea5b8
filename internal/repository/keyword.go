package repository

import (
	"strings"

	"deal-tracker-backend/internal/database/models"

	"gorm.io/gorm"
)

// KeywordRepository handles database operations for keywords
type KeywordRepository struct {
	db *gorm.DB
}

// Ensure KeywordRepository implements KeywordRepositoryInterface
var _ KeywordRepositoryInterface = (*KeywordRepository)(nil)

// NewKeywordRepository creates a new keyword repository
func NewKeywordRepository(db *gorm.DB) *KeywordRepository {
	return &KeywordRepository{db: db}
}

// Create creates a new keyword
func (r *KeywordRepository) Create(keyword *models.Keyword) error {
	return r.db.Create(keyword).Error
}

// GetByID retrieves a keyword by ID
func (r *KeywordRepository) GetByID(id uint) (*models.Keyword, error) {
	var keyword models.Keyword
	err := r.db.First(&keyword, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &keyword, nil
}

// GetByKeyword retrieves a keyword by its exact text value
func (r *KeywordRepository) GetByKeyword(value string) (*models.Keyword, error) {
	var keyword models.Keyword
	err := r.db.First(&keyword, "keyword = ?", value).Error
	if err != nil {
		return nil, err
	}
	return &keyword, nil
}

// Exists reports whether a keyword with the exact text value is present
func (r *KeywordRepository) Exists(value string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Keyword{}).Where("keyword = ?", value).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List retrieves keywords matching the options with a total count
// independent of pagination
func (r *KeywordRepository) List(opts ListOptions) ([]models.Keyword, int64, error) {
	var keywords []models.Keyword
	var total int64

	query := r.db.Model(&models.Keyword{})
	if opts.Search != "" {
		query = query.Where("keyword ILIKE ?", "%"+opts.Search+"%")
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	order := keywordSortColumn(opts.SortBy) + " " + sortDirection(opts.SortOrder)
	err := query.Order(order).Limit(opts.Limit).Offset(opts.Offset).Find(&keywords).Error
	if err != nil {
		return nil, 0, err
	}

	return keywords, total, nil
}

// Search retrieves keywords whose text contains the query, newest first
func (r *KeywordRepository) Search(query string, limit int) ([]models.Keyword, error) {
	var keywords []models.Keyword
	err := r.db.Where("keyword ILIKE ?", "%"+query+"%").
		Order("created_at DESC").
		Limit(limit).
		Find(&keywords).Error
	if err != nil {
		return nil, err
	}
	return keywords, nil
}

// Update saves a keyword
func (r *KeywordRepository) Update(keyword *models.Keyword) error {
	return r.db.Save(keyword).Error
}

// Delete deletes a keyword, reporting whether a row was removed
func (r *KeywordRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Keyword{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetStatistics returns aggregate counts over the keywords table
func (r *KeywordRepository) GetStatistics() (*KeywordStatistics, error) {
	stats := &KeywordStatistics{}

	if err := r.db.Model(&models.Keyword{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Keyword{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	stats.Inactive = stats.Total - stats.Active

	return stats, nil
}

// keywordSortColumn maps a validated sort field to its column
func keywordSortColumn(sortBy string) string {
	switch sortBy {
	case "keyword", "updated_at":
		return sortBy
	default:
		return "created_at"
	}
}

// sortDirection maps a validated sort order to SQL, defaulting to DESC
func sortDirection(sortOrder string) string {
	if strings.EqualFold(sortOrder, "asc") {
		return "ASC"
	}
	return "DESC"
}
