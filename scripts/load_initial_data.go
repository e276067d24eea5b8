package main

import (
	"deal-tracker-backend/internal/config"
	"deal-tracker-backend/internal/database"
	"deal-tracker-backend/internal/database/models"
	"deal-tracker-backend/internal/service"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type KeywordData struct {
	Keyword  string `yaml:"keyword"`
	IsActive *bool  `yaml:"is_active,omitempty"`
}

type SubredditData struct {
	Name string `yaml:"name"`
}

type PostData struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Links       []string `yaml:"links,omitempty"`
}

// File structures
type KeywordsFile struct {
	Keywords []KeywordData `yaml:"keywords"`
}

type SubredditsFile struct {
	Subreddits []SubredditData `yaml:"subreddits"`
}

type PostsFile struct {
	Posts []PostData `yaml:"posts"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	keywords, err := loadKeywords(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load keywords: %w", err)
	}

	subreddits, err := loadSubreddits(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load subreddits: %w", err)
	}

	posts, err := loadPosts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	created, skipped := 0, 0
	for _, data := range keywords {
		ok, err := createKeyword(db, data)
		if err != nil {
			return fmt.Errorf("failed to create keyword %q: %w", data.Keyword, err)
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}

	for _, data := range subreddits {
		ok, err := createSubreddit(db, data)
		if err != nil {
			return fmt.Errorf("failed to create subreddit %q: %w", data.Name, err)
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}

	for _, data := range posts {
		ok, err := createPost(db, data)
		if err != nil {
			return fmt.Errorf("failed to create post %q: %w", data.Title, err)
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}

	log.Printf("Seed summary: %d created, %d already present", created, skipped)
	return nil
}

func loadKeywords(dataDir string) ([]KeywordData, error) {
	path := filepath.Join(dataDir, "keywords.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No keywords file at %s, skipping", path)
			return nil, nil
		}
		return nil, err
	}

	var file KeywordsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Keywords, nil
}

func loadSubreddits(dataDir string) ([]SubredditData, error) {
	path := filepath.Join(dataDir, "subreddits.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No subreddits file at %s, skipping", path)
			return nil, nil
		}
		return nil, err
	}

	var file SubredditsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Subreddits, nil
}

func loadPosts(dataDir string) ([]PostData, error) {
	path := filepath.Join(dataDir, "posts.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No posts file at %s, skipping", path)
			return nil, nil
		}
		return nil, err
	}

	var file PostsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Posts, nil
}

// createKeyword inserts a keyword unless one with the same text exists.
// Returns true when a row was created.
func createKeyword(db *gorm.DB, data KeywordData) (bool, error) {
	value := strings.TrimSpace(data.Keyword)
	if value == "" {
		return false, fmt.Errorf("keyword must not be empty")
	}

	var count int64
	if err := db.Model(&models.Keyword{}).Where("keyword = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}
	keyword := &models.Keyword{Keyword: value, IsActive: isActive}
	if err := db.Create(keyword).Error; err != nil {
		return false, err
	}
	return true, nil
}

// createSubreddit inserts a subreddit under its normalized name unless it
// already exists. Returns true when a row was created.
func createSubreddit(db *gorm.DB, data SubredditData) (bool, error) {
	name := service.NormalizeSubredditName(data.Name)
	if name == "" {
		return false, fmt.Errorf("subreddit name must not be empty")
	}

	var count int64
	if err := db.Model(&models.Subreddit{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if err := db.Create(&models.Subreddit{Name: name}).Error; err != nil {
		return false, err
	}
	return true, nil
}

// createPost inserts a post unless one with the same title exists.
// Returns true when a row was created.
func createPost(db *gorm.DB, data PostData) (bool, error) {
	title := strings.TrimSpace(data.Title)
	if title == "" {
		return false, fmt.Errorf("post title must not be empty")
	}

	var count int64
	if err := db.Model(&models.Post{}).Where("title = ?", title).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	post := &models.Post{
		Title: title,
		Links: models.LinkList(data.Links),
	}
	if description := strings.TrimSpace(data.Description); description != "" {
		post.Description = &description
	}
	if post.Links == nil {
		post.Links = models.LinkList{}
	}
	if err := db.Create(post).Error; err != nil {
		return false, err
	}
	return true, nil
}
