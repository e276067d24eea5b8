package service

import (
	"deal-tracker-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// KeywordServiceInterface defines the interface for keyword service
type KeywordServiceInterface interface {
	CreateKeyword(req *CreateKeywordRequest) (*KeywordResponse, error)
	GetKeywordByID(id uint) (*KeywordResponse, error)
	GetAllKeywords(query *KeywordQuery) (*KeywordListResponse, error)
	UpdateKeyword(id uint, req *UpdateKeywordRequest) (*KeywordResponse, error)
	DeleteKeyword(id uint) error
	SearchKeywords(query string, limit int) ([]KeywordResponse, error)
	GetStatistics() (*repository.KeywordStatistics, error)
}

// SubredditServiceInterface defines the interface for subreddit service
type SubredditServiceInterface interface {
	CreateSubreddit(req *CreateSubredditRequest) (*SubredditResponse, error)
	GetSubredditByID(id uint) (*SubredditResponse, error)
	GetSubredditByName(name string) (*SubredditResponse, error)
	GetAllSubreddits(query *SubredditQuery) (*SubredditListResponse, error)
	UpdateSubreddit(id uint, req *UpdateSubredditRequest) (*SubredditResponse, error)
	DeleteSubreddit(id uint) error
	SearchSubreddits(query string, limit int) ([]SubredditResponse, error)
	GetStatistics() (*repository.SubredditStatistics, error)
}

// PostServiceInterface defines the interface for post service
type PostServiceInterface interface {
	CreatePost(req *CreatePostRequest) (*PostResponse, error)
	GetPostByID(id uint) (*PostResponse, error)
	GetAllPosts(query *PostQuery) (*PostListResponse, error)
	UpdatePost(id uint, req *UpdatePostRequest) (*PostResponse, error)
	DeletePost(id uint) error
	SearchPosts(query string, limit int) ([]PostResponse, error)
	GetStatistics() (*repository.PostStatistics, error)
}
