package testutils

import (
	"fmt"

	"deal-tracker-backend/internal/database/models"
)

// KeywordFactory provides methods to create test Keyword data
type KeywordFactory struct {
	counter int
}

// Create creates a test Keyword with a unique default value
func (f *KeywordFactory) Create() *models.Keyword {
	f.counter++
	return &models.Keyword{
		Keyword:  fmt.Sprintf("gaming laptop %d", f.counter),
		IsActive: true,
	}
}

// WithKeyword sets a custom keyword text
func (f *KeywordFactory) WithKeyword(value string) *models.Keyword {
	keyword := f.Create()
	keyword.Keyword = value
	return keyword
}

// Inactive creates a deactivated keyword
func (f *KeywordFactory) Inactive() *models.Keyword {
	keyword := f.Create()
	keyword.IsActive = false
	return keyword
}

// SubredditFactory provides methods to create test Subreddit data
type SubredditFactory struct {
	counter int
}

// Create creates a test Subreddit with a unique normalized name
func (f *SubredditFactory) Create() *models.Subreddit {
	f.counter++
	return &models.Subreddit{
		Name: fmt.Sprintf("buildapcsales%d", f.counter),
	}
}

// WithName sets a custom name (callers are responsible for normalization)
func (f *SubredditFactory) WithName(name string) *models.Subreddit {
	subreddit := f.Create()
	subreddit.Name = name
	return subreddit
}

// PostFactory provides methods to create test Post data
type PostFactory struct {
	counter int
}

// Create creates a test Post with a unique title and no links
func (f *PostFactory) Create() *models.Post {
	f.counter++
	description := "A great deal on a gaming laptop spotted this morning"
	return &models.Post{
		Title:       fmt.Sprintf("Gaming laptop deal %d", f.counter),
		Description: &description,
		Links:       models.LinkList{},
	}
}

// WithTitle sets a custom title
func (f *PostFactory) WithTitle(title string) *models.Post {
	post := f.Create()
	post.Title = title
	return post
}

// WithLinks sets the links list
func (f *PostFactory) WithLinks(links ...string) *models.Post {
	post := f.Create()
	post.Links = models.LinkList(links)
	return post
}

// WithoutDescription clears the description
func (f *PostFactory) WithoutDescription() *models.Post {
	post := f.Create()
	post.Description = nil
	return post
}

// FactorySet bundles all entity factories
type FactorySet struct {
	Keyword   *KeywordFactory
	Subreddit *SubredditFactory
	Post      *PostFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Keyword:   &KeywordFactory{},
		Subreddit: &SubredditFactory{},
		Post:      &PostFactory{},
	}
}
