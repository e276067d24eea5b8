//go:build integration
// +build integration

package repository

import (
	"testing"

	"deal-tracker-backend/internal/database/models"
	"deal-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SubredditRepositoryTestSuite tests the SubredditRepository
type SubredditRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SubredditRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SubredditRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSubredditRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SubredditRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SubredditRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SubredditRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a subreddit directly via gorm
func (suite *SubredditRepositoryTestSuite) createSubreddit(name string) *models.Subreddit {
	s := &models.Subreddit{Name: name}
	err := suite.baseTestSuite.DB.Create(s).Error
	suite.NoError(err)
	return s
}

// TestCreateAndGetByID tests creating a subreddit and retrieving it by ID
func (suite *SubredditRepositoryTestSuite) TestCreateAndGetByID() {
	subreddit := suite.factories.Subreddit.WithName("buildapcsales")

	err := suite.repo.Create(subreddit)
	suite.NoError(err)
	suite.NotZero(subreddit.ID)

	retrieved, err := suite.repo.GetByID(subreddit.ID)
	suite.NoError(err)
	suite.Equal("buildapcsales", retrieved.Name)
}

// TestGetByName tests exact-name lookup
func (suite *SubredditRepositoryTestSuite) TestGetByName() {
	created := suite.createSubreddit("gamedeals")

	retrieved, err := suite.repo.GetByName("gamedeals")
	suite.NoError(err)
	suite.Equal(created.ID, retrieved.ID)

	subreddit, err := suite.repo.GetByName("missing")
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(subreddit)
}

// TestExists tests the existence check
func (suite *SubredditRepositoryTestSuite) TestExists() {
	suite.createSubreddit("frugalmalefashion")

	exists, err := suite.repo.Exists("frugalmalefashion")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists("other")
	suite.NoError(err)
	suite.False(exists)
}

// TestListDefaultAlphabetical tests listing with alphabetical ordering
func (suite *SubredditRepositoryTestSuite) TestListDefaultAlphabetical() {
	suite.createSubreddit("gamedeals")
	suite.createSubreddit("buildapcsales")
	suite.createSubreddit("frugalmalefashion")

	subreddits, total, err := suite.repo.List(ListOptions{
		SortBy:    "name",
		SortOrder: "asc",
		Limit:     10,
	})

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(subreddits, 3)
	suite.Equal("buildapcsales", subreddits[0].Name)
	suite.Equal("frugalmalefashion", subreddits[1].Name)
	suite.Equal("gamedeals", subreddits[2].Name)
}

// TestListWithSearch tests substring filtering on the name
func (suite *SubredditRepositoryTestSuite) TestListWithSearch() {
	suite.createSubreddit("gamedeals")
	suite.createSubreddit("buildapcsales")

	subreddits, total, err := suite.repo.List(ListOptions{
		Search:    "deal",
		SortBy:    "name",
		SortOrder: "asc",
		Limit:     10,
	})

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(subreddits, 1)
	suite.Equal("gamedeals", subreddits[0].Name)
}

// TestSearchOrdersByName tests that search results come back alphabetically
func (suite *SubredditRepositoryTestSuite) TestSearchOrdersByName() {
	suite.createSubreddit("gamedeals")
	suite.createSubreddit("appledeals")
	suite.createSubreddit("buildapcsales")

	subreddits, err := suite.repo.Search("deal", 10)
	suite.NoError(err)
	suite.Len(subreddits, 2)
	suite.Equal("appledeals", subreddits[0].Name)
	suite.Equal("gamedeals", subreddits[1].Name)
}

// TestUpdate tests saving a modified subreddit
func (suite *SubredditRepositoryTestSuite) TestUpdate() {
	subreddit := suite.createSubreddit("gamedeals")

	subreddit.Name = "gamedealsmeta"
	err := suite.repo.Update(subreddit)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(subreddit.ID)
	suite.NoError(err)
	suite.Equal("gamedealsmeta", retrieved.Name)
}

// TestDelete tests deleting a subreddit and the rows-affected report
func (suite *SubredditRepositoryTestSuite) TestDelete() {
	subreddit := suite.createSubreddit("gamedeals")

	deleted, err := suite.repo.Delete(subreddit.ID)
	suite.NoError(err)
	suite.True(deleted)

	deleted, err = suite.repo.Delete(subreddit.ID)
	suite.NoError(err)
	suite.False(deleted)
}

// TestGetStatistics tests the total count aggregate
func (suite *SubredditRepositoryTestSuite) TestGetStatistics() {
	suite.createSubreddit("gamedeals")
	suite.createSubreddit("buildapcsales")

	stats, err := suite.repo.GetStatistics()
	suite.NoError(err)
	suite.Equal(int64(2), stats.Total)
}

// TestUniqueConstraint tests that the database rejects duplicate names
func (suite *SubredditRepositoryTestSuite) TestUniqueConstraint() {
	suite.createSubreddit("gamedeals")

	err := suite.repo.Create(&models.Subreddit{Name: "gamedeals"})
	suite.Error(err)
}

// Run the test suite
func TestSubredditRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SubredditRepositoryTestSuite))
}
