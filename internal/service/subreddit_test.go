package service_test

import (
	"testing"

	"deal-tracker-backend/internal/database/models"
	apperrors "deal-tracker-backend/internal/errors"
	"deal-tracker-backend/internal/mocks"
	"deal-tracker-backend/internal/repository"
	"deal-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SubredditServiceTestSuite defines the test suite for SubredditService
type SubredditServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockSubredditRepositoryInterface
	subredditService *service.SubredditService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *SubredditServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSubredditRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.subredditService = service.NewSubredditService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *SubredditServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestNormalizeSubredditName tests the name normalization rules directly
func (suite *SubredditServiceTestSuite) TestNormalizeSubredditName() {
	cases := map[string]string{
		"  GamingDeals  ": "gamingdeals",
		"r/Gaming":        "gaming",
		"R/BuildaPCSales": "buildapcsales",
		"r/ r/nested":     "r/nested", // only one leading prefix is stripped
		"frugalmalefashion": "frugalmalefashion",
	}

	for input, expected := range cases {
		assert.Equal(suite.T(), expected, service.NormalizeSubredditName(input), "input %q", input)
	}
}

// TestNormalizeSubredditNameIdempotent tests that normalizing an already
// normalized value yields the same value
func (suite *SubredditServiceTestSuite) TestNormalizeSubredditNameIdempotent() {
	for _, input := range []string{"  GamingDeals  ", "r/Gaming", "buildapcsales"} {
		once := service.NormalizeSubredditName(input)
		assert.Equal(suite.T(), once, service.NormalizeSubredditName(once))
	}
}

// TestCreateSubredditNormalizesName tests that the stored name is the
// normalized form of the input
func (suite *SubredditServiceTestSuite) TestCreateSubredditNormalizesName() {
	req := &service.CreateSubredditRequest{Name: "  r/GamingDeals  "}

	suite.mockRepo.EXPECT().
		Exists("gamingdeals").
		Return(false, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(subreddit *models.Subreddit) error {
			assert.Equal(suite.T(), "gamingdeals", subreddit.Name)
			subreddit.ID = 1
			return nil
		}).
		Times(1)

	response, err := suite.subredditService.CreateSubreddit(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "gamingdeals", response.Name)
}

// TestCreateSubredditDuplicateAfterNormalization tests that two inputs
// normalizing to the same name collide
func (suite *SubredditServiceTestSuite) TestCreateSubredditDuplicateAfterNormalization() {
	req := &service.CreateSubredditRequest{Name: "r/Gaming"}

	suite.mockRepo.EXPECT().
		Exists("gaming").
		Return(true, nil).
		Times(1)

	response, err := suite.subredditService.CreateSubreddit(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSubredditExists)
}

// TestCreateSubredditValidationError tests that an input that normalizes to
// empty fails validation before any repository call
func (suite *SubredditServiceTestSuite) TestCreateSubredditValidationError() {
	req := &service.CreateSubredditRequest{Name: "  r/  "}

	response, err := suite.subredditService.CreateSubreddit(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetSubredditByName tests retrieval via the normalized name
func (suite *SubredditServiceTestSuite) TestGetSubredditByName() {
	stored := &models.Subreddit{ID: 3, Name: "buildapcsales"}

	suite.mockRepo.EXPECT().
		GetByName("buildapcsales").
		Return(stored, nil).
		Times(1)

	response, err := suite.subredditService.GetSubredditByName("r/BuildaPCSales")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(3), response.ID)
	assert.Equal(suite.T(), "buildapcsales", response.Name)
}

// TestGetSubredditByNameNotFound tests lookup of a missing name
func (suite *SubredditServiceTestSuite) TestGetSubredditByNameNotFound() {
	suite.mockRepo.EXPECT().
		GetByName("missing").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.subredditService.GetSubredditByName("missing")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSubredditNotFound)
}

// TestGetAllSubredditsDefaults tests the alphabetical default ordering
func (suite *SubredditServiceTestSuite) TestGetAllSubredditsDefaults() {
	suite.mockRepo.EXPECT().
		List(repository.ListOptions{
			SortBy:    "name",
			SortOrder: "asc",
			Limit:     20,
			Offset:    0,
		}).
		Return([]models.Subreddit{{ID: 1, Name: "buildapcsales"}}, int64(1), nil).
		Times(1)

	response, err := suite.subredditService.GetAllSubreddits(&service.SubredditQuery{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Equal(suite.T(), 1, response.Pages)
	assert.Len(suite.T(), response.Subreddits, 1)
}

// TestUpdateSubredditNormalizesAndChecksDuplicate tests that the patch value
// is normalized before the uniqueness check
func (suite *SubredditServiceTestSuite) TestUpdateSubredditNormalizesAndChecksDuplicate() {
	newName := "r/Gaming"
	stored := &models.Subreddit{ID: 1, Name: "gamingdeals"}

	suite.mockRepo.EXPECT().
		GetByID(uint(1)).
		Return(stored, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Exists("gaming").
		Return(false, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(subreddit *models.Subreddit) error {
			assert.Equal(suite.T(), "gaming", subreddit.Name)
			return nil
		}).
		Times(1)

	response, err := suite.subredditService.UpdateSubreddit(1, &service.UpdateSubredditRequest{Name: &newName})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "gaming", response.Name)
}

// TestUpdateSubredditUnchangedNameSkipsDuplicateCheck tests that a patch
// normalizing to the stored name performs no uniqueness check
func (suite *SubredditServiceTestSuite) TestUpdateSubredditUnchangedNameSkipsDuplicateCheck() {
	sameName := "r/GamingDeals"
	stored := &models.Subreddit{ID: 1, Name: "gamingdeals"}

	suite.mockRepo.EXPECT().
		GetByID(uint(1)).
		Return(stored, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.subredditService.UpdateSubreddit(1, &service.UpdateSubredditRequest{Name: &sameName})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "gamingdeals", response.Name)
}

// TestDeleteSubredditNotFound tests deleting a missing subreddit
func (suite *SubredditServiceTestSuite) TestDeleteSubredditNotFound() {
	suite.mockRepo.EXPECT().
		GetByID(uint(999)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.subredditService.DeleteSubreddit(999)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSubredditNotFound)
}

// TestSearchSubredditsNormalizesQuery tests that the search query is
// normalized like a name
func (suite *SubredditServiceTestSuite) TestSearchSubredditsNormalizesQuery() {
	suite.mockRepo.EXPECT().
		Search("gaming", 5).
		Return([]models.Subreddit{{ID: 1, Name: "gamingdeals"}}, nil).
		Times(1)

	responses, err := suite.subredditService.SearchSubreddits("  r/Gaming  ", 5)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
}

// TestSearchSubredditsEmptyQuery tests that a query normalizing to empty is
// rejected before reaching the repository
func (suite *SubredditServiceTestSuite) TestSearchSubredditsEmptyQuery() {
	responses, err := suite.subredditService.SearchSubreddits("r/", 5)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptySearchQuery)
}

// TestGetStatistics tests the statistics passthrough
func (suite *SubredditServiceTestSuite) TestGetStatistics() {
	suite.mockRepo.EXPECT().
		GetStatistics().
		Return(&repository.SubredditStatistics{Total: 12}, nil).
		Times(1)

	stats, err := suite.subredditService.GetStatistics()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(12), stats.Total)
}

// TestSubredditServiceTestSuite runs the test suite
func TestSubredditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubredditServiceTestSuite))
}
