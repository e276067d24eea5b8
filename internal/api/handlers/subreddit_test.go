package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deal-tracker-backend/internal/api/handlers"
	apperrors "deal-tracker-backend/internal/errors"
	"deal-tracker-backend/internal/mocks"
	"deal-tracker-backend/internal/repository"
	"deal-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SubredditHandlerTestSuite defines the test suite for SubredditHandler
type SubredditHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSubredditSv *mocks.MockSubredditServiceInterface
	handler         *handlers.SubredditHandler
	router          *gin.Engine
}

func (suite *SubredditHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSubredditSv = mocks.NewMockSubredditServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSubredditHandler(suite.mockSubredditSv)

	suite.router = gin.New()
	suite.router.POST("/subreddits", suite.handler.CreateSubreddit)
	suite.router.GET("/subreddits", suite.handler.ListSubreddits)
	suite.router.GET("/subreddits/search", suite.handler.SearchSubreddits)
	suite.router.GET("/subreddits/statistics", suite.handler.GetStatistics)
	suite.router.GET("/subreddits/by-name/:name", suite.handler.GetSubredditByName)
	suite.router.GET("/subreddits/:id", suite.handler.GetSubreddit)
	suite.router.PUT("/subreddits/:id", suite.handler.UpdateSubreddit)
	suite.router.DELETE("/subreddits/:id", suite.handler.DeleteSubreddit)
}

func (suite *SubredditHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubredditHandlerTestSuite) TestCreateSubreddit_Success() {
	resp := &service.SubredditResponse{ID: 1, Name: "gamingdeals"}
	suite.mockSubredditSv.EXPECT().
		CreateSubreddit(&service.CreateSubredditRequest{Name: "r/GamingDeals"}).
		Return(resp, nil)

	req := httptest.NewRequest(http.MethodPost, "/subreddits", strings.NewReader(`{"name":"r/GamingDeals"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.SubredditResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "gamingdeals", got.Name)
}

func (suite *SubredditHandlerTestSuite) TestCreateSubreddit_Duplicate_Conflict() {
	suite.mockSubredditSv.EXPECT().
		CreateSubreddit(gomock.Any()).
		Return(nil, apperrors.ErrSubredditExists)

	req := httptest.NewRequest(http.MethodPost, "/subreddits", strings.NewReader(`{"name":"gamingdeals"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *SubredditHandlerTestSuite) TestGetSubredditByName_Success() {
	resp := &service.SubredditResponse{ID: 3, Name: "buildapcsales"}
	suite.mockSubredditSv.EXPECT().
		GetSubredditByName("buildapcsales").
		Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/subreddits/by-name/buildapcsales", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SubredditResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(3), got.ID)
}

func (suite *SubredditHandlerTestSuite) TestGetSubredditByName_NotFound() {
	suite.mockSubredditSv.EXPECT().
		GetSubredditByName("missing").
		Return(nil, apperrors.ErrSubredditNotFound)

	req := httptest.NewRequest(http.MethodGet, "/subreddits/by-name/missing", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SubredditHandlerTestSuite) TestListSubreddits_Success() {
	resp := &service.SubredditListResponse{
		Subreddits: []service.SubredditResponse{{ID: 1, Name: "buildapcsales"}},
		Total:      1,
		Page:       1,
		Limit:      20,
		Pages:      1,
	}
	suite.mockSubredditSv.EXPECT().
		GetAllSubreddits(&service.SubredditQuery{SortBy: "name", SortOrder: "asc"}).
		Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/subreddits?sort_by=name&sort_order=asc", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SubredditHandlerTestSuite) TestUpdateSubreddit_Success() {
	newName := "gamingdeals"
	resp := &service.SubredditResponse{ID: 1, Name: "gamingdeals"}
	suite.mockSubredditSv.EXPECT().
		UpdateSubreddit(uint(1), &service.UpdateSubredditRequest{Name: &newName}).
		Return(resp, nil)

	req := httptest.NewRequest(http.MethodPut, "/subreddits/1", strings.NewReader(`{"name":"gamingdeals"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SubredditHandlerTestSuite) TestDeleteSubreddit_NotFound() {
	suite.mockSubredditSv.EXPECT().
		DeleteSubreddit(uint(999)).
		Return(apperrors.ErrSubredditNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/subreddits/999", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SubredditHandlerTestSuite) TestSearchSubreddits_Success() {
	suite.mockSubredditSv.EXPECT().
		SearchSubreddits("gaming", 20).
		Return([]service.SubredditResponse{{ID: 1, Name: "gamingdeals"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/subreddits/search?q=gaming", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SubredditHandlerTestSuite) TestGetStatistics_Success() {
	suite.mockSubredditSv.EXPECT().
		GetStatistics().
		Return(&repository.SubredditStatistics{Total: 12}, nil)

	req := httptest.NewRequest(http.MethodGet, "/subreddits/statistics", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got repository.SubredditStatistics
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(12), got.Total)
}

// Run the test suite
func TestSubredditHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubredditHandlerTestSuite))
}
