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

// PostHandlerTestSuite defines the test suite for PostHandler
type PostHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockPostSv *mocks.MockPostServiceInterface
	handler    *handlers.PostHandler
	router     *gin.Engine
}

func (suite *PostHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPostSv = mocks.NewMockPostServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPostHandler(suite.mockPostSv)

	suite.router = gin.New()
	suite.router.POST("/posts", suite.handler.CreatePost)
	suite.router.GET("/posts", suite.handler.ListPosts)
	suite.router.GET("/posts/search", suite.handler.SearchPosts)
	suite.router.GET("/posts/statistics", suite.handler.GetStatistics)
	suite.router.GET("/posts/:id", suite.handler.GetPost)
	suite.router.PUT("/posts/:id", suite.handler.UpdatePost)
	suite.router.DELETE("/posts/:id", suite.handler.DeletePost)
}

func (suite *PostHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PostHandlerTestSuite) TestCreatePost_Success() {
	resp := &service.PostResponse{
		ID:        1,
		Title:     "GPU price drop",
		Links:     []string{"https://example.com/deal"},
		HasLinks:  true,
		LinkCount: 1,
		Preview:   "GPU price drop",
	}
	suite.mockPostSv.EXPECT().
		CreatePost(&service.CreatePostRequest{
			Title: "GPU price drop",
			Links: []string{"https://example.com/deal"},
		}).
		Return(resp, nil)

	body := `{"title":"GPU price drop","links":["https://example.com/deal"]}`
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.PostResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), got.HasLinks)
	assert.Equal(suite.T(), 1, got.LinkCount)
}

func (suite *PostHandlerTestSuite) TestCreatePost_DuplicateTitle_Conflict() {
	suite.mockPostSv.EXPECT().
		CreatePost(gomock.Any()).
		Return(nil, apperrors.ErrPostExists)

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"GPU price drop"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *PostHandlerTestSuite) TestGetPost_NotFound() {
	suite.mockPostSv.EXPECT().
		GetPostByID(uint(999)).
		Return(nil, apperrors.ErrPostNotFound)

	req := httptest.NewRequest(http.MethodGet, "/posts/999", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestListPosts_HasLinksFilter() {
	hasLinks := true
	resp := &service.PostListResponse{
		Posts: []service.PostResponse{},
		Total: 0,
		Page:  1,
		Limit: 20,
		Pages: 0,
	}
	suite.mockPostSv.EXPECT().
		GetAllPosts(&service.PostQuery{HasLinks: &hasLinks}).
		Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/posts?has_links=true", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_ValidationError_BadRequest() {
	suite.mockPostSv.EXPECT().
		UpdatePost(uint(1), gomock.Any()).
		Return(nil, apperrors.NewValidationError("links", "failed on the 'url' rule"))

	body := `{"links":["not a url"]}`
	req := httptest.NewRequest(http.MethodPut, "/posts/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PostHandlerTestSuite) TestDeletePost_Success() {
	suite.mockPostSv.EXPECT().DeletePost(uint(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/posts/1", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *PostHandlerTestSuite) TestSearchPosts_Success() {
	suite.mockPostSv.EXPECT().
		SearchPosts("gpu", 10).
		Return([]service.PostResponse{{ID: 1, Title: "GPU price drop"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/posts/search?q=gpu&limit=10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.PostResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
}

func (suite *PostHandlerTestSuite) TestGetStatistics_Success() {
	suite.mockPostSv.EXPECT().
		GetStatistics().
		Return(&repository.PostStatistics{
			Total:                10,
			WithLinks:            6,
			WithoutLinks:         4,
			AvgDescriptionLength: 120,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/posts/statistics", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got repository.PostStatistics
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(10), got.Total)
	assert.Equal(suite.T(), 120, got.AvgDescriptionLength)
}

// Run the test suite
func TestPostHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
