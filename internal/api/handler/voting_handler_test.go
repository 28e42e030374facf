package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/handler"
	"github.com/Thiyagu2009/mindtales/internal/api/middleware"
	"github.com/Thiyagu2009/mindtales/internal/api/models"
	"github.com/Thiyagu2009/mindtales/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVotingService struct {
	mock.Mock
}

func (m *MockVotingService) Submit(ctx context.Context, voterID string, body []byte, appVersion, today string) ([]models.Vote, error) {
	args := m.Called(ctx, voterID, body, appVersion, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vote), args.Error(1)
}

type MockResultsService struct {
	mock.Mock
}

func (m *MockResultsService) TopMenus(ctx context.Context, day string, limit int) ([]dto.RankedMenuResponse, error) {
	args := m.Called(ctx, day, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RankedMenuResponse), args.Error(1)
}

func setupVotingRouter(votingSvc service.VotingService, resultsSvc service.ResultsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	api.Use(middleware.AppVersion())
	api.Use(func(c *gin.Context) {
		c.Set("userID", "voter-1")
		c.Set("role", models.UserTypeEmployee)
		c.Next()
	})

	h := handler.NewVotingHandler(votingSvc, resultsSvc)
	h.RegisterRoutes(api)
	return r
}

func postVote(r *gin.Engine, body, appVersion string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/employee/vote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if appVersion != "" {
		req.Header.Set("X-App-Version", appVersion)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSubmitVote_Success(t *testing.T) {
	votingSvc := new(MockVotingService)
	resultsSvc := new(MockResultsService)
	r := setupVotingRouter(votingSvc, resultsSvc)

	votingSvc.On("Submit", mock.Anything, "voter-1", mock.Anything, "2.0", mock.AnythingOfType("string")).
		Return([]models.Vote{{Rank: 1}, {Rank: 2}, {Rank: 3}}, nil)

	w := postVote(r, `{"votes":[]}`, "2.0")

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	votingSvc.AssertExpectations(t)
}

func TestSubmitVote_MissingVersionDefaultsToLegacy(t *testing.T) {
	votingSvc := new(MockVotingService)
	resultsSvc := new(MockResultsService)
	r := setupVotingRouter(votingSvc, resultsSvc)

	// The middleware fills in the default version when the header is absent
	votingSvc.On("Submit", mock.Anything, "voter-1", mock.Anything, service.DefaultAppVersion, mock.AnythingOfType("string")).
		Return([]models.Vote{{Rank: 1}}, nil)

	w := postVote(r, `{"menu":"some-menu"}`, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	votingSvc.AssertExpectations(t)
}

func TestSubmitVote_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"Malformed", service.ErrMalformedSubmission, http.StatusBadRequest, dto.CodeMalformedSubmission},
		{"InvalidMenu", service.ErrInvalidMenu, http.StatusBadRequest, dto.CodeInvalidMenu},
		{"AlreadyVoted", service.ErrAlreadyVoted, http.StatusConflict, dto.CodeAlreadyVoted},
		{"Persistence", service.ErrPersistence, http.StatusInternalServerError, dto.CodePersistenceFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			votingSvc := new(MockVotingService)
			resultsSvc := new(MockResultsService)
			r := setupVotingRouter(votingSvc, resultsSvc)

			votingSvc.On("Submit", mock.Anything, "voter-1", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tc.err)

			w := postVote(r, `{}`, "2.0")

			assert.Equal(t, tc.wantStatus, w.Code)
			resp := decodeEnvelope(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantCode, resp.Code)
		})
	}
}

func TestResults_Success(t *testing.T) {
	votingSvc := new(MockVotingService)
	resultsSvc := new(MockResultsService)
	r := setupVotingRouter(votingSvc, resultsSvc)

	board := []dto.RankedMenuResponse{
		{Menu: dto.MenuResponse{ID: "menu-1"}, TotalPoints: 7},
		{Menu: dto.MenuResponse{ID: "menu-2"}, TotalPoints: 4},
	}
	resultsSvc.On("TopMenus", mock.Anything, mock.AnythingOfType("string"), 3).Return(board, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employee/vote/results", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	resultsSvc.AssertExpectations(t)
}

func TestResults_LimitParsing(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"Explicit", "?limit=5", 5},
		{"Default", "", 3},
		{"NotANumber", "?limit=abc", 3},
		{"Zero", "?limit=0", 3},
		{"Negative", "?limit=-2", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			votingSvc := new(MockVotingService)
			resultsSvc := new(MockResultsService)
			r := setupVotingRouter(votingSvc, resultsSvc)

			resultsSvc.On("TopMenus", mock.Anything, mock.AnythingOfType("string"), tc.wantLimit).
				Return([]dto.RankedMenuResponse{}, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/employee/vote/results"+tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			resultsSvc.AssertExpectations(t)
		})
	}
}

func TestResults_EmptyBoardIsOK(t *testing.T) {
	votingSvc := new(MockVotingService)
	resultsSvc := new(MockResultsService)
	r := setupVotingRouter(votingSvc, resultsSvc)

	resultsSvc.On("TopMenus", mock.Anything, mock.AnythingOfType("string"), 3).
		Return([]dto.RankedMenuResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employee/vote/results", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "No voting results available for today", resp.Message)
}
