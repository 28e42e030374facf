package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/middleware"
	"github.com/Thiyagu2009/mindtales/internal/api/models"
	"github.com/Thiyagu2009/mindtales/internal/api/service"

	"github.com/gin-gonic/gin"
)

type VotingHandler struct {
	votingService  service.VotingService
	resultsService service.ResultsService
}

func NewVotingHandler(votingService service.VotingService, resultsService service.ResultsService) *VotingHandler {
	return &VotingHandler{
		votingService:  votingService,
		resultsService: resultsService,
	}
}

// RegisterRoutes registers the employee voting routes
func (h *VotingHandler) RegisterRoutes(router *gin.RouterGroup) {
	vote := router.Group("/employee/vote")
	{
		vote.POST("", h.Submit)
		vote.GET("/results", h.Results)
	}
}

// Submit handles POST /api/employee/vote. The body is read raw; the
// intake service interprets it according to the client's app version.
func (h *VotingHandler) Submit(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail(dto.CodeUnauthorized, "User not authenticated"))
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.CodeMalformedSubmission, "Could not read request body"))
		return
	}

	appVersion := c.GetString(middleware.AppVersionKey)
	today := models.Day(time.Now())

	votes, err := h.votingService.Submit(c.Request.Context(), userID.(string), body, appVersion, today)
	if err != nil {
		h.submitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Vote submitted successfully", gin.H{
		"votes_recorded": len(votes),
	}))
}

// submitError maps intake errors to statuses and machine-readable codes
func (h *VotingHandler) submitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMalformedSubmission):
		c.JSON(http.StatusBadRequest, dto.FailWith(dto.CodeMalformedSubmission, "Vote submission failed", err.Error()))
	case errors.Is(err, service.ErrInvalidMenu):
		c.JSON(http.StatusBadRequest, dto.FailWith(dto.CodeInvalidMenu, "Vote submission failed", err.Error()))
	case errors.Is(err, service.ErrAlreadyVoted):
		c.JSON(http.StatusConflict, dto.Fail(dto.CodeAlreadyVoted, "You have already voted today"))
	default:
		slog.Error("vote submission failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.Fail(dto.CodePersistenceFailure, "Vote submission failed"))
	}
}

// Results handles GET /api/employee/vote/results?limit=3
func (h *VotingHandler) Results(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultResultsLimit)))
	if err != nil || limit < 1 {
		limit = service.DefaultResultsLimit
	}

	today := models.Day(time.Now())
	board, err := h.resultsService.TopMenus(c.Request.Context(), today, limit)
	if err != nil {
		slog.Error("fetching voting results failed", "error", err, "day", today)
		c.JSON(http.StatusInternalServerError, dto.Fail(dto.CodeInternal, "Failed to fetch voting results"))
		return
	}

	// A day without votes is a normal state, not an error
	if len(board) == 0 {
		c.JSON(http.StatusOK, dto.OK("No voting results available for today", []dto.RankedMenuResponse{}))
		return
	}

	c.JSON(http.StatusOK, dto.OK("Voting results fetched successfully", board))
}
