package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/models"
	"github.com/Thiyagu2009/mindtales/internal/api/repository"
	"github.com/Thiyagu2009/mindtales/internal/cache"
	"github.com/Thiyagu2009/mindtales/internal/metrics"

	"gorm.io/gorm"
)

var (
	// ErrAlreadyVoted: the voter already has a session for the day
	ErrAlreadyVoted = errors.New("already voted today")
	// ErrInvalidMenu: a referenced menu does not exist or is not for today
	ErrInvalidMenu = errors.New("invalid menu reference")
	// ErrMalformedSubmission: the payload shape breaks the protocol rules
	ErrMalformedSubmission = errors.New("malformed submission")
	// ErrPersistence: the vote batch could not be durably recorded
	ErrPersistence = errors.New("persistence failure")
)

// VotingService is the vote intake protocol. It picks a validation
// strategy from the client's app version, validates the raw submission
// against the menus and the ledger, and writes the session atomically.
type VotingService interface {
	Submit(ctx context.Context, voterID string, body []byte, appVersion, today string) ([]models.Vote, error)
}

type votingService struct {
	voteRepo  repository.VoteRepository
	menuRepo  repository.MenuRepository
	cache     *cache.ResultsCache
	collector *metrics.Collector
}

func NewVotingService(
	voteRepo repository.VoteRepository,
	menuRepo repository.MenuRepository,
	resultsCache *cache.ResultsCache,
	collector *metrics.Collector,
) VotingService {
	return &votingService{
		voteRepo:  voteRepo,
		menuRepo:  menuRepo,
		cache:     resultsCache,
		collector: collector,
	}
}

// submissionStrategy validates the raw payload of one protocol shape
// and turns it into ledger-ready votes (ranks only; session fields are
// filled at write time).
type submissionStrategy interface {
	validate(body []byte) ([]models.Vote, error)
}

// strategyFor selects the legacy single-choice strategy for clients
// below the ranked-voting version, the ranked strategy otherwise. The
// decision uses only the version signal, never the body shape.
func (s *votingService) strategyFor(appVersion string) submissionStrategy {
	if appVersion == "" {
		appVersion = DefaultAppVersion
	}
	if versionAtLeast(appVersion, rankedVotingVersion) {
		return &rankedStrategy{menuRepo: s.menuRepo}
	}
	return &legacyStrategy{menuRepo: s.menuRepo}
}

func (s *votingService) Submit(ctx context.Context, voterID string, body []byte, appVersion, today string) ([]models.Vote, error) {
	// Fast pre-check. The unique index on (user_id, vote_day) is the
	// source of truth; this only saves doomed submissions a round trip.
	voted, err := s.voteRepo.ExistsForDay(voterID, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if voted {
		s.collector.RecordVoteRejected("already_voted")
		return nil, ErrAlreadyVoted
	}

	votes, err := s.strategyFor(appVersion).validate(body)
	if err != nil {
		s.collector.RecordVoteRejected(rejectionReason(err))
		return nil, err
	}

	session := &models.VoteSession{UserID: voterID, VoteDay: today}
	if err := s.voteRepo.CreateSession(session, votes); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// Lost the race against a concurrent submission
			s.collector.RecordVoteRejected("already_voted")
			return nil, ErrAlreadyVoted
		case errors.Is(err, repository.ErrMenuDayMismatch):
			s.collector.RecordVoteRejected("invalid_menu")
			return nil, fmt.Errorf("%w: %v", ErrInvalidMenu, err)
		default:
			s.collector.RecordVoteRejected("persistence")
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	s.cache.Invalidate(ctx, today)
	s.collector.RecordVoteAccepted()
	slog.Info("vote session recorded", "session_id", session.ID, "voter_id", voterID, "votes", len(votes))

	return votes, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrMalformedSubmission):
		return "malformed"
	case errors.Is(err, ErrInvalidMenu):
		return "invalid_menu"
	default:
		return "other"
	}
}

// legacyStrategy handles the pre-2.0 payload: one menu reference,
// implicitly ranked 1st.
type legacyStrategy struct {
	menuRepo repository.MenuRepository
}

func (s *legacyStrategy) validate(body []byte) ([]models.Vote, error) {
	var req dto.LegacyVoteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}
	if req.Menu == "" {
		return nil, fmt.Errorf("%w: menu is required", ErrMalformedSubmission)
	}

	count, err := s.menuRepo.CountExisting([]string{req.Menu})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if count != 1 {
		return nil, fmt.Errorf("%w: menu %s does not exist", ErrInvalidMenu, req.Menu)
	}

	return []models.Vote{{MenuID: req.Menu, Rank: 1}}, nil
}

// rankedStrategy handles the 2.0+ payload: exactly three distinct
// menus carrying the points permutation {1,2,3}.
type rankedStrategy struct {
	menuRepo repository.MenuRepository
}

func (s *rankedStrategy) validate(body []byte) ([]models.Vote, error) {
	var req dto.RankedVoteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}

	if len(req.Votes) != 3 {
		return nil, fmt.Errorf("%w: exactly 3 votes required, got %d", ErrMalformedSubmission, len(req.Votes))
	}

	menuIDs := make([]string, 0, 3)
	seenMenus := make(map[string]bool, 3)
	seenPoints := make(map[int]bool, 3)
	for _, entry := range req.Votes {
		if entry.Menu == "" {
			return nil, fmt.Errorf("%w: every vote needs a menu", ErrMalformedSubmission)
		}
		if seenMenus[entry.Menu] {
			return nil, fmt.Errorf("%w: menus must be distinct", ErrMalformedSubmission)
		}
		seenMenus[entry.Menu] = true
		menuIDs = append(menuIDs, entry.Menu)

		if entry.Points < 1 || entry.Points > 3 || seenPoints[entry.Points] {
			return nil, fmt.Errorf("%w: points must be exactly 1, 2 and 3", ErrMalformedSubmission)
		}
		seenPoints[entry.Points] = true
	}

	count, err := s.menuRepo.CountExisting(menuIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if count != 3 {
		return nil, fmt.Errorf("%w: one or more menus do not exist", ErrInvalidMenu)
	}

	votes := make([]models.Vote, 0, 3)
	for _, entry := range req.Votes {
		votes = append(votes, models.Vote{MenuID: entry.Menu, Rank: 4 - entry.Points})
	}
	return votes, nil
}
