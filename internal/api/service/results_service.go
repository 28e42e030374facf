package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/models"
	"github.com/Thiyagu2009/mindtales/internal/api/repository"
	"github.com/Thiyagu2009/mindtales/internal/cache"
	"github.com/Thiyagu2009/mindtales/internal/metrics"
)

// DefaultResultsLimit is used when the caller gives no usable limit.
const DefaultResultsLimit = 3

// ResultsService is the ranking aggregator: it computes the day's
// leaderboard from the vote ledger joined against published menus.
type ResultsService interface {
	TopMenus(ctx context.Context, day string, limit int) ([]dto.RankedMenuResponse, error)
}

type resultsService struct {
	voteRepo  repository.VoteRepository
	menuRepo  repository.MenuRepository
	cache     *cache.ResultsCache
	collector *metrics.Collector
}

func NewResultsService(
	voteRepo repository.VoteRepository,
	menuRepo repository.MenuRepository,
	resultsCache *cache.ResultsCache,
	collector *metrics.Collector,
) ResultsService {
	return &resultsService{
		voteRepo:  voteRepo,
		menuRepo:  menuRepo,
		cache:     resultsCache,
		collector: collector,
	}
}

// TopMenus returns the day's menus ordered by total points descending,
// menu id ascending on ties, truncated to limit. An empty day yields an
// empty slice, not an error. The full board is cached per day and the
// limit applied after, so one cache entry serves every limit.
func (s *resultsService) TopMenus(ctx context.Context, day string, limit int) ([]dto.RankedMenuResponse, error) {
	s.collector.RecordResultsRequest()

	if limit <= 0 {
		limit = DefaultResultsLimit
	}

	if payload, ok := s.cache.Get(ctx, day); ok {
		var board []dto.RankedMenuResponse
		if err := json.Unmarshal(payload, &board); err == nil {
			return truncate(board, limit), nil
		}
	}

	totals, err := s.voteRepo.TotalsForDay(day, 0)
	if err != nil {
		return nil, fmt.Errorf("aggregating votes for %s: %w", day, err)
	}

	board := make([]dto.RankedMenuResponse, 0, len(totals))
	if len(totals) > 0 {
		menuIDs := make([]string, 0, len(totals))
		for _, total := range totals {
			menuIDs = append(menuIDs, total.MenuID)
		}

		menus, err := s.menuRepo.GetByIDs(menuIDs)
		if err != nil {
			return nil, fmt.Errorf("loading ranked menus: %w", err)
		}

		byID := make(map[string]*models.Menu, len(menus))
		for i := range menus {
			byID[menus[i].ID] = &menus[i]
		}

		// Compose in the aggregation's order
		for _, total := range totals {
			menu, ok := byID[total.MenuID]
			if !ok {
				continue
			}
			board = append(board, dto.RankedMenuResponse{
				Menu:        *dto.FromModelToMenuResponse(menu),
				TotalPoints: total.TotalPoints,
			})
		}
	}

	if payload, err := json.Marshal(board); err == nil {
		s.cache.Set(ctx, day, payload)
	}

	return truncate(board, limit), nil
}

func truncate(board []dto.RankedMenuResponse, limit int) []dto.RankedMenuResponse {
	if len(board) > limit {
		return board[:limit]
	}
	return board
}
