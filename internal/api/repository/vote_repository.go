package repository

import (
	"errors"
	"fmt"

	"github.com/Thiyagu2009/mindtales/internal/api/models"

	"gorm.io/gorm"
)

// ErrMenuDayMismatch is returned when a vote in a batch references a
// menu whose date is not the day the vote is being cast on. The whole
// batch is rolled back.
var ErrMenuDayMismatch = errors.New("menu is not for the voting day")

// MenuTotal is one aggregated leaderboard row, menu id plus the summed
// points of today's votes for it.
type MenuTotal struct {
	MenuID      string `json:"menu_id"`
	TotalPoints int    `json:"total_points"`
}

// VoteRepository is the ledger of vote sessions and their votes. Votes
// are written once, in a single transaction per session, and never
// updated or deleted.
type VoteRepository interface {
	ExistsForDay(userID, day string) (bool, error)
	CreateSession(session *models.VoteSession, votes []models.Vote) error
	TotalsForDay(day string, limit int) ([]MenuTotal, error)
}

// voteRepository is the GORM implementation of VoteRepository
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new instance of VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// ExistsForDay reports whether the voter already has a session for the
// day. Callers use this as a fast pre-check only; the unique index on
// vote_sessions is what actually decides a race.
func (r *voteRepository) ExistsForDay(userID, day string) (bool, error) {
	var count int64
	err := r.db.Model(&models.VoteSession{}).
		Where("user_id = ? AND vote_day = ?", userID, day).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateSession writes one session and its votes atomically. Every
// vote's menu must be dated on the session's vote day; a mismatch
// aborts the transaction so no partial batch is ever left behind.
// A concurrent duplicate session surfaces as gorm.ErrDuplicatedKey.
func (r *voteRepository) CreateSession(session *models.VoteSession, votes []models.Vote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		menuIDs := make([]string, 0, len(votes))
		for _, vote := range votes {
			menuIDs = append(menuIDs, vote.MenuID)
		}

		var menus []models.Menu
		if err := tx.Select("id", "date").Where("id IN ?", menuIDs).Find(&menus).Error; err != nil {
			return err
		}

		dates := make(map[string]string, len(menus))
		for _, menu := range menus {
			dates[menu.ID] = menu.Date
		}

		for _, vote := range votes {
			date, ok := dates[vote.MenuID]
			if !ok {
				return fmt.Errorf("%w: menu %s not found", ErrMenuDayMismatch, vote.MenuID)
			}
			if date != session.VoteDay {
				return fmt.Errorf("%w: menu %s is for %s", ErrMenuDayMismatch, vote.MenuID, date)
			}
		}

		if err := tx.Create(session).Error; err != nil {
			return err
		}

		for i := range votes {
			votes[i].SessionID = session.ID
			votes[i].UserID = session.UserID
			votes[i].VoteDay = session.VoteDay
		}
		return tx.Create(&votes).Error
	})
}

// TotalsForDay sums points per menu for the day's votes against the
// day's published menus: rank 1 is worth 3 points, rank 2 is worth 2,
// rank 3 is worth 1, anything else counts 0. Menus without points are
// dropped. Equal totals are ordered by menu id ascending so the
// leaderboard is deterministic. A limit <= 0 returns the full board.
func (r *voteRepository) TotalsForDay(day string, limit int) ([]MenuTotal, error) {
	query := `
		SELECT votes.menu_id AS menu_id,
		       SUM(CASE votes.rank WHEN 1 THEN 3 WHEN 2 THEN 2 WHEN 3 THEN 1 ELSE 0 END) AS total_points
		FROM votes
		JOIN menus ON menus.id = votes.menu_id
		WHERE votes.vote_day = ?
		  AND menus.date = ?
		  AND menus.is_published = ?
		GROUP BY votes.menu_id
		HAVING SUM(CASE votes.rank WHEN 1 THEN 3 WHEN 2 THEN 2 WHEN 3 THEN 1 ELSE 0 END) > 0
		ORDER BY total_points DESC, menu_id ASC`

	args := []interface{}{day, day, true}
	if limit > 0 {
		query += "\n\t\tLIMIT ?"
		args = append(args, limit)
	}

	var totals []MenuTotal
	if err := r.db.Raw(query, args...).Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
