package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteSession is one submission by one voter on one calendar day. The
// unique index on (user_id, vote_day) is the storage-level guarantee
// that a voter gets a single session per day: of two concurrent
// submissions, the second insert fails with a duplicate-key error.
type VoteSession struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_vote_sessions_user_day" json:"user_id"`
	VoteDay string `gorm:"size:10;not null;uniqueIndex:idx_vote_sessions_user_day" json:"vote_day"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at"`

	// Associations
	User  User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Votes []Vote `json:"votes,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate hook to set UUID before creating a VoteSession
func (s *VoteSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

func (VoteSession) TableName() string {
	return "vote_sessions"
}

// Vote is immutable once created; there is no update or delete path.
type Vote struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	SessionID string `gorm:"type:uuid;not null;index" json:"session_id"`
	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	MenuID    string `gorm:"type:uuid;not null;index" json:"menu_id"`
	Rank      int    `gorm:"not null;check:rank >= 1 AND rank <= 3" json:"rank"` // 1 = best
	VoteDay   string `gorm:"size:10;not null;index" json:"vote_day"`             // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at"`

	// Associations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Menu Menu `json:"-" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE;"`
}

// Points converts the stated rank to awarded points (1st=3, 2nd=2, 3rd=1).
func (v *Vote) Points() int {
	return 4 - v.Rank
}

// BeforeCreate hook to set UUID before creating a Vote
func (v *Vote) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}

func (Vote) TableName() string {
	return "votes"
}
