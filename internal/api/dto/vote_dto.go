package dto

// Vote submission shapes. Which one applies is decided by the client's
// X-App-Version header before the body is interpreted, so both are
// parsed from raw JSON inside the intake service rather than bound
// here by gin.

// LegacyVoteRequest is the pre-2.0 single-choice submission; the chosen
// menu is implicitly ranked 1st (3 points).
type LegacyVoteRequest struct {
	Menu string `json:"menu"`
}

// RankedVoteEntry is one {menu, points} pair of a ranked submission
type RankedVoteEntry struct {
	Menu   string `json:"menu"`
	Points int    `json:"points"`
}

// RankedVoteRequest is the 2.0+ submission: exactly three distinct
// menus carrying the points permutation {1,2,3}.
type RankedVoteRequest struct {
	Votes []RankedVoteEntry `json:"votes"`
}

// RankedMenuResponse is one leaderboard row of the day's results
type RankedMenuResponse struct {
	Menu        MenuResponse `json:"menu"`
	TotalPoints int          `json:"total_points"`
}
