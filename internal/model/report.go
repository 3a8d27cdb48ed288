package model

// LeaderboardEntry is one row of the valid-submission leaderboard.
// Disqualified players never appear; players with zero valid submissions do.
type LeaderboardEntry struct {
	Identity   PlayerID
	Nickname   string
	ValidCount int
}

// ApprovedStat is one row of the payment-eligible statistics.
// Only players with at least one valid, approved submission appear.
type ApprovedStat struct {
	Identity      PlayerID
	Nickname      string
	StaticID      string
	ApprovedCount int
}

// ApprovedLeaderboardEntry is one row of the approval-ranked leaderboard.
// Only players with at least one valid submission appear.
type ApprovedLeaderboardEntry struct {
	Identity      PlayerID
	Nickname      string
	TotalValid    int
	ApprovedCount int
}
