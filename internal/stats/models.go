package stats

import "time"

type PlayerMatchStats struct {
	PlayerID     string  `json:"playerId"`
	PlayerName   string  `json:"playerName"`
	MatchID      string  `json:"matchId"`
	Words        int     `json:"words"`
	Score        int     `json:"score"`
	Rank         int     `json:"rank"`
	AvgReaction  float64 `json:"avgReactionMs"`
	BestReaction int     `json:"bestReactionMs"`
	WPM          float64 `json:"wpm"` // words per minute
	SpinWords    int     `json:"spinWords"`
}

type PlayerLifetimeStats struct {
	PlayerID      string `json:"playerId"`
	PlayerName    string `json:"playerName"`
	MatchesPlayed int    `json:"matchesPlayed"`
	TotalScore    int    `json:"totalScore"`
	BestMatch     int    `json:"bestMatch"`
	WinCount      int    `json:"winCount"`
	WinStreak     int    `json:"winStreak"`
}

type LeaderboardEntry struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Value      int    `json:"value"`
	Rank       int    `json:"rank"`
}

type MatchRecap struct {
	MatchID   string             `json:"matchId"`
	RoomCode  string             `json:"roomCode"`
	Mode      string             `json:"mode"`
	StartedAt *time.Time         `json:"startedAt"`
	EndedAt   *time.Time         `json:"endedAt"`
	Players   []PlayerMatchStats `json:"players"`
}
