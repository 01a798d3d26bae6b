package domain

import (
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	AvatarURL    string
	Bio          string
	Gender       string
	Phone        string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Game is a catalog entry users can track.
type Game struct {
	ID        string
	Name      string
	Genre     string
	Platform  string
	IconURL   string
	CreatedAt time.Time
}

// TrackedGame is one user's ongoing association with a catalog game.
type TrackedGame struct {
	ID          string
	UserID      string
	GameID      string
	Rank        string
	HoursPlayed int
	KDRatio     *float64
	GameTag     string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Game        *Game
}

// StatLog is an immutable weekly snapshot of performance stats for one
// tracked game. Optional numeric fields are nil when the user left them
// blank; nil means "no data", never zero.
type StatLog struct {
	ID              string
	TrackedGameID   string
	Rank            string
	KDRatio         *float64
	FDRatio         *float64
	MatchesPlayed   int
	Season          string
	HeadshotPercent *float64
	Notes           string
	CreatedAt       time.Time
}

type Guide struct {
	ID              string
	GameID          string
	Title           string
	Description     string
	DifficultyLevel string
	EstimatedDays   int
	CreatedAt       time.Time
	Game            *Game
}

type DailyTask struct {
	ID          string
	GuideID     string
	Title       string
	Description string
	TaskOrder   int
	XPReward    int
	CreatedAt   time.Time
}

type WeeklyMission struct {
	ID          string
	GuideID     string
	Title       string
	Description string
	XPReward    int
	CreatedAt   time.Time
}

// Progress records one completion of a daily task or weekly mission.
// Exactly one of DailyTaskID / WeeklyMissionID is set.
type Progress struct {
	ID              string
	UserID          string
	GuideID         string
	DailyTaskID     string
	WeeklyMissionID string
	CompletedAt     time.Time
	StreakCount     int
	XPEarned        int
}

type NewsArticle struct {
	ID          string
	Title       string
	Summary     string
	Content     string
	ImageURL    string
	Source      string
	Genre       string
	URL         string
	PublishedAt time.Time
	CreatedAt   time.Time
}
