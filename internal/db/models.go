package db

import (
	"database/sql"
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	AvatarUrl    string
	Bio          string
	Gender       string
	Phone        string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Game struct {
	ID        string
	Name      string
	Genre     string
	Platform  string
	IconUrl   string
	CreatedAt time.Time
}

type TrackedGame struct {
	ID          string
	UserID      string
	GameID      string
	Rank        string
	HoursPlayed int64
	KdRatio     sql.NullFloat64
	GameTag     string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type StatLog struct {
	ID              string
	TrackedGameID   string
	Rank            string
	KdRatio         sql.NullFloat64
	FdRatio         sql.NullFloat64
	MatchesPlayed   int64
	Season          string
	HeadshotPercent sql.NullFloat64
	Notes           string
	CreatedAt       time.Time
}

type Guide struct {
	ID              string
	GameID          string
	Title           string
	Description     string
	DifficultyLevel string
	EstimatedDays   int64
	CreatedAt       time.Time
}

type DailyTask struct {
	ID          string
	GuideID     string
	Title       string
	Description string
	TaskOrder   int64
	XpReward    int64
	CreatedAt   time.Time
}

type WeeklyMission struct {
	ID          string
	GuideID     string
	Title       string
	Description string
	XpReward    int64
	CreatedAt   time.Time
}

type Progress struct {
	ID              string
	UserID          string
	GuideID         string
	DailyTaskID     string
	WeeklyMissionID string
	CompletedAt     time.Time
	StreakCount     int64
	XpEarned        int64
}

type NewsArticle struct {
	ID          string
	Title       string
	Summary     string
	Content     string
	ImageUrl    string
	Source      string
	Genre       string
	Url         string
	PublishedAt time.Time
	CreatedAt   time.Time
}
