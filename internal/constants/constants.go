package constants

import "time"

const (
	// CooldownWindowDays is the minimum number of whole days between
	// successive stat logs for the same tracked game.
	CooldownWindowDays = 7

	// RecentLogCount is how many logs the tracker overview needs per
	// game: the latest and the previous one for growth deltas.
	RecentLogCount = 2

	StatLogHistoryLimit = 52
)

const (
	RankMaxLen   = 32
	SeasonMaxLen = 32
	NotesMaxLen  = 500

	MatchesPlayedMin = 0
	MatchesPlayedMax = 10000
	RatioMin         = 0
	RatioMax         = 99
	HeadshotMin      = 0
	HeadshotMax      = 100
)

const (
	NewsRefreshTTL = 30 * time.Minute
	NewsFetchLimit = 50
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	BcryptCost      = 12
	DefaultTokenTTL = 24 * time.Hour
)
