package fx

import (
	"database/sql"

	"gametracker/internal/api"
	"gametracker/internal/config"
	"gametracker/internal/database"
	"gametracker/internal/db"
	"gametracker/internal/logger"
	"gametracker/internal/repository"
	"gametracker/internal/server"
	"gametracker/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewUserRepository),
	fx.Provide(repository.NewGameRepository),
	fx.Provide(repository.NewTrackedGameRepository),
	fx.Provide(repository.NewStatLogRepository),
	fx.Provide(repository.NewGuideRepository),
	fx.Provide(repository.NewProgressRepository),
	fx.Provide(repository.NewNewsRepository),
	// feed client
	fx.Provide(api.NewNewsFeedClient),
	// svc
	fx.Provide(service.NewAuthService),
	fx.Provide(service.NewTrackerService),
	fx.Provide(service.NewGuideService),
	fx.Provide(service.NewNewsService),
	// server
	fx.Provide(server.New),
)
