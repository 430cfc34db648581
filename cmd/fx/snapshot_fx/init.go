package snapshot_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdeck/internal/repositories"
	"tripdeck/internal/services"
	mem "tripdeck/pkg/memcache"
)

var Module = fx.Provide(
	provideSnapshotRepo, provideSnapshotService)

func provideSnapshotRepo(db *gorm.DB) repositories.SnapshotRepository {
	return repositories.NewSnapshotRepository(db)
}

func provideSnapshotService(store mem.ItineraryStore, repo repositories.SnapshotRepository) services.SnapshotServiceInterface {
	return services.NewSnapshotService(store, repo)
}
