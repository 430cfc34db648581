package memcache_fx

import (
	"go.uber.org/fx"

	mem "tripdeck/pkg/memcache"
	"tripdeck/pkg/utils"
)

var Module = fx.Provide(provideItineraryStore)

func provideItineraryStore() mem.ItineraryStore {
	return mem.NewItineraries(utils.SessionTTL())
}
