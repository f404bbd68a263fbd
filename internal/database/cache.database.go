package database

import (
	"fmt"
	"rightstay/config"

	"github.com/valkey-io/valkey-go"
)

// Valkey database indexes. Each index gives logical separation so flushing
// one cache category cannot evict another.
const (
	// LISTINGS_CACHE_INDEX (DB 0) - detailed session/apartment/cleaner listings,
	// invalidated on every write to the backing entity.
	LISTINGS_CACHE_INDEX = iota

	// GENERAL_CACHE_INDEX (DB 1) - settings, dashboard stats, miscellaneous.
	GENERAL_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.Errorf("failed to initialize cache database", "address or port is empty")
	}

	var cacheDB Cache

	var err error
	cacheDB.Listings, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    LISTINGS_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create listings valkey client", err)
	}

	cacheDB.General, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    GENERAL_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create general valkey client", err)
	}

	s.Cache = cacheDB

	return nil
}
