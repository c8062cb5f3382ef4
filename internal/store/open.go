package store

import (
	"fmt"

	"github.com/mmcdole/galleria/internal/config"
	"github.com/mmcdole/galleria/internal/domain"
)

// Open returns the store selected by the cache config
func Open(cfg config.CacheConfig) (domain.Store, error) {
	switch cfg.Driver {
	case config.DriverBolt, "":
		return NewBoltStore(cfg.Path)
	case config.DriverSQLite:
		return NewSQLiteStore(cfg.Path)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
