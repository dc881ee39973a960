package database

import (
	"fmt"
	"log/slog"
)

// NewStore returns an unopened Store for cfg.Driver.
func NewStore(cfg Config, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case DriverMongo, "":
		return NewMongoStore(cfg, logger), nil
	case DriverSurrealDB:
		return NewSurrealStore(cfg, logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
}
