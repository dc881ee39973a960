package repository

import (
	"context"
	"log/slog"

	"github.com/forgo/gamesdb/internal/database"
	"github.com/forgo/gamesdb/internal/metrics"
)

// GamesDatabase groups the entity repositories that share one store and
// owns that store's connection lifecycle.
type GamesDatabase struct {
	store database.Store

	BGGGames  *BGGGameRepository
	CSIPrices *CSIPriceRepository
	MMPrices  *MMPriceRepository
	Games     *GameRepository
	Relations *GameReltnRepository
}

// NewGamesDatabase wires every repository to store. The store is not opened.
func NewGamesDatabase(store database.Store, logger *slog.Logger, recorder *metrics.Recorder) *GamesDatabase {
	return &GamesDatabase{
		store:     store,
		BGGGames:  NewBGGGameRepository(store, logger, recorder),
		CSIPrices: NewCSIPriceRepository(store, logger, recorder),
		MMPrices:  NewMMPriceRepository(store, logger, recorder),
		Games:     NewGameRepository(store, logger, recorder),
		Relations: NewGameReltnRepository(store, logger, recorder),
	}
}

// Open connects the underlying store. Opening an open store is a no-op.
func (g *GamesDatabase) Open(ctx context.Context) error {
	return g.store.Open(ctx)
}

// Close disconnects the underlying store. It is safe to call repeatedly.
func (g *GamesDatabase) Close(ctx context.Context) error {
	return g.store.Close(ctx)
}

// IsOpen reports whether the underlying store is connected.
func (g *GamesDatabase) IsOpen() bool {
	return g.store.IsOpen()
}

// Ping checks the underlying store connection.
func (g *GamesDatabase) Ping(ctx context.Context) error {
	return g.store.Ping(ctx)
}

// Entities returns the repositories in collection order.
func (g *GamesDatabase) Entities() []Entity {
	return []Entity{g.BGGGames, g.CSIPrices, g.MMPrices, g.Games, g.Relations}
}
