package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgo/gamesdb/internal/convert"
	"github.com/forgo/gamesdb/internal/database"
	"github.com/forgo/gamesdb/internal/metrics"
	"github.com/forgo/gamesdb/internal/model"
)

const opReadByGame = "read_by_game"

// BGGGameRepository handles BoardGameGeek game records
type BGGGameRepository = Repository[model.BGGGame]

// CSIPriceRepository handles CoolStuffInc price records
type CSIPriceRepository = Repository[model.CSIPriceData]

// MMPriceRepository handles Miniature Market price records
type MMPriceRepository = Repository[model.MMPriceData]

// GameRepository handles canonical game records
type GameRepository = Repository[model.Game]

// NewBGGGameRepository creates a new BoardGameGeek game repository
func NewBGGGameRepository(store database.Store, logger *slog.Logger, recorder *metrics.Recorder) *BGGGameRepository {
	return New[model.BGGGame](store, BGGGameCollection, convert.BGGGameConverter{}, logger, recorder)
}

// NewCSIPriceRepository creates a new CoolStuffInc price repository
func NewCSIPriceRepository(store database.Store, logger *slog.Logger, recorder *metrics.Recorder) *CSIPriceRepository {
	return New[model.CSIPriceData](store, CSIPriceCollection, convert.CSIPriceConverter{}, logger, recorder)
}

// NewMMPriceRepository creates a new Miniature Market price repository
func NewMMPriceRepository(store database.Store, logger *slog.Logger, recorder *metrics.Recorder) *MMPriceRepository {
	return New[model.MMPriceData](store, MMPriceCollection, convert.MMPriceConverter{}, logger, recorder)
}

// NewGameRepository creates a new canonical game repository
func NewGameRepository(store database.Store, logger *slog.Logger, recorder *metrics.Recorder) *GameRepository {
	return New[model.Game](store, GameCollection, convert.GameConverter{}, logger, recorder)
}

// GameReltnRepository handles game relation records. Besides lookups by
// relation id it can find the relation for a canonical game.
type GameReltnRepository struct {
	*Repository[model.GameReltn]
	reltnConv convert.GameReltnConverter
}

// NewGameReltnRepository creates a new game relation repository
func NewGameReltnRepository(store database.Store, logger *slog.Logger, recorder *metrics.Recorder) *GameReltnRepository {
	conv := convert.GameReltnConverter{}
	return &GameReltnRepository{
		Repository: New[model.GameReltn](store, GameReltnCollection, conv, logger, recorder),
		reltnConv:  conv,
	}
}

// ReadByGameID returns the relation pointing at gameID, or nil when there is
// none. If several relations point at the game, the last one scanned wins.
func (r *GameReltnRepository) ReadByGameID(ctx context.Context, gameID int64) (rec *model.GameReltn, err error) {
	defer r.observe(opReadByGame, time.Now(), &err)

	if gameID < 0 {
		return nil, database.InvalidArgument(opReadByGame, r.collection.Name, "negative %s %d", convert.FieldGameID, gameID)
	}
	return r.readOne(ctx, opReadByGame, convert.FieldGameID, gameID, r.reltnConv.GameFilter(gameID))
}
