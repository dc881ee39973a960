package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/gamesdb/internal/database"
	"github.com/forgo/gamesdb/internal/metrics"
	"github.com/forgo/gamesdb/internal/model"
	"github.com/forgo/gamesdb/internal/repository"
	"github.com/forgo/gamesdb/internal/testing/fixtures"
	"github.com/forgo/gamesdb/internal/testing/testdb"
)

// ============================================================================
// Integration Tests (require TEST_DB_HOST)
// ============================================================================

func TestIntegration_BGGGameLifecycle(t *testing.T) {
	tdb := testdb.New(t)
	db := repository.NewGamesDatabase(tdb.Store, nil, metrics.NewRecorder(nil))
	ctx := tdb.Ctx()

	n, err := db.BGGGames.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.NoValue, n)

	abyss := fixtures.BGGGame(fixtures.BGGAbyssID)
	require.NoError(t, db.BGGGames.Insert(ctx, abyss))

	got, err := db.BGGGames.Read(ctx, fixtures.BGGAbyssID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, abyss.Name, got.Name)
	assert.Equal(t, abyss.Publishers, got.Publishers)
	require.NotNil(t, got.AddDate)
	assert.True(t, abyss.AddDate.Equal(*got.AddDate))

	renamed := fixtures.BGGGame(fixtures.BGGAbyssID, func(g *model.BGGGame) {
		g.Name = "Abyss (2nd printing)"
	})
	require.NoError(t, db.BGGGames.Insert(ctx, renamed))
	assert.Equal(t, 1, tdb.MustCount(repository.BGGGameCollection.Name, nil))

	got, err = db.BGGGames.Read(ctx, fixtures.BGGAbyssID)
	require.NoError(t, err)
	assert.Equal(t, "Abyss (2nd printing)", got.Name)

	require.NoError(t, db.BGGGames.Insert(ctx, fixtures.BGGGame(fixtures.BGGCosmicEncounterID)))

	maxID, err := db.BGGGames.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixtures.BGGAbyssID, maxID)

	require.NoError(t, db.BGGGames.Delete(ctx, fixtures.BGGAbyssID))
	got, err = db.BGGGames.Read(ctx, fixtures.BGGAbyssID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ids, err := db.BGGGames.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{fixtures.BGGCosmicEncounterID}, ids)
}

func TestIntegration_PricesAndRelations(t *testing.T) {
	tdb := testdb.New(t)
	db := repository.NewGamesDatabase(tdb.Store, nil, nil)
	ctx := tdb.Ctx()

	require.NoError(t, db.CSIPrices.Update(ctx, fixtures.CSIPrice(fixtures.CSIAbyssID)))
	require.NoError(t, db.MMPrices.Insert(ctx, fixtures.MMPrice(fixtures.MMAbyssID)))
	require.NoError(t, db.Games.Insert(ctx, fixtures.Game(fixtures.GameAbyssID)))
	require.NoError(t, db.Relations.Insert(ctx, fixtures.GameReltn(fixtures.ReltnAbyssID)))

	csi, err := db.CSIPrices.Read(ctx, fixtures.CSIAbyssID)
	require.NoError(t, err)
	require.NotNil(t, csi)
	assert.Equal(t, fixtures.CSIPrice(fixtures.CSIAbyssID).CurrentPrice, csi.CurrentPrice)

	mm, err := db.MMPrices.Read(ctx, fixtures.MMAbyssID)
	require.NoError(t, err)
	require.NotNil(t, mm)

	reltn, err := db.Relations.ReadByGameID(ctx, fixtures.GameAbyssID)
	require.NoError(t, err)
	require.NotNil(t, reltn)
	assert.Equal(t, fixtures.ReltnAbyssID, reltn.ReltnID)
	assert.Equal(t, fixtures.GameReltn(fixtures.ReltnAbyssID).OtherSites, reltn.OtherSites)
}

func TestIntegration_DuplicateKeys(t *testing.T) {
	tdb := testdb.New(t)
	db := repository.NewGamesDatabase(tdb.Store, nil, nil)
	ctx := tdb.Ctx()
	coll := repository.GameCollection.Name

	tdb.MustInsertRaw(coll, database.Document{"game_id": int64(101), "name": "first"})
	tdb.MustInsertRaw(coll, database.Document{"game_id": int64(101), "name": "second"})

	dups, err := db.Games.Duplicates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, dups)

	n, err := db.Games.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, db.Games.Delete(ctx, 101))
	assert.Equal(t, 0, tdb.MustCount(coll, nil))
}
