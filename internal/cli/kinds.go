package cli

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/forgo/gamesdb/internal/convert"
	"github.com/forgo/gamesdb/internal/model"
	"github.com/forgo/gamesdb/internal/repository"
)

// entityOps is the kind-independent view of a repository the commands use.
type entityOps interface {
	get(ctx context.Context, key int64) (any, error)
	put(ctx context.Context, data []byte) (int64, error)
	delete(ctx context.Context, key int64) error
	ids(ctx context.Context) ([]int64, error)
	max(ctx context.Context) (int64, error)
	count(ctx context.Context) (int64, error)
}

type repoOps[T any] struct {
	repo *repository.Repository[T]
	key  func(*T) int64
}

func (o repoOps[T]) get(ctx context.Context, key int64) (any, error) {
	rec, err := o.repo.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%s %d: %w", o.repo.Collection().Name, key, ErrNotFound)
	}
	return rec, nil
}

// put decodes a single record from YAML or JSON and inserts it.
func (o repoOps[T]) put(ctx context.Context, data []byte) (int64, error) {
	var rec T
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("decode %s record: %w", o.repo.Collection().Name, err)
	}
	if err := o.repo.Insert(ctx, &rec); err != nil {
		return 0, err
	}
	return o.key(&rec), nil
}

func (o repoOps[T]) delete(ctx context.Context, key int64) error {
	return o.repo.Delete(ctx, key)
}

func (o repoOps[T]) ids(ctx context.Context) ([]int64, error) {
	return o.repo.ListIDs(ctx)
}

func (o repoOps[T]) max(ctx context.Context) (int64, error) {
	return o.repo.MaxID(ctx)
}

func (o repoOps[T]) count(ctx context.Context) (int64, error) {
	return o.repo.Count(ctx)
}

// kindTable maps the kind names accepted on the command line to repositories.
func kindTable(db *repository.GamesDatabase) map[string]entityOps {
	return map[string]entityOps{
		"bgg":   repoOps[model.BGGGame]{db.BGGGames, convert.BGGGameConverter{}.Key},
		"csi":   repoOps[model.CSIPriceData]{db.CSIPrices, convert.CSIPriceConverter{}.Key},
		"mm":    repoOps[model.MMPriceData]{db.MMPrices, convert.MMPriceConverter{}.Key},
		"game":  repoOps[model.Game]{db.Games, convert.GameConverter{}.Key},
		"reltn": repoOps[model.GameReltn]{db.Relations.Repository, convert.GameReltnConverter{}.Key},
	}
}

// Kinds returns the accepted kind names in sorted order.
func Kinds() []string {
	return []string{"bgg", "csi", "game", "mm", "reltn"}
}

func lookupKind(db *repository.GamesDatabase, kind string) (entityOps, error) {
	ops, ok := kindTable(db)[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q: must be one of %s", kind, strings.Join(Kinds(), ", "))
	}
	return ops, nil
}
