package service

import (
	"context"
	"fmt"
	"sync"

	"karaku/backend/internal/logger"
	"karaku/backend/internal/model"
	"karaku/backend/internal/projector"
	"karaku/backend/internal/repository"
	"karaku/backend/internal/task"
)

// CatalogFetcher is the remote source of the character list.
type CatalogFetcher interface {
	FetchCharacters(ctx context.Context) (model.CharacterPage, error)
}

// CharacterService keeps the browsable character list and the favorite
// store. The list is a pull snapshot: it only changes on Load, so it does
// not reflect favorites written since.
type CharacterService interface {
	Load(ctx context.Context) error
	Characters() []model.Character
	Version() uint64
	Favorite(ctx context.Context, character model.Character) *task.Task[struct{}]
	FavoriteByID(ctx context.Context, id int64) *task.Task[struct{}]
	Unfavorite(ctx context.Context, id int64) *task.Task[struct{}]
	Favorites(ctx context.Context) ([]model.Character, error)
}

type characterService struct {
	favorites repository.CharacterRepository
	catalog   CatalogFetcher
	pool      *task.Pool
	snapshot  *projector.Snapshot[model.Character]

	loadMu sync.Mutex // one fetch+replace at a time
}

func NewCharacterService(favorites repository.CharacterRepository, catalog CatalogFetcher, pool *task.Pool) CharacterService {
	return &characterService{
		favorites: favorites,
		catalog:   catalog,
		pool:      pool,
		snapshot:  projector.New[model.Character](projector.ModePull),
	}
}

// Load fetches the catalog once and replaces the list on success. On
// failure the previous list stays in place. A Load that starts while
// another runs waits for it, so an older page never replaces a newer one.
func (s *characterService) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	page, err := s.catalog.FetchCharacters(ctx)
	if err != nil {
		logger.Error("fetch characters failed", "module", "service", "action", "fetch", "resource", "character", "result", "failed", "error", err)
		return err
	}
	s.snapshot.Replace(page.Results)
	logger.Info("characters loaded", "module", "service", "action", "fetch", "resource", "character", "result", "ok", "count", len(page.Results))
	return nil
}

func (s *characterService) Characters() []model.Character {
	return s.snapshot.Get()
}

func (s *characterService) Version() uint64 {
	return s.snapshot.Version()
}

// Favorite stores character in the background. The returned task may be
// dropped; the write runs to completion even if ctx is cancelled.
func (s *characterService) Favorite(ctx context.Context, character model.Character) *task.Task[struct{}] {
	return task.Submit(s.pool, context.WithoutCancel(ctx), func(ctx context.Context) (struct{}, error) {
		if err := s.favorites.InsertOrReplace(ctx, character); err != nil {
			logger.Error("favorite failed", "module", "service", "action", "create", "resource", "favorite", "result", "failed", "character_id", character.ID, "error", err)
			return struct{}{}, fmt.Errorf("favorite character %d: %w", character.ID, err)
		}
		logger.Info("favorite saved", "module", "service", "action", "create", "resource", "favorite", "result", "ok", "character_id", character.ID)
		return struct{}{}, nil
	})
}

// FavoriteByID favorites the character with id from the current list. An
// id not in the list yields an already finished task failing with
// ErrNotFound.
func (s *characterService) FavoriteByID(ctx context.Context, id int64) *task.Task[struct{}] {
	for _, c := range s.snapshot.Get() {
		if c.ID == id {
			return s.Favorite(ctx, c)
		}
	}
	return task.Done(struct{}{}, fmt.Errorf("character %d: %w", id, ErrNotFound))
}

// Unfavorite removes id from the favorite store in the background.
// Removing an id that is not stored succeeds.
func (s *characterService) Unfavorite(ctx context.Context, id int64) *task.Task[struct{}] {
	return task.Submit(s.pool, context.WithoutCancel(ctx), func(ctx context.Context) (struct{}, error) {
		if err := s.favorites.DeleteByID(ctx, id); err != nil {
			logger.Error("unfavorite failed", "module", "service", "action", "delete", "resource", "favorite", "result", "failed", "character_id", id, "error", err)
			return struct{}{}, fmt.Errorf("unfavorite character %d: %w", id, err)
		}
		logger.Info("favorite removed", "module", "service", "action", "delete", "resource", "favorite", "result", "ok", "character_id", id)
		return struct{}{}, nil
	})
}

func (s *characterService) Favorites(ctx context.Context) ([]model.Character, error) {
	return s.favorites.ListAll(ctx)
}
