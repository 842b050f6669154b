package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"karaku/backend/internal/logger"
)

// Coordinator brings both lists up to date when the app starts and on
// every scheduled refresh.
type Coordinator struct {
	characters   CharacterService
	translations TranslationService
}

func NewCoordinator(characters CharacterService, translations TranslationService) *Coordinator {
	return &Coordinator{characters: characters, translations: translations}
}

func (c *Coordinator) Characters() CharacterService {
	return c.characters
}

func (c *Coordinator) Translations() TranslationService {
	return c.translations
}

// Activate loads the character catalog and the translation history
// concurrently. A failure in one does not stop the other; the first error
// is returned after both finish.
func (c *Coordinator) Activate(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		return c.characters.Load(ctx)
	})
	g.Go(func() error {
		return c.translations.Refresh(ctx)
	})
	if err := g.Wait(); err != nil {
		logger.Warn("activation incomplete", "module", "service", "action", "activate", "resource", "coordinator", "result", "failed", "error", err)
		return err
	}
	logger.Info("activation complete", "module", "service", "action", "activate", "resource", "coordinator", "result", "ok")
	return nil
}
