package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"karaku/backend/internal/logger"
	"karaku/backend/internal/model"
	"karaku/backend/internal/projector"
	"karaku/backend/internal/remote"
	"karaku/backend/internal/repository"
)

type SaveTranslationInput struct {
	TextSource     string
	TextTranslated string
	Category       string
}

// TranslationService owns the translation history. Every mutation is
// followed by a reload of the pushed history list, so subscribers see the
// store as it is after the write.
type TranslationService interface {
	Translate(ctx context.Context, text, to string) (string, error)
	Save(ctx context.Context, in SaveTranslationInput) error
	Update(ctx context.Context, translation model.Translation) error
	UpdateCategory(ctx context.Context, id int64, category string) error
	Delete(ctx context.Context, id int64) error
	Refresh(ctx context.Context) error
	Translations() []model.Translation
	Subscribe() (<-chan []model.Translation, func(), error)
}

type translationService struct {
	history    repository.TranslationRepository
	translator remote.Translator
	snapshot   *projector.Snapshot[model.Translation]

	refreshMu sync.Mutex // orders ListAll+Replace pairs
}

func NewTranslationService(history repository.TranslationRepository, translator remote.Translator) TranslationService {
	return &translationService{
		history:    history,
		translator: translator,
		snapshot:   projector.New[model.Translation](projector.ModePush),
	}
}

func (s *translationService) Translate(ctx context.Context, text, to string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text is required: %w", ErrValidation)
	}
	out, err := s.translator.Translate(ctx, text, to)
	if err != nil {
		logger.Warn("translate failed", "module", "service", "action", "translate", "resource", "translation", "result", "failed", "error", err)
		return "", err
	}
	return out, nil
}

// Save rejects blank text before touching the store.
func (s *translationService) Save(ctx context.Context, in SaveTranslationInput) error {
	if strings.TrimSpace(in.TextSource) == "" || strings.TrimSpace(in.TextTranslated) == "" {
		return fmt.Errorf("source and translated text are required: %w", ErrValidation)
	}

	record := model.NewTranslation(in.TextSource, in.TextTranslated, strings.TrimSpace(in.Category))
	if err := s.history.InsertOrReplace(ctx, record); err != nil {
		return fmt.Errorf("save translation: %w", err)
	}
	logger.Info("translation saved", "module", "service", "action", "create", "resource", "translation", "result", "ok")
	return s.Refresh(ctx)
}

// Update overwrites the stored row with the same id. Whether a missing id
// is an error depends on the store's update policy.
func (s *translationService) Update(ctx context.Context, translation model.Translation) error {
	if strings.TrimSpace(translation.TextSource) == "" || strings.TrimSpace(translation.TextTranslated) == "" {
		return fmt.Errorf("source and translated text are required: %w", ErrValidation)
	}
	if err := s.history.Update(ctx, translation); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("update translation: %w", err)
	}
	logger.Info("translation updated", "module", "service", "action", "update", "resource", "translation", "result", "ok", "translation_id", translation.ID)
	return s.Refresh(ctx)
}

func (s *translationService) UpdateCategory(ctx context.Context, id int64, category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("category is required: %w", ErrValidation)
	}

	record, err := s.history.GetByID(ctx, id)
	if err != nil {
		return err
	}
	record.Category = category
	return s.Update(ctx, record)
}

// Delete removes id and reloads the list; deleting an absent id still
// reloads.
func (s *translationService) Delete(ctx context.Context, id int64) error {
	if err := s.history.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}
	logger.Info("translation deleted", "module", "service", "action", "delete", "resource", "translation", "result", "ok", "translation_id", id)
	return s.Refresh(ctx)
}

// Refresh replaces the history list with the store contents. On failure
// the previous list stays in place. Concurrent refreshes are serialized so
// the last replacement always comes from the latest read.
func (s *translationService) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	list, err := s.history.ListAll(ctx)
	if err != nil {
		logger.Error("load translations failed", "module", "service", "action", "list", "resource", "translation", "result", "failed", "error", err)
		return fmt.Errorf("load translations: %w", err)
	}
	s.snapshot.Replace(list)
	return nil
}

func (s *translationService) Translations() []model.Translation {
	return s.snapshot.Get()
}

// Subscribe delivers the current history immediately and then every
// replacement until cancel is called.
func (s *translationService) Subscribe() (<-chan []model.Translation, func(), error) {
	return s.snapshot.Subscribe()
}
