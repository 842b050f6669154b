package service_test

import (
	"context"
	"sync"
	"sync/atomic"

	"karaku/backend/internal/model"
	"karaku/backend/internal/repository"
)

type fakeCatalog struct {
	mu    sync.Mutex
	page  model.CharacterPage
	err   error
	calls int
}

func (f *fakeCatalog) FetchCharacters(ctx context.Context) (model.CharacterPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.page, f.err
}

func (f *fakeCatalog) set(page model.CharacterPage, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.page, f.err = page, err
}

type fakeTranslator struct {
	out  string
	err  error
	text string
	to   string
}

func (f *fakeTranslator) Translate(ctx context.Context, text, to string) (string, error) {
	f.text, f.to = text, to
	return f.out, f.err
}

var (
	rick  = model.Character{ID: 1, Name: "Rick Sanchez", Species: "Human", Gender: "Male", OriginName: "Earth (C-137)", ImageURL: "https://rickandmortyapi.com/api/character/avatar/1.jpeg"}
	morty = model.Character{ID: 2, Name: "Morty Smith", Species: "Human", Gender: "Male", OriginName: "unknown", ImageURL: "https://rickandmortyapi.com/api/character/avatar/2.jpeg"}
)

// pausingHistory holds the first ListAll after it has read the store until
// release is closed.
type pausingHistory struct {
	repository.TranslationRepository
	calls   atomic.Int32
	read    chan struct{}
	release chan struct{}
}

func newPausingHistory(next repository.TranslationRepository) *pausingHistory {
	return &pausingHistory{TranslationRepository: next, read: make(chan struct{}), release: make(chan struct{})}
}

func (p *pausingHistory) ListAll(ctx context.Context) ([]model.Translation, error) {
	list, err := p.TranslationRepository.ListAll(ctx)
	if p.calls.Add(1) == 1 {
		close(p.read)
		<-p.release
	}
	return list, err
}

// sequencedCatalog returns pages in order; the first call waits for release
// after it has picked its page.
type sequencedCatalog struct {
	pages   []model.CharacterPage
	calls   atomic.Int32
	fetched chan struct{}
	release chan struct{}
}

func (s *sequencedCatalog) FetchCharacters(ctx context.Context) (model.CharacterPage, error) {
	n := s.calls.Add(1)
	page := s.pages[min(int(n), len(s.pages))-1]
	if n == 1 {
		close(s.fetched)
		<-s.release
	}
	return page, nil
}
