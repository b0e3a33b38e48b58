package seen

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomakado/containers/set"
)

// Хранилище, в котором переживают рестарт уже обработанные ссылки
type Store interface {
	Links(ctx context.Context) ([]string, error)
	Add(ctx context.Context, links []string) error
}

// Набор ссылок, которые уже были записаны за время работы процесса.
// Без store набор живет только в памяти и после рестарта начинается с нуля
type Set struct {
	mu    sync.RWMutex
	links set.HashSet[string]
	store Store
}

func New(store Store) *Set {
	return &Set{
		links: set.New[string](),
		store: store,
	}
}

// Подгружает ссылки из store. Без store ничего не делает
func (s *Set) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	links, err := s.store.Links(ctx)
	if err != nil {
		return fmt.Errorf("load seen links: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, link := range links {
		s.links.Add(link)
	}

	return nil
}

func (s *Set) Contains(link string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.links.Contains(link)
}

// Добавляет ссылки. В памяти ссылки остаются даже если store вернул ошибку,
// иначе после сбоя store одна и та же запись ушла бы в хранилища повторно
func (s *Set) Add(ctx context.Context, links ...string) error {
	if len(links) == 0 {
		return nil
	}

	s.mu.Lock()
	for _, link := range links {
		s.links.Add(link)
	}
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Add(ctx, links); err != nil {
			return fmt.Errorf("store seen links: %w", err)
		}
	}

	return nil
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.links.Slice())
}
