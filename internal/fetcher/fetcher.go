package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kovalyov-valentin/job-feed-parser/internal/description"
	"github.com/kovalyov-valentin/job-feed-parser/internal/model"
	"github.com/samber/lo"
	"github.com/tomakado/containers/set"
)

// Интерфейс источника ленты
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]model.Item, error)
}

type RecordStorage interface {
	Append(ctx context.Context, records []model.Record) error
}

type SeenSet interface {
	Contains(link string) bool
	Add(ctx context.Context, links ...string) error
}

type Notifier interface {
	Notify(ctx context.Context, records []model.Record) error
}

// Структура сборщика
type Fetcher struct {
	source  Source
	records RecordStorage
	// Уже записанные ссылки. Живет столько же, сколько процесс, если не настроено хранилище
	seen SeenSet
	// Может быть nil, тогда никуда не отправляем
	notifier Notifier

	// Как часто опрашиваем ленту
	fetchInterval time.Duration
	// Сколько раз опросить ленту, 0 - без ограничений
	maxPolls int
	// Вакансии с этими словами в заголовке или категориях пропускаем
	filterKeywords []string
}

func NewFetcher(
	source Source,
	records RecordStorage,
	seen SeenSet,
	notifier Notifier,
	fetchInterval time.Duration,
	maxPolls int,
	filterKeywords []string,
) *Fetcher {
	keywords := lo.Map(filterKeywords, func(keyword string, _ int) string {
		return strings.ToLower(keyword)
	})

	return &Fetcher{
		source:         source,
		records:        records,
		seen:           seen,
		notifier:       notifier,
		fetchInterval:  fetchInterval,
		maxPolls:       maxPolls,
		filterKeywords: keywords,
	}
}

// Первый опрос сразу, дальше по fetchInterval.
// Ошибка одного опроса не останавливает цикл, ее только логируем
func (f *Fetcher) Start(ctx context.Context) error {
	if f.fetchInterval <= 0 {
		return fmt.Errorf("fetch interval must be positive, got %s", f.fetchInterval)
	}

	ticker := time.NewTicker(f.fetchInterval)
	defer ticker.Stop()

	for polls := 1; ; polls++ {
		if err := f.Fetch(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			log.Printf("[ERROR] poll %d of %s: %v", polls, f.source.Name(), err)
		}

		if f.maxPolls > 0 && polls >= f.maxPolls {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Один опрос ленты: забираем вакансии, откидываем уже виденные, пишем новые одной пачкой
func (f *Fetcher) Fetch(ctx context.Context) error {
	items, err := f.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", f.source.Name(), err)
	}

	records, malformed := f.processItems(items)

	// Помечаем ссылки до записи: если одно из хранилищ упадет после того, как другое уже записало пачку,
	// следующий опрос не запишет эти вакансии повторно.
	// Битые вакансии тоже помечаем, иначе будем спотыкаться о них каждый опрос
	links := append(lo.Map(records, func(record model.Record, _ int) string {
		return record.Link
	}), malformed...)

	if err := f.seen.Add(ctx, links...); err != nil {
		log.Printf("[WARN] %v", err)
	}

	if err := f.records.Append(ctx, records); err != nil {
		return fmt.Errorf("store records: %w", err)
	}

	log.Printf("%s: %d new records, %d items in feed", f.source.Name(), len(records), len(items))

	if f.notifier != nil && len(records) > 0 {
		if err := f.notifier.Notify(ctx, records); err != nil {
			log.Printf("[ERROR] notify about %d records: %v", len(records), err)
		}
	}

	return nil
}

// Возвращает новые записи и ссылки вакансий, у которых не удалось разобрать description
func (f *Fetcher) processItems(items []model.Item) ([]model.Record, []string) {
	var (
		records   []model.Record
		malformed []string
	)

	// Одна и та же ссылка может встретиться в ленте дважды, оставляем первую
	items = lo.UniqBy(items, func(item model.Item) string {
		return item.Link
	})

	for _, item := range items {
		if f.seen.Contains(item.Link) {
			continue
		}

		if f.itemShouldBeSkipped(item) {
			continue
		}

		fields, err := description.Extract(item.Description)
		if err != nil {
			log.Printf("[WARN] skip item %s: %v", item.Link, err)
			malformed = append(malformed, item.Link)
			continue
		}

		records = append(records, model.NewRecord(item, fields))
	}

	return records, malformed
}

// Проверяем заголовок и категории вакансии на ключевые слова из фильтра
func (f *Fetcher) itemShouldBeSkipped(item model.Item) bool {
	categoriesSet := set.New(lo.Map(item.Categories, func(category string, _ int) string {
		return strings.ToLower(category)
	})...)

	title := strings.ToLower(item.Title)
	for _, keyword := range f.filterKeywords {
		if categoriesSet.Contains(keyword) || strings.Contains(title, keyword) {
			return true
		}
	}

	return false
}
