package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kovalyov-valentin/job-feed-parser/internal/model"
)

// Лог записей в csv. Файл только дописывается, заголовок пишется один раз при создании файла
type CSVStorage struct {
	path string
	mu   sync.Mutex
}

// Имя файла вида upwork_2023-10-05.csv, дата берется один раз при старте
func NewCSVStorage(dir, feedName string, day time.Time) *CSVStorage {
	return &CSVStorage{
		path: filepath.Join(dir, fmt.Sprintf("%s_%s.csv", feedName, day.Format(time.DateOnly))),
	}
}

func (s *CSVStorage) Path() string {
	return s.path
}

func (s *CSVStorage) Append(_ context.Context, records []model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(s.path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		writeHeader = true
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if writeHeader {
		if err := w.Write(model.Columns); err != nil {
			return err
		}
	}

	for _, record := range records {
		if err := w.Write(record.Row()); err != nil {
			return fmt.Errorf("write record %s: %w", record.Link, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return file.Close()
}
