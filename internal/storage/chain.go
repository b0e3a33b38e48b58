package storage

import (
	"context"

	"github.com/kovalyov-valentin/job-feed-parser/internal/model"
)

type RecordAppender interface {
	Append(ctx context.Context, records []model.Record) error
}

// Пишет одну пачку записей во все хранилища по очереди
type Chain []RecordAppender

func (c Chain) Append(ctx context.Context, records []model.Record) error {
	for _, storage := range c {
		if err := storage.Append(ctx, records); err != nil {
			return err
		}
	}

	return nil
}
