package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Хранилище уже обработанных ссылок, чтобы после рестарта не писать дубли
type SeenPostgresStorage struct {
	db *sqlx.DB
}

func NewSeenPostgresStorage(db *sqlx.DB) *SeenPostgresStorage {
	return &SeenPostgresStorage{db: db}
}

func (s *SeenPostgresStorage) Links(ctx context.Context) ([]string, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var links []string
	if err := conn.SelectContext(ctx, &links, `SELECT link FROM seen_links`); err != nil {
		return nil, err
	}

	return links, nil
}

func (s *SeenPostgresStorage) Add(ctx context.Context, links []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, link := range links {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO seen_links (link) VALUES ($1) ON CONFLICT (link) DO NOTHING`,
			link,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
