package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/kovalyov-valentin/job-feed-parser/internal/model"
	"github.com/samber/lo"
)

// Хранилище записей в postgres, дополнительно к csv
type RecordPostgresStorage struct {
	db *sqlx.DB
}

func NewRecordPostgresStorage(db *sqlx.DB) *RecordPostgresStorage {
	return &RecordPostgresStorage{db: db}
}

func (s *RecordPostgresStorage) Append(ctx context.Context, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows := lo.Map(records, func(record model.Record, _ int) dbRecord {
		return toDBRecord(record)
	})

	for _, row := range rows {
		if _, err := tx.NamedExecContext(
			ctx,
			`INSERT INTO records (title, link, content, skills, posted_on, budget_low, budget_high, country)
			VALUES (:title, :link, :content, :skills, :posted_on, :budget_low, :budget_high, :country)
			ON CONFLICT (link) DO NOTHING`,
			row,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Внутренняя модель для работы с БД. nil поля пишутся как NULL
type dbRecord struct {
	Title      string  `db:"title"`
	Link       string  `db:"link"`
	Content    string  `db:"content"`
	Skills     *string `db:"skills"`
	PostedOn   *string `db:"posted_on"`
	BudgetLow  *string `db:"budget_low"`
	BudgetHigh *string `db:"budget_high"`
	Country    *string `db:"country"`
}

func toDBRecord(record model.Record) dbRecord {
	row := dbRecord{
		Title:    record.Title,
		Link:     record.Link,
		Content:  record.Content,
		PostedOn: record.Date,
		Country:  record.Country,
	}

	if record.Skills != nil {
		row.Skills = lo.ToPtr(record.SkillsString())
	}

	if record.Budget != nil {
		row.BudgetLow = lo.ToPtr(record.Budget.Low)
		if record.Budget.IsRange() {
			row.BudgetHigh = lo.ToPtr(record.Budget.High)
		}
	}

	return row
}
