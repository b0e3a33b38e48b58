package storage

import (
	"testing"

	"github.com/kovalyov-valentin/job-feed-parser/internal/model"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestToDBRecord(t *testing.T) {
	t.Run("range budget", func(t *testing.T) {
		row := toDBRecord(model.Record{
			Title: "Scraper",
			Link:  "https://example.com/1",
			Fields: model.Fields{
				Content: "Job",
				Skills:  []string{"Python", "Go"},
				Date:    lo.ToPtr("Oct 5, 2023"),
				Budget:  &model.Budget{Low: "$15.00", High: "$35.00"},
			},
		})

		assert.Equal(t, lo.ToPtr("Python, Go"), row.Skills)
		assert.Equal(t, lo.ToPtr("Oct 5, 2023"), row.PostedOn)
		assert.Equal(t, lo.ToPtr("$15.00"), row.BudgetLow)
		assert.Equal(t, lo.ToPtr("$35.00"), row.BudgetHigh)
		assert.Nil(t, row.Country)
	})

	t.Run("single budget and absent fields", func(t *testing.T) {
		row := toDBRecord(model.Record{
			Link:   "https://example.com/2",
			Fields: model.Fields{Content: "Job", Budget: &model.Budget{Low: "$500"}},
		})

		assert.Nil(t, row.Skills)
		assert.Nil(t, row.PostedOn)
		assert.Equal(t, lo.ToPtr("$500"), row.BudgetLow)
		assert.Nil(t, row.BudgetHigh)
	})
}
