package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestBudgetString(t *testing.T) {
	assert.Equal(t, "$15.00 - $35.00", Budget{Low: "$15.00", High: "$35.00"}.String())
	assert.Equal(t, "$500", Budget{Low: "$500"}.String())
	assert.False(t, Budget{Low: "$500"}.IsRange())
}

func TestBudgetCell(t *testing.T) {
	pair := Budget{Low: "$20", High: "$40"}
	single := Budget{Low: "$20 - $40"}

	assert.Equal(t, `["$20","$40"]`, pair.Cell())
	assert.Equal(t, "$20 - $40", single.Cell())
	assert.NotEqual(t, pair.Cell(), single.Cell())
}

func TestRecordRow(t *testing.T) {
	item := Item{Title: "Scraper needed", Link: "https://example.com/jobs/1", Description: "<b>Posted On</b>: x"}

	t.Run("all fields", func(t *testing.T) {
		record := NewRecord(item, Fields{
			Content: "Job about scraping",
			Skills:  []string{"Python", "Web Scraping"},
			Date:    lo.ToPtr("Oct 5, 2023"),
			Budget:  &Budget{Low: "$15.00", High: "$35.00"},
			Country: lo.ToPtr("United States"),
		})

		assert.Equal(t, []string{
			"Scraper needed",
			"https://example.com/jobs/1",
			"Job about scraping",
			"Python, Web Scraping",
			"Oct 5, 2023",
			`["$15.00","$35.00"]`,
			"United States",
		}, record.Row())
	})

	t.Run("absent fields are empty cells", func(t *testing.T) {
		row := NewRecord(item, Fields{Content: "text"}).Row()

		assert.Len(t, row, len(Columns))
		assert.Equal(t, []string{"Scraper needed", "https://example.com/jobs/1", "text", "", "", "", ""}, row)
	})
}
