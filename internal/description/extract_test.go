package description

import (
	"strings"
	"testing"

	"github.com/kovalyov-valentin/job-feed-parser/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	raw := `<b>Some text</b> Job about scraping: <b>Posted On</b>: Oct 5, 2023 ` +
		`<b>Skills</b>: Python, Web Scraping <b>Hourly Range</b>: $15.00 - $35.00 ` +
		`<b>Country</b>: United States`

	fields, err := Extract(raw)
	require.NoError(t, err)

	assert.Equal(t, "Job about scraping", fields.Content)
	require.NotNil(t, fields.Date)
	assert.Equal(t, "Oct 5, 2023", *fields.Date)
	assert.Equal(t, "Python, Web Scraping", fields.SkillsString())
	assert.Equal(t, &model.Budget{Low: "$15.00", High: "$35.00"}, fields.Budget)
	require.NotNil(t, fields.Country)
	assert.Equal(t, "United States", *fields.Country)
}

func TestExtractInlineBudget(t *testing.T) {
	t.Run("budget in content without hourly range", func(t *testing.T) {
		fields, err := Extract(`Looking for a dev: $500 <b>Posted On</b>: Oct 5, 2023`)
		require.NoError(t, err)

		assert.Equal(t, "Looking for a dev", fields.Content)
		assert.Equal(t, &model.Budget{Low: "$500"}, fields.Budget)
	})

	t.Run("overrides hourly range label", func(t *testing.T) {
		fields, err := Extract(`Need help: $300 <b>Posted On</b>: Oct 5 <b>Hourly Range</b>: $10-$20`)
		require.NoError(t, err)

		assert.Equal(t, "Need help", fields.Content)
		assert.Equal(t, &model.Budget{Low: "$300"}, fields.Budget)
	})

	t.Run("hourly range text before posted on", func(t *testing.T) {
		fields, err := Extract(`Job text<br /><b>Hourly Range</b>: $15.00-$35.00<br /><b>Posted On</b>: Oct 5`)
		require.NoError(t, err)

		assert.Equal(t, "Job text", fields.Content)
		assert.Equal(t, &model.Budget{Low: "$15.00-$35.00"}, fields.Budget)
	})

	t.Run("keeps colons of free text", func(t *testing.T) {
		fields, err := Extract(`Scope: part one: $50 <b>Posted On</b>: Oct 5`)
		require.NoError(t, err)

		assert.Equal(t, "Scope: part one", fields.Content)
		assert.Equal(t, &model.Budget{Low: "$50"}, fields.Budget)
	})

	t.Run("last segment without currency", func(t *testing.T) {
		fields, err := Extract(`Scope: scraping: daily <b>Posted On</b>: Oct 5`)
		require.NoError(t, err)

		assert.Equal(t, "Scope: scraping: daily", fields.Content)
		assert.Nil(t, fields.Budget)
	})
}

func TestExtractBudgetShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *model.Budget
	}{
		{"range is trimmed", `<b>Posted On</b>: Oct 5 <b>Hourly Range</b>:  $20 - $40 `, &model.Budget{Low: "$20", High: "$40"}},
		{"single token", `<b>Posted On</b>: Oct 5 <b>Hourly Range</b>: $25`, &model.Budget{Low: "$25"}},
		{"dangling hyphen stays single", `<b>Posted On</b>: Oct 5 <b>Hourly Range</b>: $25-`, &model.Budget{Low: "$25-"}},
		{"absent", `<b>Posted On</b>: Oct 5`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Extract(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields.Budget)
		})
	}
}

func TestExtractAbsentFields(t *testing.T) {
	fields, err := Extract(`Plain job <b>Posted On</b>: Oct 5`)
	require.NoError(t, err)

	assert.Equal(t, "Plain job", fields.Content)
	assert.Nil(t, fields.Skills)
	assert.Nil(t, fields.Budget)
	assert.Nil(t, fields.Country)
	require.NotNil(t, fields.Date)
	assert.Equal(t, "Oct 5", *fields.Date)
}

func TestExtractEmptySkills(t *testing.T) {
	fields, err := Extract(`<b>Posted On</b>: Oct 5 <b>Skills</b>: <b>Country</b>: Peru`)
	require.NoError(t, err)

	assert.Nil(t, fields.Skills)
	require.NotNil(t, fields.Country)
	assert.Equal(t, "Peru", *fields.Country)
}

func TestExtractSkillsNormalization(t *testing.T) {
	fields, err := Extract(`<b>Posted On</b>: Oct 5 <b>Skills</b>: Python,  Go ,Rust`)
	require.NoError(t, err)

	normalized := fields.SkillsString()
	assert.Equal(t, "Python, Go, Rust", normalized)
	assert.Equal(t, normalized, strings.Join(splitSkills(normalized), ", "))
}

func TestExtractWithoutPostedOn(t *testing.T) {
	_, err := Extract(`<b>Skills</b>: Go <b>Country</b>: Peru`)
	assert.ErrorIs(t, err, ErrLabelNotFound)
}
