package description

import (
	"strings"

	"github.com/kovalyov-valentin/job-feed-parser/internal/model"
)

const (
	LabelPostedOn    = "Posted On"
	LabelSkills      = "Skills"
	LabelHourlyRange = "Hourly Range"
	LabelCountry     = "Country"
)

// Extract разбирает description одной вакансии.
// Отсутствие отдельных меток ошибкой не считается, поле просто остается nil.
// Ошибка возвращается только если фрагмент не разобрался или в нем нет метки "Posted On",
// без нее невозможно отделить текст вакансии от метаданных
func Extract(raw string) (model.Fields, error) {
	fragment, err := Parse(raw)
	if err != nil {
		return model.Fields{}, err
	}

	var fields model.Fields

	if date, ok := fragment.After(LabelPostedOn); ok {
		fields.Date = &date
	}

	if skills, ok := fragment.After(LabelSkills); ok && skills != "" {
		fields.Skills = splitSkills(skills)
	}

	if budget, ok := fragment.After(LabelHourlyRange); ok && budget != "" {
		fields.Budget = parseBudget(budget)
	}

	if country, ok := fragment.After(LabelCountry); ok {
		fields.Country = &country
	}

	content, err := fragment.Before(LabelPostedOn)
	if err != nil {
		return model.Fields{}, err
	}

	content, budget := splitInlineBudget(content)
	// Бюджет из текста всегда перетирает значение из "Hourly Range"
	if budget != nil {
		fields.Budget = budget
	}
	fields.Content = content

	return fields, nil
}

// "Python,  Go ,Rust" -> ["Python", "Go", "Rust"]
func splitSkills(raw string) []string {
	skills := strings.Split(raw, ",")
	for i, skill := range skills {
		skills[i] = strings.TrimSpace(skill)
	}

	return skills
}

// " $20 - $40 " -> ("$20", "$40"), всё без дефиса остается одним значением
func parseBudget(raw string) *model.Budget {
	low, high, found := strings.Cut(raw, "-")
	low, high = strings.TrimSpace(low), strings.TrimSpace(high)

	if !found || low == "" || high == "" {
		return &model.Budget{Low: strings.TrimSpace(raw)}
	}

	return &model.Budget{Low: low, High: high}
}

// В части лент бюджет лежит прямо в тексте вакансии последним сегментом после двоеточия:
// "Looking for a dev: $500". Такой сегмент забираем в бюджет и выкидываем из текста.
// Заодно убираем хвостовое двоеточие, которое отделяло текст от следующей метки
func splitInlineBudget(content string) (string, *model.Budget) {
	var budget *model.Budget

	segments := strings.Split(content, ":")
	if last := segments[len(segments)-1]; strings.Contains(last, "$") {
		content = strings.Join(segments[:len(segments)-1], ":")
		budget = &model.Budget{Low: strings.TrimSpace(last)}
	}

	content = strings.TrimSpace(content)
	content = strings.TrimSpace(strings.TrimSuffix(content, ":"))

	return content, budget
}
