package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Вакансия как элемент ленты
type Item struct {
	// Заголовок вакансии
	Title string
	// Ссылка, она же ключ дедупликации
	Link string
	// Сырой фрагмент разметки из поля description
	Description string
	// Категории из ленты, нужны только для фильтрации
	Categories []string
	// Дата публикации в источнике
	Date time.Time
}

// Бюджет вакансии. Либо одно значение, либо диапазон (Low, High)
type Budget struct {
	Low  string
	High string
}

// Диапазоном считаем бюджет с заполненной верхней границей
func (b Budget) IsRange() bool {
	return b.High != ""
}

// Значение для ячейки таблицы. Диапазон пишем json массивом ["$15.00","$35.00"],
// одиночное значение как есть, так что по ячейке всегда понятно, что это было
func (b Budget) Cell() string {
	if !b.IsRange() {
		return b.Low
	}

	cell, _ := json.Marshal([]string{b.Low, b.High})
	return string(cell)
}

// Для людей: "$15.00 - $35.00"
func (b Budget) String() string {
	if b.IsRange() {
		return b.Low + " - " + b.High
	}

	return b.Low
}

// Поля, извлеченные из description.
// nil означает, что метка не была найдена, это не то же самое что пустая строка
type Fields struct {
	Content string
	Skills  []string
	Date    *string
	Budget  *Budget
	Country *string
}

// Навыки в нормализованном виде "Python, Go, Rust"
func (f Fields) SkillsString() string {
	return strings.Join(f.Skills, ", ")
}

// Запись, которую мы сохраняем
type Record struct {
	Title string
	Link  string
	Fields
}

// Порядок колонок в хранилище. Менять нельзя, от него зависит заголовок csv
var Columns = []string{"title", "link", "description", "skills", "date", "budget", "country"}

// Собирает запись из элемента ленты и извлеченных полей
func NewRecord(item Item, fields Fields) Record {
	return Record{
		Title:  item.Title,
		Link:   item.Link,
		Fields: fields,
	}
}

// Ячейки записи в порядке Columns. Отсутствующие поля становятся пустыми ячейками
func (r Record) Row() []string {
	var budget string
	if r.Budget != nil {
		budget = r.Budget.Cell()
	}

	return []string{
		r.Title,
		r.Link,
		r.Content,
		r.SkillsString(),
		lo.FromPtr(r.Date),
		budget,
		lo.FromPtr(r.Country),
	}
}
