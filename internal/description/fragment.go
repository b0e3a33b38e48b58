package description

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Метки считаются найденными только внутри этих элементов
const labelSelector = "b, strong"

// Метки нет во фрагменте. Оборачивается с названием метки, проверять через errors.Is
var ErrLabelNotFound = errors.New("label not found")

// Разобранный фрагмент разметки из поля description
type Fragment struct {
	doc *goquery.Document
}

// Разбирает сырой html из description. Ошибка только если reader не читается,
// кривую разметку html парсер чинит сам
func Parse(raw string) (*Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse description: %w", err)
	}

	return &Fragment{doc: doc}, nil
}

// Значение, которое идет после метки: "<b>Posted On</b>: Oct 5, 2023" -> "Oct 5, 2023".
// Возвращает false, если метки нет или после нее нет ни одного соседа с текстом
func (f *Fragment) After(label string) (string, bool) {
	node := f.findLabel(label)
	if node == nil {
		return "", false
	}

	for sibling := node.NextSibling; sibling != nil; sibling = sibling.NextSibling {
		text := strings.TrimSpace(nodeText(sibling))
		if text == "" {
			continue
		}

		// Отрезаем ровно один разделитель после метки
		return strings.TrimSpace(strings.TrimPrefix(text, ":")), true
	}

	return "", false
}

// Текст, который стоит перед меткой. Учитываются только текстовые узлы того же уровня,
// остальные метки (<b>...</b>) в текст не попадают
func (f *Fragment) Before(label string) (string, error) {
	node := f.findLabel(label)
	if node == nil {
		return "", fmt.Errorf("%w: %q", ErrLabelNotFound, label)
	}

	var parts []string
	for sibling := node.Parent.FirstChild; sibling != nil && sibling != node; sibling = sibling.NextSibling {
		if sibling.Type != html.TextNode {
			continue
		}

		if text := strings.TrimSpace(sibling.Data); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}

// Ищем первый в порядке документа элемент, текст которого содержит метку.
// Если таких несколько, выигрывает первый
func (f *Fragment) findLabel(label string) *html.Node {
	match := f.doc.Find(labelSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), label)
	}).First()

	if match.Length() == 0 {
		return nil
	}

	return match.Get(0)
}

// Текст узла: для текстового узла это он сам, для элемента склеенный текст всех потомков
func nodeText(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return n.Data
	case html.ElementNode:
		var b strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.WriteString(nodeText(c))
		}
		return b.String()
	default:
		return ""
	}
}
