package markup

import "strings"

// Символы, которые в MarkdownV2 телеграма нужно экранировать
const specialChars = "\\_*[]()~`>#+-=|{}.!"

var replacer = newReplacer(specialChars)

func newReplacer(chars string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(chars))
	for _, c := range chars {
		pairs = append(pairs, string(c), "\\"+string(c))
	}

	return strings.NewReplacer(pairs...)
}

func EscapeForMarkdown(src string) string {
	return replacer.Replace(src)
}
