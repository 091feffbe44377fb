package sanitizer

import (
	"strings"
	"unicode"
)

// CapitalizeWords нормализует ФИО: первая буква каждого слова заглавная,
// остальные строчные. Внутренние пробелы сохраняются как есть, чтобы
// нормализация была обратимой по позициям символов.
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}

	runes := []rune(word)
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// TrimAndNormalize убирает ведущие/замыкающие пробелы и схлопывает
// последовательности пробельных символов в один пробел
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var (
		b            strings.Builder
		lastWasSpace bool
	)
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(r)
			lastWasSpace = false
		}
	}
	return b.String()
}
