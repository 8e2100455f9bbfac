package utils

import (
	"regexp"
	"strings"
)

// Транслитерация кириллицы для URL slug-ов
var translitMap = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	edgeDashes   = regexp.MustCompile(`^-+|-+$`)
)

// GenerateSlug строит URL slug из имени: транслит кириллицы,
// не-алфавитные символы в дефисы, дефисы по краям срезаются.
func GenerateSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if tr, ok := translitMap[r]; ok {
			b.WriteString(tr)
		} else {
			b.WriteRune(r)
		}
	}

	slug := nonSlugChars.ReplaceAllString(b.String(), "-")
	return edgeDashes.ReplaceAllString(slug, "")
}
