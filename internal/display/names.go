package display

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.English)

// Title turns an identifier such as "ley_lines" or "fire-iv" into words.
func Title(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	return titler.String(strings.Join(words, " "))
}

// KindLabel names a resource or cooldown kind for display.
func KindLabel(kind string) string {
	if rest, ok := strings.CutPrefix(kind, "cd_"); ok {
		return Title(rest) + " CD"
	}
	return Title(kind)
}
