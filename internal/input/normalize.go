package input

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalize folds case, strips diacritics and collapses inner whitespace so
// "  Calça " and "CALCA" compare equal. Casers are stateful, so each call
// builds its own.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(cases.Fold().String(out)), " ")
}

// lookup builds a normalized-name index over canonical values and aliases
func lookup[T ~string](values []T, aliases map[string]T) map[string]T {
	idx := make(map[string]T, len(values)+len(aliases))
	for _, v := range values {
		idx[normalize(string(v))] = v
	}
	for alias, v := range aliases {
		idx[normalize(alias)] = v
	}
	return idx
}
