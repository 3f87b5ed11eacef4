// Package naming normalizes project names into Python package identifiers.
package naming

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SnakeCase converts an arbitrary project name into a lowercase identifier
// whose words are separated by a single underscore.
//
// Spaces, hyphens, dots and case changes mark word boundaries, and a run of
// digits is a word of its own ("MyProject2" becomes "my_project_2").
// Accented Latin letters lose their marks; letters with no ASCII form and
// any other punctuation are dropped (see Dropped). The result is empty when
// name has no letters or digits. SnakeCase(SnakeCase(s)) == SnakeCase(s)
// for every s.
func SnakeCase(name string) string {
	var cleaned strings.Builder
	cleaned.Grow(len(name))

	for _, r := range Transliterate(name) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			cleaned.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.' || r == '\t':
			cleaned.WriteRune(' ')
		}
	}

	snaked := strcase.ToSnake(strings.TrimSpace(cleaned.String()))
	return collapse(snaked)
}

// Transliterate strips combining marks so accented Latin letters become
// ASCII ("Ünïcode" becomes "Unicode"). Other runes are left unchanged.
func Transliterate(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, name)
	if err != nil {
		return name
	}
	return out
}

// Dropped returns the letters and digits of name that SnakeCase discards
// because they have no ASCII form. It is empty when nothing is lost.
func Dropped(name string) string {
	var lost strings.Builder
	for _, r := range Transliterate(name) {
		if r > unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			lost.WriteRune(r)
		}
	}
	return lost.String()
}

// collapse squeezes runs of underscores and trims them from both ends.
func collapse(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' })
	return strings.Join(parts, "_")
}

// IsIdentifier reports whether s is a valid Python identifier in normalized form.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	return SnakeCase(s) == s
}
