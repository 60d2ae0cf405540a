package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// accented letters accepted in category names, beyond ASCII
const accentedLetters = "áéíóúÁÉÍÓÚñÑüÜ"

func isAllowedNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '-', r == '/':
		return true
	}
	return strings.ContainsRune(accentedLetters, r)
}

// NormalizeCategoryName sanitizes a user-proposed category name: trim,
// drop everything but letters (incl. accented), digits, spaces,
// hyphens and slashes, collapse whitespace, then Title-Case each word.
// Returns "" when nothing usable remains.
func NormalizeCategoryName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		if isAllowedNameRune(r) {
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	if len(words) == 0 {
		return ""
	}

	for i, w := range words {
		words[i] = titleCaseWord(w)
	}
	return strings.Join(words, " ")
}

func titleCaseWord(w string) string {
	runes := []rune(w)
	out := make([]rune, 0, len(runes))
	out = append(out, unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}

// Slugify derives the URL-safe, globally unique identifier from a
// display name: lowercase, diacritics stripped, runs of
// non-alphanumerics collapsed to "-", leading/trailing "-" trimmed.
func Slugify(name string) string {
	lower := strings.ToLower(name)
	stripped := stripDiacritics(lower)

	var b strings.Builder
	lastDash := false
	for _, r := range stripped {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// stripDiacritics decomposes to NFD and drops combining marks, so
// "Plomería" slugs to "plomeria".
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
