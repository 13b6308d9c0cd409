package domain

import (
	"strings"
	"time"
	"unicode"
)

// stampLayout formats timestamps for output file names.
const stampLayout = "20060102_150405"

// separatorRunes are replaced with dashes when slugifying.
const separatorRunes = " -_/,.:"

// Slugify lowercases s and reduces it to alphanumerics and single
// dashes, suitable for a file name. An empty result falls back to
// "query".
func Slugify(s string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(ch) || unicode.IsDigit(ch):
			b.WriteRune(ch)
		case strings.ContainsRune(separatorRunes, ch):
			b.WriteByte('-')
		}
	}
	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "query"
	}
	return slug
}

// FileBase returns the standardised output file name (without
// extension) for a query run at time t:
// places_text_<slug>_<YYYYMMDD_HHMMSS>.
func FileBase(query string, t time.Time) string {
	return "places_text_" + Slugify(query) + "_" + t.Format(stampLayout)
}
