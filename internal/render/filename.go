// Package render turns a canonical model into format artifacts: CSV, XLSX,
// PDF and interchange JSON. Renderers read only the canonical model, never
// the raw draft, so every format agrees on one source of truth.
package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// danish transliterates the letters NFD decomposition cannot reach.
var danish = strings.NewReplacer(
	"æ", "ae", "Æ", "Ae",
	"ø", "oe", "Ø", "Oe",
	"å", "aa", "Å", "Aa",
	"ß", "ss",
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Sanitize reduces a free-form value to a file-name-safe token: diacritics
// stripped, every run of non-alphanumerics collapsed to a single underscore.
func Sanitize(s string) string {
	s = danish.Replace(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	lastUnderscore := true // also trims leading runs
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// BaseName derives the file-name stem from case number and date, falling
// back to "akkordseddel" when the draft carries neither.
func BaseName(caseNumber, date string) string {
	stem := Sanitize(strings.TrimSpace(caseNumber + " " + date))
	if stem == "" {
		return "akkordseddel"
	}
	return stem
}

// FileName appends a lowercased extension to a stem.
func FileName(stem, ext string) string {
	return stem + "." + strings.ToLower(strings.TrimPrefix(ext, "."))
}
