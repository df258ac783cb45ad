// Package textnorm folds free text coming from feeds into comparable ASCII-ish form.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters which don't decompose into base letter and combining mark.
var replacer = strings.NewReplacer(
	"ı", "i",
	"İ", "i",
	"ß", "ss",
	"æ", "ae",
	"ø", "o",
	"đ", "d",
	"ł", "l",
)

// Fold lowercases s and strips diacritics from its letters ("Açıklama" becomes "aciklama").
func Fold(s string) string {
	s = replacer.Replace(s)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.ToLower(folded)
}

// StripSeparators removes everything but letters and digits from s.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
