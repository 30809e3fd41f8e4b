// Package normalize canonicalises free-text locations so that the short
// strings users type ("valencia centro") compare against the descriptive
// location text stored on records ("Plaza del Ayuntamiento, Valencia").
// The logic is pure and isolated so a geocoding-based matcher can replace
// it without touching the aggregator.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Location canonicalises a free-text location: lower-cased, trimmed,
// runs of whitespace collapsed to single spaces, diacritics stripped.
// Total over all strings; the empty string maps to itself.
func Location(text string) string {
	stripped, _, err := transform.String(diacriticStripper, text)
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to the raw text
		// for anything else so the function stays total.
		stripped = text
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}

// Matches reports whether a normalized stored location and a normalized
// query relate: either contains the other, or every query token appears
// inside some stored token. The token clause makes short "city + district"
// queries order-insensitive against descriptive stored text. An empty query
// matches all.
func Matches(stored, query string) bool {
	if query == "" {
		return true
	}
	if stored == "" {
		return false
	}
	if strings.Contains(stored, query) || strings.Contains(query, stored) {
		return true
	}
	return tokensContained(stored, query)
}

func tokensContained(stored, query string) bool {
	storedTokens := strings.Fields(stored)
	for _, queryToken := range strings.Fields(query) {
		found := false
		for _, storedToken := range storedTokens {
			if strings.Contains(storedToken, queryToken) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
