// Package geozone classifies delivery postcodes as inside or outside
// the M25 zone from their leading postcode-area letters.
package geozone

import "strings"

// Postcode areas and districts inside the M25.
var m25Prefixes = map[string]struct{}{
	"E": {}, "EC": {}, "N": {}, "NW": {}, "SE": {}, "SW": {}, "W": {}, "WC": {},
	"BR": {}, "CR": {}, "DA": {}, "EN": {}, "HA": {}, "IG": {}, "KT": {},
	"RM": {}, "SM": {}, "TW": {}, "UB": {},
}

// WithinM25 reports whether the postcode's leading alphabetic run is a
// known in-zone area code. Matching is case-insensitive, surrounding
// whitespace is ignored, and empty or malformed input is simply
// outside the zone; the function never fails.
func WithinM25(postcode string) bool {
	area := leadingArea(postcode)
	if area == "" {
		return false
	}
	_, ok := m25Prefixes[area]
	return ok
}

// leadingArea extracts the maximal leading run of ASCII letters,
// upper-cased. "se15 3af" -> "SE", "10001" -> "".
func leadingArea(postcode string) string {
	trimmed := strings.TrimSpace(postcode)

	end := 0
	for end < len(trimmed) {
		c := trimmed[end]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			break
		}
		end++
	}
	return strings.ToUpper(trimmed[:end])
}
