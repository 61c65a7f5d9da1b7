package logic

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a free-text roster into its identity string:
// tokens split on commas or whitespace, trimmed, NFC-normalized, sorted by
// codepoint and joined with ", ". Two rosters with the same multiset of hero
// names produce identical identities regardless of order or spacing. An
// all-empty input yields "", which is the loader's signal to drop a row.
//
// The operation is idempotent: identities pass through unchanged.
func Normalize(raw string) string {
	tokens := SplitRoster(raw)
	if len(tokens) == 0 {
		return ""
	}
	sort.Strings(tokens)
	return strings.Join(tokens, ", ")
}

// SplitRoster breaks a roster string into clean hero-name tokens. Source
// sheets separate names with commas, older ones with bare spaces; both are
// accepted. Empty tokens are discarded.
func SplitRoster(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		tokens = append(tokens, norm.NFC.String(f))
	}
	return tokens
}

// Tokens returns the hero names of an already-normalized identity, in
// identity order. Used for membership tests and hero-chip rendering.
func Tokens(identity string) []string {
	if identity == "" {
		return nil
	}
	parts := strings.Split(identity, ", ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
