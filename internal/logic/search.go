package logic

// Hero names with known alternate spellings. Terms on either side of an
// entry are mutually substitutable during search, so "오공" finds teams
// recorded as "손오공" and vice versa. Static table; grows as players report
// spellings the matcher misses.
var heroSynonyms = map[string][]string{
	"오공":   {"손오공"},
	"손오공":  {"오공"},
	"카구라":  {"카구야"},
	"카구야":  {"카구라"},
	"여포":   {"려포"},
	"려포":   {"여포"},
	"제갈량":  {"공명"},
	"공명":   {"제갈량"},
	"바포메트": {"바포"},
	"바포":   {"바포메트"},
}

// ParseQuery splits a free-text search input into clean terms. Commas and
// whitespace both separate terms; empty terms are dropped.
func ParseQuery(raw string) []string {
	return SplitRoster(raw)
}

// Matches reports whether a composition identity satisfies every query term.
// A term is satisfied when it, or one of its registered synonyms, equals one
// of the composition's hero tokens. Exact token membership is deliberate: a
// short name must not match inside a longer unrelated one.
func Matches(identity string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	tokens := Tokens(identity)
	if len(tokens) == 0 {
		return false
	}
	members := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		members[tok] = struct{}{}
	}

	for _, term := range terms {
		if !termMatches(term, members) {
			return false
		}
	}
	return true
}

func termMatches(term string, members map[string]struct{}) bool {
	if _, ok := members[term]; ok {
		return true
	}
	for _, alt := range heroSynonyms[term] {
		if _, ok := members[alt]; ok {
			return true
		}
	}
	return false
}
