package logic

import (
	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// GuideIndex resolves (defense, attack) identity pairs to authored matchup
// guides. Keys go through the same normalization as recorded data, so a
// guide written under "여포, 오공" resolves for records keyed "오공, 여포".
// The index is read-only after construction.
type GuideIndex struct {
	entries map[string]map[string]models.GuideEntry
}

// BuildGuideIndex re-keys an external guide database through the roster
// normalizer. When two raw keys collapse to the same identity the later one
// wins; guide authors own deduplication. Entries with an empty normalized
// key on either level are unreachable and skipped.
func BuildGuideIndex(db models.GuideDB) *GuideIndex {
	idx := &GuideIndex{entries: make(map[string]map[string]models.GuideEntry, len(db))}
	for rawDefense, attacks := range db {
		defense := Normalize(rawDefense)
		if defense == "" {
			continue
		}
		inner := idx.entries[defense]
		if inner == nil {
			inner = make(map[string]models.GuideEntry, len(attacks))
			idx.entries[defense] = inner
		}
		for rawAttack, entry := range attacks {
			attack := Normalize(rawAttack)
			if attack == "" {
				continue
			}
			entry.ClampDifficulty()
			inner[attack] = entry
		}
	}
	return idx
}

// Lookup resolves one pair. Most compositions have no authored guide; a
// miss is the normal outcome and returns ok=false.
func (idx *GuideIndex) Lookup(defense, attack string) (models.GuideEntry, bool) {
	inner, ok := idx.entries[Normalize(defense)]
	if !ok {
		return models.GuideEntry{}, false
	}
	entry, ok := inner[Normalize(attack)]
	return entry, ok
}

// Len reports how many defense compositions are present in the index.
func (idx *GuideIndex) Len() int {
	return len(idx.entries)
}
