package logic

import (
	"math"
	"sort"

	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// Recommend groups records by defense identity and produces the ranked
// recommendation list: groups ordered by descending size (ties stable in
// first-seen order), each carrying the most frequent attack composition with
// its pick-rate, confidence tier, modal setting stats and the full
// per-attack breakdown.
//
// The whole pass is pure; anomalies (empty sub-groups, ties, missing
// attributes) resolve to documented fallback values and never error.
func Recommend(records []models.MatchRecord) []models.DefenseGroup {
	byDefense := groupBy(records, func(r models.MatchRecord) string { return r.DefenseID })

	groups := make([]models.DefenseGroup, 0, len(byDefense.keys))
	for _, defense := range byDefense.keys {
		members := byDefense.groups[defense]
		attacks := attackBreakdowns(members)
		if len(attacks) == 0 {
			continue
		}

		// attackBreakdowns sorts by count descending with first-seen
		// tie-break, so the winner is the head row. The tier is
		// classified on the exact rate; Ratio is rounded for display
		// and must not decide a gate.
		best := attacks[0]
		exactRate := float64(best.Count) / float64(len(members)) * 100
		groups = append(groups, models.DefenseGroup{
			DefenseID:     defense,
			DefenseHeroes: Tokens(defense),
			Count:         len(members),
			Recommended: models.Recommendation{
				AttackID:     best.AttackID,
				AttackHeroes: best.AttackHeroes,
				PickRate:     best.Ratio,
				Tier:         Confidence(len(members), exactRate),
				Pet:          best.Pet,
				Skill:        best.Skill,
				Speed:        best.Speed,
			},
			Attacks: attacks,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}

// attackBreakdowns enumerates every distinct attack identity within one
// defense group, most used first. Each row gets its own share of the group
// and its own modal pet/skill/speed, computed identically to the winner's.
func attackBreakdowns(members []models.MatchRecord) []models.AttackBreakdown {
	total := len(members)
	if total == 0 {
		return nil
	}

	byAttack := groupBy(members, func(r models.MatchRecord) string { return r.AttackID })

	rows := make([]models.AttackBreakdown, 0, len(byAttack.keys))
	for _, attack := range byAttack.keys {
		sub := byAttack.groups[attack]
		rows = append(rows, models.AttackBreakdown{
			AttackID:     attack,
			AttackHeroes: Tokens(attack),
			Count:        len(sub),
			Ratio:        round1(float64(len(sub)) / float64(total) * 100),
			Pet:          modalValue(collect(sub, func(r models.MatchRecord) string { return r.AttackPet })),
			Skill:        modalValue(collect(sub, func(r models.MatchRecord) string { return r.AttackSkill })),
			Speed:        speedSplit(collect(sub, func(r models.MatchRecord) string { return string(r.Speed) })),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// SetupTable is the drill-down for one (defense, attack) pair: a frequency
// table over the exact configuration tuple, most frequent first, ties in
// first-seen order. The caller passes records already restricted to the pair.
func SetupTable(records []models.MatchRecord) []models.SetupRow {
	type key struct {
		atkPet, atkSkill, speed, defPet, defSkill string
	}
	counts := make(map[key]int, len(records))
	var order []key
	for _, r := range records {
		k := key{r.AttackPet, r.AttackSkill, string(r.Speed), r.DefensePet, r.DefenseSkill}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	rows := make([]models.SetupRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, models.SetupRow{
			AttackPet:    k.atkPet,
			AttackSkill:  k.atkSkill,
			Speed:        k.speed,
			DefensePet:   k.defPet,
			DefenseSkill: k.defSkill,
			Count:        counts[k],
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// FilterPair selects the records of one (defense, attack) identity pair.
// Inputs are normalized before comparison so callers may pass raw strings.
func FilterPair(records []models.MatchRecord, defense, attack string) []models.MatchRecord {
	defense = Normalize(defense)
	attack = Normalize(attack)
	var out []models.MatchRecord
	for _, r := range records {
		if r.DefenseID == defense && r.AttackID == attack {
			out = append(out, r)
		}
	}
	return out
}

// Confidence classifies a recommendation from sample size n and pick-rate p
// (percent). Exactly one tier applies for every n >= 0, 0 <= p <= 100. High
// pick-rate on a tiny sample does not earn the top badge: strong requires
// ten samples.
func Confidence(n int, p float64) models.ConfidenceTier {
	switch {
	case n < 3:
		return models.TierInsufficient
	case p >= 30 && n >= 10:
		return models.TierStrong
	case p >= 20:
		return models.TierSolid
	default:
		return models.TierMixed
	}
}

// modalValue picks the most frequent non-empty value. Ties resolve to the
// earliest-seen value so results do not depend on map iteration order. With
// no non-empty values it reports the "-" placeholder and a zero count.
func modalValue(values []string) models.ModalValue {
	counts := make(map[string]int, len(values))
	best := models.ModalValue{Value: "-", Count: 0}
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
		if counts[v] > best.Count {
			best = models.ModalValue{Value: v, Count: counts[v]}
		}
	}
	return best
}

// speedSplit counts canonical first/second-strike entries separately; a
// mixed group surfaces both numbers. When neither canonical value appears
// the generic mode over the raw values stands in, covering legacy free-text
// speed entries.
func speedSplit(values []string) models.SpeedSplit {
	split := models.SpeedSplit{}
	for _, v := range values {
		switch models.SpeedOrder(v) {
		case models.SpeedFirst:
			split.First++
		case models.SpeedSecond:
			split.Second++
		}
	}
	if split.First == 0 && split.Second == 0 {
		mv := modalValue(values)
		split.Fallback = &mv
	}
	return split
}

// orderedGroups preserves first-seen key order alongside the grouped rows.
type orderedGroups struct {
	keys   []string
	groups map[string][]models.MatchRecord
}

func groupBy(records []models.MatchRecord, key func(models.MatchRecord) string) orderedGroups {
	og := orderedGroups{groups: make(map[string][]models.MatchRecord)}
	for _, r := range records {
		k := key(r)
		if _, seen := og.groups[k]; !seen {
			og.keys = append(og.keys, k)
		}
		og.groups[k] = append(og.groups[k], r)
	}
	return og
}

func collect(records []models.MatchRecord, field func(models.MatchRecord) string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = field(r)
	}
	return out
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
