package logic

import (
	"sort"

	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// Filters is the externally-owned filter state for one dashboard render
// pass. The core holds no filter state of its own.
type Filters struct {
	// Search terms matched against the defense identity, AND semantics.
	Search []string
	// Dates keeps only records whose date is in the set. Empty = all.
	Dates []string
	// Guilds keeps only records against the named guilds. Selecting guilds
	// also restricts to rows logged from the attack perspective, matching
	// how the answer book is read when scouting a specific opponent.
	Guilds []string
}

// Apply filters a snapshot down to the records one render pass aggregates.
func (f Filters) Apply(records []models.MatchRecord) []models.MatchRecord {
	dates := toSet(f.Dates)
	guilds := toSet(f.Guilds)

	out := make([]models.MatchRecord, 0, len(records))
	for _, r := range records {
		if len(f.Search) > 0 && !Matches(r.DefenseID, f.Search) {
			continue
		}
		if dates != nil {
			if _, ok := dates[r.Date]; !ok {
				continue
			}
		}
		if guilds != nil {
			if _, ok := guilds[r.Guild]; !ok {
				continue
			}
			if r.Role != models.RoleAttack {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// FilterValues lists the selectable filter values: distinct dates sorted
// newest-first (string order — dates are display labels, not parsed), and
// distinct non-empty guild names sorted ascending.
func FilterValues(records []models.MatchRecord) ([]string, []string) {
	dateSet := make(map[string]struct{})
	guildSet := make(map[string]struct{})
	for _, r := range records {
		dateSet[r.Date] = struct{}{}
		if r.Guild != "" {
			guildSet[r.Guild] = struct{}{}
		}
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	guilds := make([]string, 0, len(guildSet))
	for g := range guildSet {
		guilds = append(guilds, g)
	}
	sort.Strings(guilds)

	return dates, guilds
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
