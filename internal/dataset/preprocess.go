package dataset

import (
	"strings"

	"github.com/kongssang/guildwar-stats-api/internal/logic"
	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// Logical column headers as they appear in the answer book.
const (
	colDefense      = "방어팀"
	colAttack       = "공격팀"
	colDefensePet   = "방어팀 펫"
	colDefenseSkill = "방어팀 스순"
	colAttackPet    = "공격팀 펫"
	colAttackSkill  = "공격팀 스순"
	colSpeed        = "속공"
	colGuild        = "상대 길드"
	colRole         = "기준"
	colDate         = "날짜"
)

// dateUnknown labels rows from sheets that predate the date column.
const dateUnknown = "Unknown"

// LoadStats accounts for rows excluded during cleaning, so "N rows in,
// M rows after" is always assertable.
type LoadStats struct {
	RowsRead    int `json:"rows_read"`
	RowsKept    int `json:"rows_kept"`
	RowsDropped int `json:"rows_dropped"`
}

// preprocess turns a raw parsed sheet into cleaned MatchRecords. Roster
// columns go through the normalizer; auxiliary columns are schema-tolerant
// (a column missing from the physical file reads as empty for every row);
// speed shorthand is expanded; spreadsheet ".0" date artifacts are stripped.
// Rows whose defense or attack identity normalizes to empty are dropped
// silently and counted.
func preprocess(t *table) ([]models.MatchRecord, LoadStats) {
	cols := newColumnMap(t.header)
	hasDate := cols.has(colDate)

	stats := LoadStats{RowsRead: len(t.rows)}
	records := make([]models.MatchRecord, 0, len(t.rows))
	for _, row := range t.rows {
		defRaw := cols.get(row, colDefense)
		atkRaw := cols.get(row, colAttack)
		defID := logic.Normalize(defRaw)
		atkID := logic.Normalize(atkRaw)
		if defID == "" || atkID == "" {
			stats.RowsDropped++
			continue
		}

		date := dateUnknown
		if hasDate {
			if d := cleanDate(cols.get(row, colDate)); d != "" {
				date = d
			}
		}

		records = append(records, models.MatchRecord{
			DefenseID:    defID,
			AttackID:     atkID,
			DefenseRaw:   strings.TrimSpace(defRaw),
			AttackRaw:    strings.TrimSpace(atkRaw),
			DefensePet:   cols.get(row, colDefensePet),
			DefenseSkill: cols.get(row, colDefenseSkill),
			AttackPet:    cols.get(row, colAttackPet),
			AttackSkill:  cols.get(row, colAttackSkill),
			Speed:        models.SpeedOrder(models.CanonicalSpeed(cols.get(row, colSpeed))),
			Guild:        cols.get(row, colGuild),
			Role:         models.RoleBasis(cols.get(row, colRole)),
			Date:         date,
		})
	}
	stats.RowsKept = len(records)
	return records, stats
}

// cleanDate strips the trailing ".0" that spreadsheet numeric coercion
// leaves on date-like values.
func cleanDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, ".0") {
		raw = strings.TrimSuffix(raw, ".0")
	}
	return raw
}

// columnMap maps header names to indexes. Lookups for absent columns yield
// empty strings, never errors.
type columnMap map[string]int

func newColumnMap(header []string) columnMap {
	m := make(columnMap, len(header))
	for i, name := range header {
		m[strings.TrimSpace(name)] = i
	}
	return m
}

func (m columnMap) has(name string) bool {
	_, ok := m[name]
	return ok
}

func (m columnMap) get(row []string, name string) string {
	idx, ok := m[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
