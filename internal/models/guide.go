package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SettingItem is one named entry of a structured equipment/setting block.
type SettingItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FlexSetting accepts both shapes guide authors use for the setting field:
// a plain string or a list of {name, description} objects. Mirrors the
// string-or-native coercion the ingest pipeline needs elsewhere: authors are
// external and the shape is not enforced at the source.
type FlexSetting struct {
	Text  string        `json:"text,omitempty"`
	Items []SettingItem `json:"items,omitempty"`
}

func (s *FlexSetting) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		return nil
	}

	// Fast path: free text
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.Text = text
		return nil
	}

	var items []SettingItem
	if err := json.Unmarshal(data, &items); err == nil {
		s.Items = items
		return nil
	}

	return fmt.Errorf("setting: expected string or item list, got %.40s", trimmed)
}

func (s FlexSetting) MarshalJSON() ([]byte, error) {
	if len(s.Items) > 0 {
		return json.Marshal(s.Items)
	}
	return json.Marshal(s.Text)
}

// GuideEntry is an externally authored matchup write-up for one
// (defense, attack) identity pair. The service only reads and re-keys these.
type GuideEntry struct {
	Summary    string      `json:"summary"`
	Formation  string      `json:"formation"`
	Opponent   string      `json:"opponent_notes"`
	Setting    FlexSetting `json:"setting"`
	Tips       string      `json:"tips"`
	Difficulty int         `json:"difficulty"`
}

// ClampDifficulty forces the rating into the documented 0..5 range. Out of
// range values from guide authors are clamped, not rejected.
func (g *GuideEntry) ClampDifficulty() {
	if g.Difficulty < 0 {
		g.Difficulty = 0
	}
	if g.Difficulty > 5 {
		g.Difficulty = 5
	}
}

// GuideDB is the raw shape of the external guide database file:
// defense composition text -> attack composition text -> entry.
type GuideDB map[string]map[string]GuideEntry
