package models

// ConfidenceTier classifies how trustworthy a recommendation is, as a pure
// function of sample size and pick-rate.
type ConfidenceTier string

const (
	TierInsufficient ConfidenceTier = "insufficient"
	TierStrong       ConfidenceTier = "strong"
	TierSolid        ConfidenceTier = "solid"
	TierMixed        ConfidenceTier = "mixed"
)

// ModalValue is the most frequent non-empty value of one attribute within a
// record subset. Value is "-" with Count 0 when nothing non-empty remains.
type ModalValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SpeedSplit reports first-strike and second-strike counts side by side. A
// group can genuinely be split between the two; both counts are surfaced
// instead of collapsing to a single mode. Fallback carries legacy free-text
// speed values that never matched the canonical vocabulary.
type SpeedSplit struct {
	First    int         `json:"first"`
	Second   int         `json:"second"`
	Fallback *ModalValue `json:"fallback,omitempty"`
}

// Recommendation is the winning attack composition for one defense group.
type Recommendation struct {
	AttackID     string         `json:"attack_id"`
	AttackHeroes []string       `json:"attack_heroes"`
	PickRate     float64        `json:"pick_rate"`
	Tier         ConfidenceTier `json:"tier"`
	Pet          ModalValue     `json:"pet"`
	Skill        ModalValue     `json:"skill"`
	Speed        SpeedSplit     `json:"speed"`
}

// AttackBreakdown is one observed attack composition within a defense group,
// with its own share and modal setting stats.
type AttackBreakdown struct {
	AttackID     string     `json:"attack_id"`
	AttackHeroes []string   `json:"attack_heroes"`
	Count        int        `json:"count"`
	Ratio        float64    `json:"ratio"`
	Pet          ModalValue `json:"pet"`
	Skill        ModalValue `json:"skill"`
	Speed        SpeedSplit `json:"speed"`
}

// DefenseGroup is the aggregated view of all records sharing one defense
// identity, ordered by descending Count in API responses.
type DefenseGroup struct {
	DefenseID     string            `json:"defense_id"`
	DefenseHeroes []string          `json:"defense_heroes"`
	Count         int               `json:"count"`
	Recommended   Recommendation    `json:"recommended"`
	Attacks       []AttackBreakdown `json:"attacks"`
}

// SetupRow is the finest-grained reporting unit: one exact configuration
// tuple observed for a (defense, attack) pair and how often it occurred.
type SetupRow struct {
	AttackPet    string `json:"attack_pet"`
	AttackSkill  string `json:"attack_skill"`
	Speed        string `json:"speed"`
	DefensePet   string `json:"defense_pet"`
	DefenseSkill string `json:"defense_skill"`
	Count        int    `json:"count"`
}
