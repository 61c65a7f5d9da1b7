package models

// SpeedOrder is the canonical first/second-strike vocabulary. The answer
// book uses Korean labels; single-character shorthand from older sheets is
// expanded at load time so comparisons are uniform everywhere downstream.
type SpeedOrder string

const (
	SpeedFirst   SpeedOrder = "선공"
	SpeedSecond  SpeedOrder = "후공"
	SpeedUnknown SpeedOrder = ""
)

// CanonicalSpeed expands shorthand speed values ("선", "후") to the full
// two-character form. Unrecognized free text passes through untouched; the
// aggregation layer falls back to a plain mode over those.
func CanonicalSpeed(raw string) string {
	switch raw {
	case "선":
		return string(SpeedFirst)
	case "후":
		return string(SpeedSecond)
	}
	return raw
}

// RoleBasis records from whose perspective a row was logged.
type RoleBasis string

const (
	RoleAttack  RoleBasis = "공격"
	RoleDefense RoleBasis = "방어"
	RoleUnknown RoleBasis = ""
)

// MatchRecord is one historical guild-war engagement after preprocessing.
// DefenseID and AttackID are normalized identities and are never empty;
// rows that normalize to empty are dropped by the loader.
type MatchRecord struct {
	DefenseID string `json:"defense_id"`
	AttackID  string `json:"attack_id"`

	DefenseRaw string `json:"defense_raw"`
	AttackRaw  string `json:"attack_raw"`

	DefensePet   string `json:"defense_pet"`
	DefenseSkill string `json:"defense_skill"`
	AttackPet    string `json:"attack_pet"`
	AttackSkill  string `json:"attack_skill"`

	Speed SpeedOrder `json:"speed"`
	Guild string     `json:"guild"`
	Role  RoleBasis  `json:"role"`
	Date  string     `json:"date"`
}
