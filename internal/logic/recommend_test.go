package logic

import (
	"fmt"
	"testing"

	"github.com/kongssang/guildwar-stats-api/internal/models"
)

func rec(def, atk, atkPet, atkSkill, speed string) models.MatchRecord {
	return models.MatchRecord{
		DefenseID: Normalize(def),
		AttackID:  Normalize(atk),
		AttackPet: atkPet, AttackSkill: atkSkill,
		Speed: models.SpeedOrder(models.CanonicalSpeed(speed)),
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name string
		n    int
		p    float64
		want models.ConfidenceTier
	}{
		{"Tiny Sample", 2, 100, models.TierInsufficient},
		{"Zero Sample", 0, 0, models.TierInsufficient},
		{"Solid Lower Bound", 3, 20, models.TierSolid},
		{"Strong Lower Bound", 10, 30, models.TierStrong},
		{"High Rate Small Sample", 9, 30, models.TierSolid},
		{"High Rate Tiny-ish Sample", 5, 90, models.TierSolid},
		{"Low Rate", 15, 10, models.TierMixed},
		{"Strong Large", 50, 45, models.TierStrong},
		{"Boundary Below Solid", 3, 19.9, models.TierMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confidence(tt.n, tt.p); got != tt.want {
				t.Errorf("Confidence(%d, %.1f) = %q, want %q", tt.n, tt.p, got, tt.want)
			}
		})
	}
}

// The tier must come from the exact pick-rate, not the display-rounded one.
// 68 of 227 is 29.96%, shown as 30.0 — just under the strong gate.
func TestRecommendTierUsesExactRate(t *testing.T) {
	var records []models.MatchRecord
	for i := 0; i < 68; i++ {
		records = append(records, rec("카구라", "여포", "펫A", "", "선"))
	}
	for i := 0; i < 159; i++ {
		records = append(records, rec("카구라", fmt.Sprintf("조합%d", i), "", "", ""))
	}

	groups := Recommend(records)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	g := groups[0]
	if g.Recommended.AttackID != "여포" || g.Count != 227 {
		t.Fatalf("winner = %q (n=%d), want 여포 of 227", g.Recommended.AttackID, g.Count)
	}
	if g.Recommended.PickRate != 30.0 {
		t.Errorf("pick rate = %v, want display-rounded 30.0", g.Recommended.PickRate)
	}
	if g.Recommended.Tier != models.TierSolid {
		t.Errorf("tier = %q, want %q at an exact rate below 30", g.Recommended.Tier, models.TierSolid)
	}
}

// Every (n, p) pair lands in exactly one tier by construction of the switch;
// sweep a grid anyway to catch regressions in the boundary conditions.
func TestConfidenceTotal(t *testing.T) {
	tiers := map[models.ConfidenceTier]bool{
		models.TierInsufficient: true,
		models.TierStrong:       true,
		models.TierSolid:        true,
		models.TierMixed:        true,
	}
	for n := 0; n <= 20; n++ {
		for p := 0.0; p <= 100.0; p += 2.5 {
			if got := Confidence(n, p); !tiers[got] {
				t.Fatalf("Confidence(%d, %.1f) returned unknown tier %q", n, p, got)
			}
		}
	}
}

func TestModalValue(t *testing.T) {
	tests := []struct {
		name      string
		values    []string
		wantValue string
		wantCount int
	}{
		{"Empties Excluded", []string{"A", "A", "B", "", ""}, "A", 2},
		{"All Empty", []string{"", "", ""}, "-", 0},
		{"No Values", nil, "-", 0},
		{"Tie Breaks First Seen", []string{"B", "A", "A", "B"}, "B", 2},
		{"Single", []string{"펫A"}, "펫A", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := modalValue(tt.values)
			if got.Value != tt.wantValue || got.Count != tt.wantCount {
				t.Errorf("modalValue(%v) = {%q %d}, want {%q %d}",
					tt.values, got.Value, got.Count, tt.wantValue, tt.wantCount)
			}
		})
	}
}

func TestSpeedSplit(t *testing.T) {
	t.Run("Mixed Split Surfaced", func(t *testing.T) {
		got := speedSplit([]string{"선공", "선공", "후공"})
		if got.First != 2 || got.Second != 1 {
			t.Errorf("speedSplit = {First:%d Second:%d}, want {First:2 Second:1}", got.First, got.Second)
		}
		if got.Fallback != nil {
			t.Errorf("expected no fallback for canonical values, got %v", got.Fallback)
		}
	})

	t.Run("Legacy Free Text Falls Back", func(t *testing.T) {
		got := speedSplit([]string{"빠르게", "빠르게", "상관없음"})
		if got.First != 0 || got.Second != 0 {
			t.Errorf("expected zero canonical counts, got {%d %d}", got.First, got.Second)
		}
		if got.Fallback == nil || got.Fallback.Value != "빠르게" || got.Fallback.Count != 2 {
			t.Errorf("fallback = %v, want {빠르게 2}", got.Fallback)
		}
	})

	t.Run("All Empty Falls Back To Placeholder", func(t *testing.T) {
		got := speedSplit([]string{"", ""})
		if got.Fallback == nil || got.Fallback.Value != "-" || got.Fallback.Count != 0 {
			t.Errorf("fallback = %v, want {- 0}", got.Fallback)
		}
	})
}

// End-to-end aggregation scenario: 12 records, 7 sharing one defense roster
// (5 of those with the same attack roster and a 4/1 pet split) and 5 sharing
// another.
func TestRecommendEndToEnd(t *testing.T) {
	var records []models.MatchRecord
	// 5x winning attack for 카구라, 에반 (pet 펫A x4, 펫B x1)
	for i := 0; i < 4; i++ {
		records = append(records, rec("카구라, 에반", "오공, 여포", "펫A", "1-2-3", "선공"))
	}
	records = append(records, rec("에반, 카구라", "여포, 오공", "펫B", "1-2-3", "후공"))
	// 2x other attacks against the same defense
	records = append(records, rec("카구라, 에반", "제갈량, 여포", "펫C", "3-2-1", "선공"))
	records = append(records, rec("카구라, 에반", "바포메트", "펫C", "2-1-3", "후공"))
	// 5x a different defense group
	for i := 0; i < 5; i++ {
		records = append(records, rec("마왕, 루시퍼", "오공, 여포", "펫A", "1-1-1", "선공"))
	}

	groups := Recommend(records)
	if len(groups) != 2 {
		t.Fatalf("expected 2 defense groups, got %d", len(groups))
	}

	top := groups[0]
	if top.DefenseID != "에반, 카구라" {
		t.Errorf("top group = %q, want %q", top.DefenseID, "에반, 카구라")
	}
	if top.Count != 7 {
		t.Errorf("top group count = %d, want 7", top.Count)
	}

	best := top.Recommended
	if best.AttackID != "여포, 오공" {
		t.Errorf("recommended attack = %q, want %q", best.AttackID, "여포, 오공")
	}
	if best.PickRate != 71.4 {
		t.Errorf("pick rate = %v, want 71.4", best.PickRate)
	}
	if best.Tier != models.TierSolid {
		t.Errorf("tier = %q, want %q", best.Tier, models.TierSolid)
	}
	if best.Pet.Value != "펫A" || best.Pet.Count != 4 {
		t.Errorf("modal pet = {%q %d}, want {펫A 4}", best.Pet.Value, best.Pet.Count)
	}
	if best.Speed.First != 4 || best.Speed.Second != 1 {
		t.Errorf("speed split = {%d %d}, want {4 1}", best.Speed.First, best.Speed.Second)
	}

	if len(top.Attacks) != 3 {
		t.Fatalf("expected 3 attack breakdowns, got %d", len(top.Attacks))
	}
	if top.Attacks[0].AttackID != "여포, 오공" || top.Attacks[0].Count != 5 {
		t.Errorf("breakdown head = {%q %d}, want {여포, 오공 5}", top.Attacks[0].AttackID, top.Attacks[0].Count)
	}
	// Non-winning rows carry their own ratio of the group.
	if top.Attacks[1].Ratio != 14.3 {
		t.Errorf("second breakdown ratio = %v, want 14.3", top.Attacks[1].Ratio)
	}

	second := groups[1]
	if second.Count != 5 || second.Recommended.PickRate != 100.0 {
		t.Errorf("second group = {count %d, pick %v}, want {5, 100}", second.Count, second.Recommended.PickRate)
	}
}

func TestRecommendGroupTieStable(t *testing.T) {
	records := []models.MatchRecord{
		rec("에반", "오공", "", "", ""),
		rec("마왕", "여포", "", "", ""),
	}
	groups := Recommend(records)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// Equal counts: first-seen defense stays first.
	if groups[0].DefenseID != "에반" || groups[1].DefenseID != "마왕" {
		t.Errorf("tie order = [%q %q], want [에반 마왕]", groups[0].DefenseID, groups[1].DefenseID)
	}
}

func TestRecommendAttackTieFirstSeen(t *testing.T) {
	records := []models.MatchRecord{
		rec("에반", "오공", "", "", ""),
		rec("에반", "여포", "", "", ""),
	}
	groups := Recommend(records)
	if groups[0].Recommended.AttackID != "오공" {
		t.Errorf("attack tie winner = %q, want first-seen 오공", groups[0].Recommended.AttackID)
	}
}

func TestRecommendEmptyInput(t *testing.T) {
	if groups := Recommend(nil); len(groups) != 0 {
		t.Errorf("expected no groups for empty input, got %d", len(groups))
	}
}

func TestSetupTable(t *testing.T) {
	records := []models.MatchRecord{
		{AttackPet: "펫A", AttackSkill: "1-2-3", Speed: "선공", DefensePet: "펫D", DefenseSkill: "3-2-1"},
		{AttackPet: "펫A", AttackSkill: "1-2-3", Speed: "선공", DefensePet: "펫D", DefenseSkill: "3-2-1"},
		{AttackPet: "펫B", AttackSkill: "1-2-3", Speed: "후공", DefensePet: "펫D", DefenseSkill: "3-2-1"},
	}

	rows := SetupTable(records)
	if len(rows) != 2 {
		t.Fatalf("expected 2 setup rows, got %d", len(rows))
	}
	if rows[0].Count != 2 || rows[0].AttackPet != "펫A" {
		t.Errorf("head row = {%q %d}, want {펫A 2}", rows[0].AttackPet, rows[0].Count)
	}
	if rows[1].Count != 1 || rows[1].AttackPet != "펫B" {
		t.Errorf("second row = {%q %d}, want {펫B 1}", rows[1].AttackPet, rows[1].Count)
	}
}

func TestFilterPair(t *testing.T) {
	records := []models.MatchRecord{
		rec("카구라, 에반", "오공, 여포", "펫A", "", ""),
		rec("카구라, 에반", "바포메트", "펫B", "", ""),
		rec("마왕", "오공, 여포", "펫C", "", ""),
	}

	// Raw, unsorted inputs resolve through normalization.
	pair := FilterPair(records, "에반,카구라", "여포 오공")
	if len(pair) != 1 || pair[0].AttackPet != "펫A" {
		t.Errorf("FilterPair matched %d records, want 1 (펫A)", len(pair))
	}
}
