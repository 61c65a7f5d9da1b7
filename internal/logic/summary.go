package logic

import (
	"fmt"
	"strings"

	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// Summarize renders the top defense groups as plain text for the chat
// assistant's prompt. Limit bounds the number of groups so the prompt stays
// within a sane token budget.
func Summarize(groups []models.DefenseGroup, limit int) string {
	if len(groups) == 0 {
		return "기록된 길드전 데이터가 없습니다."
	}
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}

	var b strings.Builder
	b.WriteString("길드전 방어팀별 추천 공격 조합 통계:\n")
	for i, g := range groups {
		rec := g.Recommended
		fmt.Fprintf(&b, "%d. 방어팀 [%s] (%d건): 추천 공격팀 [%s], 픽률 %.1f%%, 펫 %s(%d회), 스순 %s(%d회)",
			i+1, g.DefenseID, g.Count,
			rec.AttackID, rec.PickRate,
			rec.Pet.Value, rec.Pet.Count,
			rec.Skill.Value, rec.Skill.Count,
		)
		switch {
		case rec.Speed.First > 0 && rec.Speed.Second > 0:
			fmt.Fprintf(&b, ", 속공 선공 %d회 / 후공 %d회", rec.Speed.First, rec.Speed.Second)
		case rec.Speed.First > 0:
			fmt.Fprintf(&b, ", 선공 %d회", rec.Speed.First)
		case rec.Speed.Second > 0:
			fmt.Fprintf(&b, ", 후공 %d회", rec.Speed.Second)
		}
		b.WriteString("\n")
	}
	return b.String()
}
