// models/player.go
package models

// Campaign teams. Every player belongs to exactly one.
const (
	TeamDefenders = "Defenders"
	TeamAttackers = "Attackers"
	TeamRaiders   = "Raiders"
)

// ResultDraw is only valid as a battle result, never as a player team.
const ResultDraw = "Draw"

// Teams lists the campaign teams in display order.
var Teams = []string{TeamDefenders, TeamAttackers, TeamRaiders}

// Player is a campaign participant. ID is stable and referenced by
// Unit.PlayerID and by the participant sets on BattleLog.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ArmyName string `json:"armyName"`
	Team     string `json:"team"`
}

// ValidTeam reports whether team is one of the three campaign teams.
func ValidTeam(team string) bool {
	switch team {
	case TeamDefenders, TeamAttackers, TeamRaiders:
		return true
	}
	return false
}

// ValidResult reports whether result is a team or a draw.
func ValidResult(result string) bool {
	return result == ResultDraw || ValidTeam(result)
}
