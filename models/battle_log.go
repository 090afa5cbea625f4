// models/battle_log.go
package models

// BattleLog records one campaign battle between two sides. A side is a
// team plus the set of player ids who fielded armies on it; either set
// may be empty (pick-up games where only the team mattered).
type BattleLog struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt"` // monotonic, tie-break for sorting
	Date      string `json:"date"`      // optional, ISO "2006-01-02" for sortable ordering

	SessionName string `json:"sessionName"`
	Mission     string `json:"mission"`
	Location    string `json:"location"`
	PointsLevel *int   `json:"pointsLevel"` // null when not recorded

	AttackerTeam string `json:"attackerTeam"`
	DefenderTeam string `json:"defenderTeam"`
	WinnerTeam   string `json:"winnerTeam"` // a team or "Draw"

	AttackerPlayerIDs []string `json:"attackerPlayerIds"`
	DefenderPlayerIDs []string `json:"defenderPlayerIds"`

	Notes string `json:"notes"`
}

// InvolvesTeam reports whether team fought on either side or won.
func (l *BattleLog) InvolvesTeam(team string) bool {
	return l.AttackerTeam == team || l.DefenderTeam == team || l.WinnerTeam == team
}

// InvolvesPlayer reports whether the player id appears on either side.
func (l *BattleLog) InvolvesPlayer(playerID string) bool {
	return containsID(l.AttackerPlayerIDs, playerID) || containsID(l.DefenderPlayerIDs, playerID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
