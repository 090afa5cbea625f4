// services/log_query.go
package services

import (
	"sort"
	"strings"

	"crusade-tracker/models"
)

// NoDate is the sentinel shown when no dated battle log exists.
const NoDate = "–"

// LogFilter selects battle logs for the campaign log view. Zero-valued
// dimensions match everything. Team matches a log in which the team
// attacked, defended OR won; Result matches the winner exactly
// (including "Draw").
type LogFilter struct {
	Team     string
	PlayerID string
	Result   string
	Search   string
}

// FilterLogs returns the logs matching every supplied dimension, in
// input order. It never mutates its input.
func FilterLogs(logs []models.BattleLog, filter LogFilter) []models.BattleLog {
	search := foldText(strings.TrimSpace(filter.Search))

	var matched []models.BattleLog
	for _, l := range logs {
		if filter.Team != "" && !l.InvolvesTeam(filter.Team) {
			continue
		}
		if filter.PlayerID != "" && !l.InvolvesPlayer(filter.PlayerID) {
			continue
		}
		if filter.Result != "" && l.WinnerTeam != filter.Result {
			continue
		}
		if search != "" {
			haystack := strings.Join([]string{l.SessionName, l.Mission, l.Location, l.Notes}, " ")
			if !strings.Contains(foldText(haystack), search) {
				continue
			}
		}
		matched = append(matched, l)
	}
	return matched
}

// SortLogs returns a copy ordered newest first: date descending by
// plain string comparison (dates are expected in sortable ISO form),
// ties broken by creation timestamp descending. Dateless logs get no
// special placement; the empty string simply compares lowest, so they
// land after every dated log and order among themselves by creation.
func SortLogs(logs []models.BattleLog) []models.BattleLog {
	sorted := make([]models.BattleLog, len(logs))
	copy(sorted, logs)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	return sorted
}

// LatestLogDate is the date of the newest log under SortLogs, or the
// NoDate sentinel when the collection is empty or the newest log
// carries no date.
func LatestLogDate(logs []models.BattleLog) string {
	sorted := SortLogs(logs)
	if len(sorted) == 0 || sorted[0].Date == "" {
		return NoDate
	}
	return sorted[0].Date
}

// TeamRecord is one team's campaign standing. A team participates in a
// battle when it is the attacker or the defender; a win requires the
// winner field to name it, a draw counts for both participants.
type TeamRecord struct {
	Team    string
	Battles int
	Wins    int
	Draws   int
	Losses  int
}

// TeamRecords tallies every team's standing over the given logs, in
// the fixed team display order.
func TeamRecords(logs []models.BattleLog) []TeamRecord {
	records := make([]TeamRecord, len(models.Teams))
	for i, team := range models.Teams {
		records[i].Team = team
	}

	for _, l := range logs {
		for i := range records {
			team := records[i].Team
			if l.AttackerTeam != team && l.DefenderTeam != team {
				continue
			}
			records[i].Battles++
			switch l.WinnerTeam {
			case team:
				records[i].Wins++
			case models.ResultDraw:
				records[i].Draws++
			default:
				records[i].Losses++
			}
		}
	}
	return records
}
