// services/roster_query.go
package services

import (
	"strings"

	"crusade-tracker/models"

	"golang.org/x/text/cases"
)

// MaxKillPips is the number of kill markers a datacard displays. Kill
// tallies past the cap saturate; the raw total stays available via
// TotalKills.
const MaxKillPips = 5

// UnitFilter selects units for a roster view. Zero-valued dimensions
// match everything. Search is matched case-insensitively against the
// space-joined unit name, unique name, faction and army name.
type UnitFilter struct {
	Team     string
	PlayerID string
	Role     string
	Search   string
}

// FilterUnits returns the units matching every supplied dimension, in
// input order. It never mutates its input.
func FilterUnits(units []models.Unit, filter UnitFilter) []models.Unit {
	search := foldText(strings.TrimSpace(filter.Search))

	var matched []models.Unit
	for _, u := range units {
		if filter.PlayerID != "" && u.PlayerID != filter.PlayerID {
			continue
		}
		if filter.Team != "" && u.Team != filter.Team {
			continue
		}
		if filter.Role != "" && u.BattlefieldRole != filter.Role {
			continue
		}
		if search != "" {
			haystack := strings.Join([]string{u.UnitName, u.UniqueName, u.Faction, u.ArmyName}, " ")
			if !strings.Contains(foldText(haystack), search) {
				continue
			}
		}
		matched = append(matched, u)
	}
	return matched
}

// PlayerGroup is one player's block of the roster view, carrying the
// snapshot details of its first unit.
type PlayerGroup struct {
	PlayerID   string
	PlayerName string
	ArmyName   string
	Team       string
	Units      []models.Unit
}

// GroupUnitsByPlayer partitions units into per-player groups. Group
// order is the order of each player's first appearance; units inside a
// group keep their input order.
func GroupUnitsByPlayer(units []models.Unit) []PlayerGroup {
	var groups []PlayerGroup
	index := make(map[string]int)

	for _, u := range units {
		i, ok := index[u.PlayerID]
		if !ok {
			i = len(groups)
			index[u.PlayerID] = i
			groups = append(groups, PlayerGroup{
				PlayerID:   u.PlayerID,
				PlayerName: u.PlayerName,
				ArmyName:   u.ArmyName,
				Team:       u.Team,
			})
		}
		groups[i].Units = append(groups[i].Units, u)
	}
	return groups
}

// TotalKills is the unit's combined kill tally.
func TotalKills(u models.Unit) int {
	return u.Kills.UnitsDestroyed + u.Kills.MonstersOrVehiclesDestroyed
}

// KillPips is the number of filled kill markers on the datacard:
// the total tally, saturating at MaxKillPips.
func KillPips(u models.Unit) int {
	total := TotalKills(u)
	if total > MaxKillPips {
		return MaxKillPips
	}
	return total
}

// RosterSummary aggregates one player's roster for the campaign
// overview: datacard count, points, kills, honours and scars.
type RosterSummary struct {
	PlayerID   string
	PlayerName string
	ArmyName   string
	Team       string

	UnitCount   int
	TotalPoints int
	TotalKills  int
	Honours     int
	Scars       int
}

// SummarizeRoster folds units into per-player summaries, in order of
// first appearance.
func SummarizeRoster(units []models.Unit) []RosterSummary {
	var summaries []RosterSummary
	index := make(map[string]int)

	for _, u := range units {
		i, ok := index[u.PlayerID]
		if !ok {
			i = len(summaries)
			index[u.PlayerID] = i
			summaries = append(summaries, RosterSummary{
				PlayerID:   u.PlayerID,
				PlayerName: u.PlayerName,
				ArmyName:   u.ArmyName,
				Team:       u.Team,
			})
		}
		summaries[i].UnitCount++
		summaries[i].TotalPoints += u.Points
		summaries[i].TotalKills += TotalKills(u)
		summaries[i].Honours += len(u.BattleHonours)
		summaries[i].Scars += len(u.BattleScars)
	}
	return summaries
}

// foldText normalizes text for case-insensitive matching. Unicode case
// folding rather than a plain lower-casing, so non-ASCII army names
// match too.
func foldText(s string) string {
	return cases.Fold().String(s)
}
