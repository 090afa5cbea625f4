package services

import (
	"reflect"
	"testing"

	"crusade-tracker/models"
)

func testLogs() []models.BattleLog {
	return []models.BattleLog{
		{
			ID: "l1", Date: "2024-05-01", CreatedAt: 100,
			SessionName: "Opening Moves", Mission: "Take and Hold", Location: "Dan's garage",
			AttackerTeam: models.TeamAttackers, DefenderTeam: models.TeamDefenders,
			WinnerTeam:        models.TeamDefenders,
			AttackerPlayerIDs: []string{"p2"}, DefenderPlayerIDs: []string{"p1"},
		},
		{
			ID: "l2", Date: "2024-05-01", CreatedAt: 200,
			SessionName: "Counterattack", Mission: "Purge the Foe",
			AttackerTeam: models.TeamRaiders, DefenderTeam: models.TeamDefenders,
			WinnerTeam:        models.ResultDraw,
			AttackerPlayerIDs: []string{"p3"}, DefenderPlayerIDs: []string{},
			Notes: "Bloody stalemate in the ruins",
		},
		{
			ID: "l3", Date: "2024-06-01", CreatedAt: 50,
			SessionName: "The Ozark Maw Rises", Mission: "Priority Targets",
			AttackerTeam: models.TeamAttackers, DefenderTeam: models.TeamRaiders,
			WinnerTeam:        models.TeamAttackers,
			AttackerPlayerIDs: []string{"p2"}, DefenderPlayerIDs: []string{"p3"},
		},
	}
}

func logIDs(logs []models.BattleLog) []string {
	ids := make([]string, len(logs))
	for i, l := range logs {
		ids[i] = l.ID
	}
	return ids
}

func TestFilterLogsTeamMatchesAnyField(t *testing.T) {
	logs := testLogs()

	// Defenders never attacked, but defended twice and won once.
	if got := logIDs(FilterLogs(logs, LogFilter{Team: models.TeamDefenders})); !reflect.DeepEqual(got, []string{"l1", "l2"}) {
		t.Fatalf("team filter must OR across attacker/defender/winner: %v", got)
	}
	// Attackers appear as attacker and winner.
	if got := logIDs(FilterLogs(logs, LogFilter{Team: models.TeamAttackers})); !reflect.DeepEqual(got, []string{"l1", "l3"}) {
		t.Fatalf("team filter: %v", got)
	}
}

func TestFilterLogsPlayerAndResult(t *testing.T) {
	logs := testLogs()

	if got := logIDs(FilterLogs(logs, LogFilter{PlayerID: "p2"})); !reflect.DeepEqual(got, []string{"l1", "l3"}) {
		t.Fatalf("player filter: %v", got)
	}
	if got := logIDs(FilterLogs(logs, LogFilter{Result: models.ResultDraw})); !reflect.DeepEqual(got, []string{"l2"}) {
		t.Fatalf("result filter must match winner exactly: %v", got)
	}
	if got := logIDs(FilterLogs(logs, LogFilter{Result: models.TeamDefenders})); !reflect.DeepEqual(got, []string{"l1"}) {
		t.Fatalf("result filter: %v", got)
	}
}

func TestFilterLogsSearch(t *testing.T) {
	logs := testLogs()

	if got := logIDs(FilterLogs(logs, LogFilter{Search: "purge"})); !reflect.DeepEqual(got, []string{"l2"}) {
		t.Fatalf("search over mission: %v", got)
	}
	if got := logIDs(FilterLogs(logs, LogFilter{Search: "GARAGE"})); !reflect.DeepEqual(got, []string{"l1"}) {
		t.Fatalf("search over location, case-insensitive: %v", got)
	}
	if got := logIDs(FilterLogs(logs, LogFilter{Search: "stalemate"})); !reflect.DeepEqual(got, []string{"l2"}) {
		t.Fatalf("search over notes: %v", got)
	}
}

func TestSortLogsDateThenCreated(t *testing.T) {
	logs := testLogs()

	sorted := SortLogs(logs)
	if got := logIDs(sorted); !reflect.DeepEqual(got, []string{"l3", "l2", "l1"}) {
		t.Fatalf("expected l3,l2,l1 (date desc, createdAt desc), got %v", got)
	}
	// Input untouched.
	if got := logIDs(logs); !reflect.DeepEqual(got, []string{"l1", "l2", "l3"}) {
		t.Fatalf("SortLogs must not mutate its input: %v", got)
	}
}

func TestSortLogsDatelessFallThrough(t *testing.T) {
	logs := []models.BattleLog{
		{ID: "a", Date: "", CreatedAt: 300},
		{ID: "b", Date: "2024-05-01", CreatedAt: 100},
		{ID: "c", Date: "", CreatedAt: 400},
	}
	// The empty string compares lowest, so dateless logs land after
	// dated ones, newest creation first.
	if got := logIDs(SortLogs(logs)); !reflect.DeepEqual(got, []string{"b", "c", "a"}) {
		t.Fatalf("dateless ordering: %v", got)
	}
}

func TestLatestLogDate(t *testing.T) {
	if got := LatestLogDate(testLogs()); got != "2024-06-01" {
		t.Fatalf("expected 2024-06-01, got %q", got)
	}
	if got := LatestLogDate(nil); got != NoDate {
		t.Fatalf("expected %q for empty collection, got %q", NoDate, got)
	}
	dateless := []models.BattleLog{{ID: "a", CreatedAt: 10}}
	if got := LatestLogDate(dateless); got != NoDate {
		t.Fatalf("expected %q when the newest log has no date, got %q", NoDate, got)
	}
}

func TestTeamRecords(t *testing.T) {
	records := TeamRecords(testLogs())
	byTeam := make(map[string]TeamRecord)
	for _, r := range records {
		byTeam[r.Team] = r
	}

	def := byTeam[models.TeamDefenders]
	if def.Battles != 2 || def.Wins != 1 || def.Draws != 1 || def.Losses != 0 {
		t.Fatalf("defenders record wrong: %+v", def)
	}
	att := byTeam[models.TeamAttackers]
	if att.Battles != 2 || att.Wins != 1 || att.Losses != 1 {
		t.Fatalf("attackers record wrong: %+v", att)
	}
	raid := byTeam[models.TeamRaiders]
	if raid.Battles != 2 || raid.Wins != 0 || raid.Draws != 1 || raid.Losses != 1 {
		t.Fatalf("raiders record wrong: %+v", raid)
	}
}
