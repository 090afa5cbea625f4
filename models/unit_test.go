package models

import (
	"reflect"
	"testing"
)

func TestSplitKeywords(t *testing.T) {
	got := SplitKeywords(" INFANTRY, ADEPTUS ASTARTES ,,PRIMARIS, ")
	want := []string{"INFANTRY", "ADEPTUS ASTARTES", "PRIMARIS"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplitKeywordsKeepsCaseAndDuplicates(t *testing.T) {
	got := SplitKeywords("Fly,FLY,fly")
	want := []string{"Fly", "FLY", "fly"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplitKeywordsEmpty(t *testing.T) {
	if got := SplitKeywords("  ,  , "); got != nil {
		t.Fatalf("expected no keywords, got %v", got)
	}
}

func TestValidTeam(t *testing.T) {
	for _, team := range Teams {
		if !ValidTeam(team) {
			t.Fatalf("expected %q to be a valid team", team)
		}
	}
	if ValidTeam(ResultDraw) {
		t.Fatal("Draw must not be a valid team")
	}
	if ValidTeam("defenders") {
		t.Fatal("team matching must be exact, not case-insensitive")
	}
}

func TestValidResult(t *testing.T) {
	if !ValidResult(ResultDraw) {
		t.Fatal("Draw must be a valid result")
	}
	if !ValidResult(TeamRaiders) {
		t.Fatal("a team must be a valid result")
	}
	if ValidResult("Winners") {
		t.Fatal("unknown result accepted")
	}
}

func TestNormalizeRank(t *testing.T) {
	cases := map[string]string{
		"HEROIC":           RankHeroic,
		"battle-hardened":  RankBattleHardened,
		" Battle-ready ":   RankBattleReady,
		"Ozark Veteran":    "Ozark Veteran",
		"  Ozark Veteran ": "Ozark Veteran",
	}
	for in, want := range cases {
		if got := NormalizeRank(in); got != want {
			t.Fatalf("NormalizeRank(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestIsWarlord(t *testing.T) {
	u := Unit{Keywords: []string{"INFANTRY", KeywordWarlord}}
	if !u.IsWarlord() {
		t.Fatal("expected warlord")
	}
	u.Keywords = []string{"warlord"}
	if u.IsWarlord() {
		t.Fatal("warlord keyword must match exactly")
	}
}

func TestBattleLogInvolves(t *testing.T) {
	l := BattleLog{
		AttackerTeam:      TeamAttackers,
		DefenderTeam:      TeamDefenders,
		WinnerTeam:        TeamRaiders,
		AttackerPlayerIDs: []string{"p1"},
		DefenderPlayerIDs: []string{"p2", "p3"},
	}
	for _, team := range Teams {
		if !l.InvolvesTeam(team) {
			t.Fatalf("expected log to involve %q", team)
		}
	}
	if l.InvolvesTeam(ResultDraw) {
		t.Fatal("log must not involve Draw")
	}
	if !l.InvolvesPlayer("p3") || l.InvolvesPlayer("p4") {
		t.Fatal("player involvement mismatch")
	}
}
