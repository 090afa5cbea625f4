package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"crusade-tracker/models"
)

func testSnapshot() Snapshot {
	level := 1000
	return Snapshot{
		Players: []models.Player{
			{ID: "p1", Name: "Nick Brown", ArmyName: "Angels of the Ozark", Team: models.TeamDefenders},
			{ID: "p2", Name: "Other Player", ArmyName: "Hive Fleet Ozarka", Team: models.TeamAttackers},
		},
		Units: []models.Unit{
			{
				ID: "u1", UnitName: "Intercessor Squad", Faction: "Space Marines",
				BattlefieldRole: models.RoleBattleline,
				Keywords:        []string{"INFANTRY", "PRIMARIS"},
				Points:          110, Models: 5, Rank: models.RankBattleHardened,
				Weapons:  []models.Weapon{{Name: "Bolt rifle", Profile: "24\" A2"}},
				Wargear:  []models.Wargear{},
				Upgrades: []string{}, Relics: []string{},
				BattleHonours: []models.BattleHonour{{Name: "Grizzled", Effect: "Ignore first scar"}},
				BattleScars:   []models.BattleScar{},
				PlayerID:      "p1", PlayerName: "Nick Brown",
				ArmyName: "Angels of the Ozark", Team: models.TeamDefenders,
				AgendasCompleted: []string{}, NotableBattles: []string{},
				Kills: models.Kills{UnitsDestroyed: 4, MonstersOrVehiclesDestroyed: 1},
			},
		},
		Logs: []models.BattleLog{
			{
				ID: "l1", CreatedAt: 1700000000000, Date: "2024-05-01",
				SessionName: "Opening Moves", Mission: "Take and Hold",
				PointsLevel:  &level,
				AttackerTeam: models.TeamAttackers, DefenderTeam: models.TeamDefenders,
				WinnerTeam:        models.TeamDefenders,
				AttackerPlayerIDs: []string{"p2"}, DefenderPlayerIDs: []string{"p1"},
			},
		},
	}
}

func openTestGateway(t *testing.T) *Gateway {
	t.Helper()
	gw, err := Open(filepath.Join(t.TempDir(), "crusade.db"))
	if err != nil {
		t.Fatalf("open gateway: %v", err)
	}
	t.Cleanup(func() { gw.Close() })
	return gw
}

func TestGatewayRoundTrip(t *testing.T) {
	gw := openTestGateway(t)
	snap := testSnapshot()

	if err := gw.Save(snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := gw.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !reflect.DeepEqual(loaded.Players, snap.Players) {
		t.Fatalf("players round trip:\n%+v\n%+v", loaded.Players, snap.Players)
	}
	if !reflect.DeepEqual(loaded.Units, snap.Units) {
		t.Fatalf("units round trip:\n%+v\n%+v", loaded.Units, snap.Units)
	}
	if !reflect.DeepEqual(loaded.Logs, snap.Logs) {
		t.Fatalf("logs round trip:\n%+v\n%+v", loaded.Logs, snap.Logs)
	}
}

func TestGatewayLoadEmpty(t *testing.T) {
	gw := openTestGateway(t)

	snap, err := gw.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Players) != 0 || len(snap.Units) != 0 || len(snap.Logs) != 0 {
		t.Fatalf("fresh store must be empty: %+v", snap)
	}
}

func TestGatewaySaveOverwrites(t *testing.T) {
	gw := openTestGateway(t)

	if err := gw.Save(testSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := gw.Save(Snapshot{}); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	snap, err := gw.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Players) != 0 || len(snap.Units) != 0 || len(snap.Logs) != 0 {
		t.Fatalf("second save must overwrite, got %+v", snap)
	}
}

func TestGatewayCorruptKeyIsolated(t *testing.T) {
	gw := openTestGateway(t)

	if err := gw.Save(testSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Corrupt only the units key behind the gateway's back.
	if err := gw.db.Save(&Entry{Key: KeyUnits, Value: "{definitely not an array"}).Error; err != nil {
		t.Fatalf("corrupt units key: %v", err)
	}

	snap, err := gw.Load()
	if err != nil {
		t.Fatalf("load must recover from a corrupt key: %v", err)
	}
	if len(snap.Units) != 0 {
		t.Fatalf("corrupt collection must reset to empty, got %d units", len(snap.Units))
	}
	if len(snap.Players) != 2 || len(snap.Logs) != 1 {
		t.Fatalf("other collections must be unaffected: %d players, %d logs", len(snap.Players), len(snap.Logs))
	}
}
