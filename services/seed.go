// services/seed.go
package services

import (
	"fmt"

	"crusade-tracker/models"
)

// SeedDemo installs the starter roster shipped with the original
// tracker: two players and a datacard each, enough to explore the
// views before real data exists. It refuses to touch a non-empty
// store.
func (s *Store) SeedDemo() error {
	if len(s.players) > 0 || len(s.units) > 0 || len(s.logs) > 0 {
		return fmt.Errorf("%w: store already has data", ErrInvalidValue)
	}

	s.players = []models.Player{
		{ID: "player_nick", Name: "Nick Brown", ArmyName: "Angels of the Ozark", Team: models.TeamDefenders},
		{ID: "player_other", Name: "Other Player", ArmyName: "Hive Fleet Ozarka", Team: models.TeamAttackers},
	}

	s.units = []models.Unit{
		{
			ID:                     "unit_001",
			UnitName:               "Intercessor Squad",
			Faction:                "Space Marines",
			SubfactionOrDetachment: "Ultramarines – Gladius Task Force",
			BattlefieldRole:        models.RoleBattleline,
			Keywords:               []string{"INFANTRY", "ADEPTUS ASTARTES", "PRIMARIS"},
			UniqueName:             "Squad Baelor",
			Points:                 110,
			Models:                 5,
			Experience:             7,
			Rank:                   models.RankBattleHardened,
			CrusadePoints:          2,
			Weapons:                []models.Weapon{},
			Wargear:                []models.Wargear{},
			Upgrades:               []string{},
			Relics:                 []string{},
			BattleHonours:          []models.BattleHonour{},
			BattleScars:            []models.BattleScar{},
			Notes:                  "Painted as 3rd Company; main objective holders.",
			PlayerID:               "player_nick",
			PlayerName:             "Nick Brown",
			ArmyName:               "Angels of the Ozark",
			Team:                   models.TeamDefenders,
			AgendasCompleted:       []string{},
			NotableBattles:         []string{},
			Kills:                  models.Kills{UnitsDestroyed: 4, MonstersOrVehiclesDestroyed: 1},
		},
		{
			ID:                     "unit_002",
			UnitName:               "Hive Tyrant",
			Faction:                "Tyranids",
			SubfactionOrDetachment: "Leviathan",
			BattlefieldRole:        models.RoleOtherDatasheets,
			Keywords:               []string{"MONSTER", "TYRANIDS", "FLY", "SYNAPSE"},
			UniqueName:             "The Ozark Maw",
			Points:                 195,
			Models:                 1,
			Experience:             10,
			Rank:                   models.RankHeroic,
			CrusadePoints:          3,
			Weapons:                []models.Weapon{},
			Wargear:                []models.Wargear{},
			Upgrades:               []string{},
			Relics:                 []string{},
			BattleHonours:          []models.BattleHonour{},
			BattleScars:            []models.BattleScar{},
			PlayerID:               "player_other",
			PlayerName:             "Other Player",
			ArmyName:               "Hive Fleet Ozarka",
			Team:                   models.TeamAttackers,
			AgendasCompleted:       []string{},
			NotableBattles:         []string{},
			Kills:                  models.Kills{UnitsDestroyed: 6, MonstersOrVehiclesDestroyed: 2},
		},
	}

	return s.persist()
}
