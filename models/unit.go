// models/unit.go
package models

import "strings"

// Battlefield roles, as printed on 10th edition datasheets.
const (
	RoleCharacter          = "Character"
	RoleBattleline         = "Battleline"
	RoleDedicatedTransport = "Dedicated Transport"
	RoleOtherDatasheets    = "Other Datasheets"
)

// BattlefieldRoles lists the roles in display order.
var BattlefieldRoles = []string{
	RoleCharacter,
	RoleBattleline,
	RoleDedicatedTransport,
	RoleOtherDatasheets,
}

// Standard Crusade rank labels. Rank is an open enum: unknown labels
// are accepted, but the known ones are normalized to canonical casing
// so "HEROIC" and "Heroic" never coexist as distinct ranks.
const (
	RankBattleReady    = "Battle-ready"
	RankBlooded        = "Blooded"
	RankBattleHardened = "Battle-hardened"
	RankHeroic         = "Heroic"
	RankLegendary      = "Legendary"
)

var Ranks = []string{
	RankBattleReady,
	RankBlooded,
	RankBattleHardened,
	RankHeroic,
	RankLegendary,
}

// KeywordWarlord marks the warlord unit when present in Unit.Keywords.
const KeywordWarlord = "WARLORD"

// Weapon is one row of a datacard's weapon table.
type Weapon struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Profile  string `json:"profile"`
	Keywords string `json:"keywords"`
	Notes    string `json:"notes"`
}

// Wargear is one row of a datacard's wargear/enhancement table.
type Wargear struct {
	Name   string `json:"name"`
	Effect string `json:"effect"`
	Source string `json:"source"`
	Notes  string `json:"notes"`
}

// BattleHonour is a Crusade upgrade earned from battle experience.
type BattleHonour struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Effect        string `json:"effect"`
	SessionEarned string `json:"sessionEarned"`
	Notes         string `json:"notes"`
}

// BattleScar is a lasting injury from a devastating defeat.
type BattleScar struct {
	Name          string `json:"name"`
	Effect        string `json:"effect"`
	SessionEarned string `json:"sessionEarned"`
	Notes         string `json:"notes"`
}

// Kills tallies what a unit has destroyed over the campaign.
type Kills struct {
	UnitsDestroyed              int `json:"unitsDestroyed"`
	MonstersOrVehiclesDestroyed int `json:"monstersOrVehiclesDestroyed"`
}

// Unit is a full Crusade datacard. PlayerName, ArmyName and Team are a
// snapshot of the owning player taken at creation time; they are not
// rewritten when the player record changes later.
type Unit struct {
	ID                     string `json:"id"`
	UnitName               string `json:"unitName"`
	Faction                string `json:"faction"`
	SubfactionOrDetachment string `json:"subfactionOrDetachment"`

	BattlefieldRole string `json:"battlefieldRole"`
	IsEpicHero      bool   `json:"isEpicHero"`

	Keywords   []string `json:"keywords"`
	UniqueName string   `json:"uniqueName"`

	Points int `json:"points"`
	Models int `json:"models"`

	Experience    int    `json:"experience"`
	Rank          string `json:"rank"`
	CrusadePoints int    `json:"crusadePoints"`

	Weapons  []Weapon  `json:"weapons"`
	Wargear  []Wargear `json:"wargear"`
	Upgrades []string  `json:"upgrades"`
	Relics   []string  `json:"relics"`

	BattleHonours []BattleHonour `json:"battleHonours"`
	BattleScars   []BattleScar   `json:"battleScars"`

	Notes string `json:"notes"`
	Image string `json:"image"`

	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	ArmyName   string `json:"armyName"`
	Team       string `json:"team"`

	AgendasCompleted []string `json:"agendasCompleted"`
	NotableBattles   []string `json:"notableBattles"`
	Kills            Kills    `json:"kills"`
}

// ValidBattlefieldRole reports whether role is one of the four roles.
func ValidBattlefieldRole(role string) bool {
	switch role {
	case RoleCharacter, RoleBattleline, RoleDedicatedTransport, RoleOtherDatasheets:
		return true
	}
	return false
}

// NormalizeRank maps known rank labels onto their canonical casing.
// Unknown labels pass through trimmed, preserving their spelling.
func NormalizeRank(rank string) string {
	trimmed := strings.TrimSpace(rank)
	for _, known := range Ranks {
		if strings.EqualFold(trimmed, known) {
			return known
		}
	}
	return trimmed
}

// SplitKeywords parses a comma-separated keyword field: split on ",",
// trim each token, drop empties. Order is preserved and tokens are not
// case-normalized or deduplicated.
func SplitKeywords(raw string) []string {
	var keywords []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			keywords = append(keywords, token)
		}
	}
	return keywords
}

// HasKeyword reports whether the unit carries the given keyword.
func (u *Unit) HasKeyword(keyword string) bool {
	for _, k := range u.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// IsWarlord reports whether the unit is flagged as the army's warlord.
func (u *Unit) IsWarlord() bool {
	return u.HasKeyword(KeywordWarlord)
}
