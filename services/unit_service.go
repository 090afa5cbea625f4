// services/unit_service.go
package services

import (
	"fmt"
	"strings"

	"crusade-tracker/models"

	"github.com/google/uuid"
)

// UnitInput carries the scalar fields of the datacard form. Keywords
// is the raw comma-separated field as typed; sub-entry rows (weapons,
// wargear, honours, scars) are staged on a UnitDraft instead.
type UnitInput struct {
	UnitName               string
	Faction                string
	SubfactionOrDetachment string

	BattlefieldRole string
	IsEpicHero      bool

	Keywords   string
	UniqueName string

	Points int
	Models int

	Experience    int
	Rank          string
	CrusadePoints int

	Notes string
	Image string

	PlayerID string
}

// CreateUnit adds a datacard with no staged sub-entries. The owning
// player must exist; their name, army and team are copied onto the
// unit as a creation-time snapshot.
func (s *Store) CreateUnit(input UnitInput) (models.Unit, error) {
	return s.CommitDraft(NewUnitDraft(input))
}

// UpdateUnit replaces every editable field of an existing datacard
// from the draft. Identity (id, playerId) and the denormalized player
// snapshot are preserved from the existing record, as are the kill
// tallies and the earned-history lists (upgrades, relics, agendas,
// notable battles); everything else is taken from the draft, with the
// same validation as creation.
func (s *Store) UpdateUnit(id string, draft *UnitDraft) (models.Unit, error) {
	if err := validateUnitInput(&draft.input); err != nil {
		return models.Unit{}, err
	}

	for i := range s.units {
		if s.units[i].ID != id {
			continue
		}
		existing := s.units[i]
		unit := draft.build()
		unit.ID = existing.ID
		unit.PlayerID = existing.PlayerID
		unit.PlayerName = existing.PlayerName
		unit.ArmyName = existing.ArmyName
		unit.Team = existing.Team
		unit.Kills = existing.Kills
		unit.Upgrades = existing.Upgrades
		unit.Relics = existing.Relics
		unit.AgendasCompleted = existing.AgendasCompleted
		unit.NotableBattles = existing.NotableBattles
		s.units[i] = unit
		return unit, s.persist()
	}
	return models.Unit{}, fmt.Errorf("%w: unit %q", ErrNotFound, id)
}

// DeleteUnit removes a datacard. Units are referenced nowhere else, so
// there is no cascade.
func (s *Store) DeleteUnit(id string) error {
	for i := range s.units {
		if s.units[i].ID == id {
			s.units = append(s.units[:i], s.units[i+1:]...)
			return s.persist()
		}
	}
	return fmt.Errorf("%w: unit %q", ErrNotFound, id)
}

// AddUnitKills bumps a unit's kill tallies by the given amounts.
func (s *Store) AddUnitKills(id string, units, monstersOrVehicles int) (models.Unit, error) {
	if units < 0 || monstersOrVehicles < 0 {
		return models.Unit{}, fmt.Errorf("%w: kill increments must be non-negative", ErrInvalidValue)
	}
	for i := range s.units {
		if s.units[i].ID == id {
			s.units[i].Kills.UnitsDestroyed += units
			s.units[i].Kills.MonstersOrVehiclesDestroyed += monstersOrVehicles
			return s.units[i], s.persist()
		}
	}
	return models.Unit{}, fmt.Errorf("%w: unit %q", ErrNotFound, id)
}

// UnitDraft stages a datacard before it is committed. Sub-entry rows
// are appended one at a time, each validated on its own; a row missing
// its mandatory fields is rejected without touching the staged list.
// Row order is display order.
type UnitDraft struct {
	input UnitInput

	weapons []models.Weapon
	wargear []models.Wargear
	honours []models.BattleHonour
	scars   []models.BattleScar
}

// NewUnitDraft starts a draft from the scalar form fields.
func NewUnitDraft(input UnitInput) *UnitDraft {
	return &UnitDraft{input: input}
}

// AddWeapon stages a weapon row; name and profile are mandatory.
func (d *UnitDraft) AddWeapon(w models.Weapon) error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: weapon name", ErrMissingField)
	}
	if strings.TrimSpace(w.Profile) == "" {
		return fmt.Errorf("%w: weapon profile", ErrMissingField)
	}
	d.weapons = append(d.weapons, w)
	return nil
}

// AddWargear stages a wargear row; name and effect are mandatory.
func (d *UnitDraft) AddWargear(g models.Wargear) error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: wargear name", ErrMissingField)
	}
	if strings.TrimSpace(g.Effect) == "" {
		return fmt.Errorf("%w: wargear effect", ErrMissingField)
	}
	d.wargear = append(d.wargear, g)
	return nil
}

// AddBattleHonour stages an honour row; name and effect are mandatory.
func (d *UnitDraft) AddBattleHonour(h models.BattleHonour) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: battle honour name", ErrMissingField)
	}
	if strings.TrimSpace(h.Effect) == "" {
		return fmt.Errorf("%w: battle honour effect", ErrMissingField)
	}
	d.honours = append(d.honours, h)
	return nil
}

// AddBattleScar stages a scar row; name and effect are mandatory.
func (d *UnitDraft) AddBattleScar(sc models.BattleScar) error {
	if strings.TrimSpace(sc.Name) == "" {
		return fmt.Errorf("%w: battle scar name", ErrMissingField)
	}
	if strings.TrimSpace(sc.Effect) == "" {
		return fmt.Errorf("%w: battle scar effect", ErrMissingField)
	}
	d.scars = append(d.scars, sc)
	return nil
}

// RemoveWeapon drops the staged weapon at position i.
func (d *UnitDraft) RemoveWeapon(i int) error {
	if i < 0 || i >= len(d.weapons) {
		return fmt.Errorf("%w: weapon row %d", ErrNotFound, i)
	}
	d.weapons = append(d.weapons[:i], d.weapons[i+1:]...)
	return nil
}

// RemoveWargear drops the staged wargear at position i.
func (d *UnitDraft) RemoveWargear(i int) error {
	if i < 0 || i >= len(d.wargear) {
		return fmt.Errorf("%w: wargear row %d", ErrNotFound, i)
	}
	d.wargear = append(d.wargear[:i], d.wargear[i+1:]...)
	return nil
}

// RemoveBattleHonour drops the staged honour at position i.
func (d *UnitDraft) RemoveBattleHonour(i int) error {
	if i < 0 || i >= len(d.honours) {
		return fmt.Errorf("%w: battle honour row %d", ErrNotFound, i)
	}
	d.honours = append(d.honours[:i], d.honours[i+1:]...)
	return nil
}

// RemoveBattleScar drops the staged scar at position i.
func (d *UnitDraft) RemoveBattleScar(i int) error {
	if i < 0 || i >= len(d.scars) {
		return fmt.Errorf("%w: battle scar row %d", ErrNotFound, i)
	}
	d.scars = append(d.scars[:i], d.scars[i+1:]...)
	return nil
}

// CommitDraft validates the draft and adds it to the roster as a new
// datacard with the staged sub-entries attached.
func (s *Store) CommitDraft(draft *UnitDraft) (models.Unit, error) {
	if err := validateUnitInput(&draft.input); err != nil {
		return models.Unit{}, err
	}

	player, ok := s.PlayerByID(draft.input.PlayerID)
	if !ok {
		return models.Unit{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, draft.input.PlayerID)
	}

	unit := draft.build()
	unit.ID = uuid.NewString()
	unit.PlayerID = player.ID
	unit.PlayerName = player.Name
	unit.ArmyName = player.ArmyName
	unit.Team = player.Team

	s.units = append(s.units, unit)
	return unit, s.persist()
}

func (d *UnitDraft) build() models.Unit {
	in := d.input
	unit := models.Unit{
		UnitName:               strings.TrimSpace(in.UnitName),
		Faction:                strings.TrimSpace(in.Faction),
		SubfactionOrDetachment: strings.TrimSpace(in.SubfactionOrDetachment),

		BattlefieldRole: in.BattlefieldRole,
		IsEpicHero:      in.IsEpicHero,

		Keywords:   models.SplitKeywords(in.Keywords),
		UniqueName: strings.TrimSpace(in.UniqueName),

		Points: in.Points,
		Models: in.Models,

		Experience:    in.Experience,
		Rank:          models.NormalizeRank(in.Rank),
		CrusadePoints: in.CrusadePoints,

		Weapons:  append([]models.Weapon{}, d.weapons...),
		Wargear:  append([]models.Wargear{}, d.wargear...),
		Upgrades: []string{},
		Relics:   []string{},

		BattleHonours: append([]models.BattleHonour{}, d.honours...),
		BattleScars:   append([]models.BattleScar{}, d.scars...),

		Notes: in.Notes,
		Image: strings.TrimSpace(in.Image),

		AgendasCompleted: []string{},
		NotableBattles:   []string{},
	}
	if unit.Keywords == nil {
		unit.Keywords = []string{}
	}
	if unit.Models == 0 {
		unit.Models = 1
	}
	return unit
}

func validateUnitInput(in *UnitInput) error {
	if strings.TrimSpace(in.UnitName) == "" {
		return fmt.Errorf("%w: unitName", ErrMissingField)
	}
	if strings.TrimSpace(in.Faction) == "" {
		return fmt.Errorf("%w: faction", ErrMissingField)
	}
	if strings.TrimSpace(in.BattlefieldRole) == "" {
		return fmt.Errorf("%w: battlefieldRole", ErrMissingField)
	}
	if !models.ValidBattlefieldRole(in.BattlefieldRole) {
		return fmt.Errorf("%w: battlefieldRole %q", ErrInvalidValue, in.BattlefieldRole)
	}
	if strings.TrimSpace(in.Rank) == "" {
		return fmt.Errorf("%w: rank", ErrMissingField)
	}
	if strings.TrimSpace(in.PlayerID) == "" {
		return fmt.Errorf("%w: playerId", ErrMissingField)
	}
	if in.Points < 0 {
		return fmt.Errorf("%w: points %d", ErrInvalidValue, in.Points)
	}
	if in.Models < 0 {
		return fmt.Errorf("%w: models %d", ErrInvalidValue, in.Models)
	}
	if in.Experience < 0 {
		return fmt.Errorf("%w: experience %d", ErrInvalidValue, in.Experience)
	}
	if in.CrusadePoints < 0 {
		return fmt.Errorf("%w: crusadePoints %d", ErrInvalidValue, in.CrusadePoints)
	}
	return nil
}
