// services/player_service.go
package services

import (
	"fmt"
	"regexp"
	"strings"

	"crusade-tracker/models"
)

// PlayerInput carries the fields of the player registration form.
type PlayerInput struct {
	ID       string // optional; derived from Name when empty
	Name     string
	ArmyName string
	Team     string
}

var playerIDSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// DerivePlayerID derives a stable player id from a display name:
// lowercase, every run of non-alphanumeric characters collapsed to a
// single "_", leading and trailing "_" trimmed.
func DerivePlayerID(name string) string {
	id := playerIDSanitizer.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(id, "_")
}

// CreatePlayer registers a campaign participant. The id, explicit or
// derived, must not collide with an existing player.
func (s *Store) CreatePlayer(input PlayerInput) (models.Player, error) {
	player, err := validatePlayerInput(input)
	if err != nil {
		return models.Player{}, err
	}

	player.ID = strings.TrimSpace(input.ID)
	if player.ID == "" {
		player.ID = DerivePlayerID(player.Name)
	}
	if player.ID == "" {
		return models.Player{}, fmt.Errorf("%w: player id derived from %q is empty", ErrInvalidValue, input.Name)
	}

	if _, exists := s.PlayerByID(player.ID); exists {
		return models.Player{}, fmt.Errorf("%w: player %q", ErrDuplicateID, player.ID)
	}

	s.players = append(s.players, player)
	return player, s.persist()
}

// UpdatePlayer replaces a player's name, army name and team. The id is
// immutable. Unit snapshots of the old name are left as taken; the
// roster shows units under the details their player had when they were
// enrolled.
func (s *Store) UpdatePlayer(id string, input PlayerInput) (models.Player, error) {
	player, err := validatePlayerInput(input)
	if err != nil {
		return models.Player{}, err
	}

	for i := range s.players {
		if s.players[i].ID == id {
			player.ID = id
			s.players[i] = player
			return player, s.persist()
		}
	}
	return models.Player{}, fmt.Errorf("%w: player %q", ErrNotFound, id)
}

// DeletePlayer removes a player and cascades: every unit they own is
// removed, and their id is scrubbed from both sides of every battle
// log. A log left with no participants on either side by the scrub is
// removed with them.
func (s *Store) DeletePlayer(id string) error {
	index := -1
	for i := range s.players {
		if s.players[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("%w: player %q", ErrNotFound, id)
	}

	s.players = append(s.players[:index], s.players[index+1:]...)

	kept := s.units[:0]
	for _, u := range s.units {
		if u.PlayerID != id {
			kept = append(kept, u)
		}
	}
	s.units = kept

	keptLogs := s.logs[:0]
	for _, l := range s.logs {
		attackers, removedA := removeID(l.AttackerPlayerIDs, id)
		defenders, removedD := removeID(l.DefenderPlayerIDs, id)
		l.AttackerPlayerIDs = attackers
		l.DefenderPlayerIDs = defenders
		if (removedA || removedD) && len(attackers) == 0 && len(defenders) == 0 {
			continue
		}
		keptLogs = append(keptLogs, l)
	}
	s.logs = keptLogs

	return s.persist()
}

func validatePlayerInput(input PlayerInput) (models.Player, error) {
	name := strings.TrimSpace(input.Name)
	armyName := strings.TrimSpace(input.ArmyName)
	team := strings.TrimSpace(input.Team)

	if name == "" {
		return models.Player{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	if armyName == "" {
		return models.Player{}, fmt.Errorf("%w: armyName", ErrMissingField)
	}
	if team == "" {
		return models.Player{}, fmt.Errorf("%w: team", ErrMissingField)
	}
	if !models.ValidTeam(team) {
		return models.Player{}, fmt.Errorf("%w: team %q", ErrInvalidValue, team)
	}

	return models.Player{Name: name, ArmyName: armyName, Team: team}, nil
}

func removeID(ids []string, id string) ([]string, bool) {
	kept := make([]string, 0, len(ids))
	removed := false
	for _, v := range ids {
		if v == id {
			removed = true
			continue
		}
		kept = append(kept, v)
	}
	return kept, removed
}
