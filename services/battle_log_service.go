// services/battle_log_service.go
package services

import (
	"fmt"
	"strings"
	"time"

	"crusade-tracker/models"

	"github.com/google/uuid"
)

// BattleLogInput carries the fields of the battle report form.
// AttackerPlayerIDs/DefenderPlayerIDs may be empty: pick-up games are
// logged at team level only. A PointsLevel of zero means "not
// recorded" and is stored as null.
type BattleLogInput struct {
	Date        string
	SessionName string
	Mission     string
	Location    string
	PointsLevel int

	AttackerTeam string
	DefenderTeam string
	WinnerTeam   string

	AttackerPlayerIDs []string
	DefenderPlayerIDs []string

	Notes string
}

// CreateBattleLog appends a battle report. The id and creation
// timestamp are generated; the timestamp is strictly monotonic across
// the collection so same-date reports keep a stable order.
func (s *Store) CreateBattleLog(input BattleLogInput) (models.BattleLog, error) {
	if err := validateBattleLogInput(&input); err != nil {
		return models.BattleLog{}, err
	}

	log := models.BattleLog{
		ID:        uuid.NewString(),
		CreatedAt: s.nextLogTimestamp(),
		Date:      strings.TrimSpace(input.Date),

		SessionName: strings.TrimSpace(input.SessionName),
		Mission:     strings.TrimSpace(input.Mission),
		Location:    strings.TrimSpace(input.Location),

		AttackerTeam: input.AttackerTeam,
		DefenderTeam: input.DefenderTeam,
		WinnerTeam:   input.WinnerTeam,

		AttackerPlayerIDs: dedupeIDs(input.AttackerPlayerIDs),
		DefenderPlayerIDs: dedupeIDs(input.DefenderPlayerIDs),

		Notes: input.Notes,
	}
	if input.PointsLevel > 0 {
		level := input.PointsLevel
		log.PointsLevel = &level
	}

	s.logs = append(s.logs, log)
	return log, s.persist()
}

// DeleteBattleLog removes a battle report.
func (s *Store) DeleteBattleLog(id string) error {
	for i := range s.logs {
		if s.logs[i].ID == id {
			s.logs = append(s.logs[:i], s.logs[i+1:]...)
			return s.persist()
		}
	}
	return fmt.Errorf("%w: battle log %q", ErrNotFound, id)
}

func validateBattleLogInput(in *BattleLogInput) error {
	if strings.TrimSpace(in.AttackerTeam) == "" {
		return fmt.Errorf("%w: attackerTeam", ErrMissingField)
	}
	if !models.ValidTeam(in.AttackerTeam) {
		return fmt.Errorf("%w: attackerTeam %q", ErrInvalidValue, in.AttackerTeam)
	}
	if strings.TrimSpace(in.DefenderTeam) == "" {
		return fmt.Errorf("%w: defenderTeam", ErrMissingField)
	}
	if !models.ValidTeam(in.DefenderTeam) {
		return fmt.Errorf("%w: defenderTeam %q", ErrInvalidValue, in.DefenderTeam)
	}
	if strings.TrimSpace(in.WinnerTeam) == "" {
		return fmt.Errorf("%w: winnerTeam", ErrMissingField)
	}
	if !models.ValidResult(in.WinnerTeam) {
		return fmt.Errorf("%w: winnerTeam %q", ErrInvalidValue, in.WinnerTeam)
	}
	if in.PointsLevel < 0 {
		return fmt.Errorf("%w: pointsLevel %d", ErrInvalidValue, in.PointsLevel)
	}
	return nil
}

// nextLogTimestamp returns the current time in milliseconds, bumped
// past the newest existing log so the value is strictly increasing
// even when two reports land in the same millisecond.
func (s *Store) nextLogTimestamp() int64 {
	now := time.Now().UnixMilli()
	for _, l := range s.logs {
		if l.CreatedAt >= now {
			now = l.CreatedAt + 1
		}
	}
	return now
}

func dedupeIDs(ids []string) []string {
	if len(ids) == 0 {
		return []string{}
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
