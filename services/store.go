// services/store.go
package services

import (
	"crusade-tracker/models"
	"crusade-tracker/storage"
)

// Store owns the three in-memory collections and is the only way to
// mutate them. It is built once at startup and passed to whatever
// drives user actions; all reads go through the query functions in
// this package over the store's snapshots.
//
// Mutations validate first, then apply in memory, then persist through
// the gateway. A persist failure is returned to the caller but the
// in-memory mutation stays applied: memory is the state of record even
// when durability failed.
type Store struct {
	gateway *storage.Gateway

	players []models.Player
	units   []models.Unit
	logs    []models.BattleLog
}

// New returns an empty store bound to the given gateway. A nil gateway
// is allowed; persistence is then skipped, which the tests use.
func New(gateway *storage.Gateway) *Store {
	return &Store{gateway: gateway}
}

// Load builds a store from the gateway's persisted snapshot.
func Load(gateway *storage.Gateway) (*Store, error) {
	snap, err := gateway.Load()
	if err != nil {
		return nil, err
	}
	store := New(gateway)
	store.Replace(snap)
	return store, nil
}

// Players returns the player collection in insertion order. Callers
// must treat the returned slice as read-only.
func (s *Store) Players() []models.Player { return s.players }

// Units returns the unit collection in insertion order. Callers must
// treat the returned slice as read-only.
func (s *Store) Units() []models.Unit { return s.units }

// Logs returns the battle log collection in insertion order. Callers
// must treat the returned slice as read-only.
func (s *Store) Logs() []models.BattleLog { return s.logs }

// PlayerByID resolves a player id.
func (s *Store) PlayerByID(id string) (models.Player, bool) {
	for _, p := range s.players {
		if p.ID == id {
			return p, true
		}
	}
	return models.Player{}, false
}

// UnitByID resolves a unit id.
func (s *Store) UnitByID(id string) (models.Unit, bool) {
	for _, u := range s.units {
		if u.ID == id {
			return u, true
		}
	}
	return models.Unit{}, false
}

// LogByID resolves a battle log id.
func (s *Store) LogByID(id string) (models.BattleLog, bool) {
	for _, l := range s.logs {
		if l.ID == id {
			return l, true
		}
	}
	return models.BattleLog{}, false
}

// Snapshot copies the current collections for persistence or export.
func (s *Store) Snapshot() storage.Snapshot {
	snap := storage.Snapshot{
		Players: make([]models.Player, len(s.players)),
		Units:   make([]models.Unit, len(s.units)),
		Logs:    make([]models.BattleLog, len(s.logs)),
	}
	copy(snap.Players, s.players)
	copy(snap.Units, s.units)
	copy(snap.Logs, s.logs)
	return snap
}

// Replace swaps in a full snapshot, e.g. from a restored backup. It
// does not persist; callers decide when to flush.
func (s *Store) Replace(snap storage.Snapshot) {
	s.players = snap.Players
	s.units = snap.Units
	s.logs = snap.Logs
}

// Flush persists the current state through the gateway.
func (s *Store) Flush() error {
	return s.persist()
}

func (s *Store) persist() error {
	if s.gateway == nil {
		return nil
	}
	return s.gateway.Save(s.Snapshot())
}
