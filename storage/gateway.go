// storage/gateway.go
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"crusade-tracker/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Storage keys. Versioned so a future schema change can move to new
// keys without silently migrating old data.
const (
	KeyPlayers    = "crusade_players_v1"
	KeyUnits      = "crusade_units_v1"
	KeyBattleLogs = "crusade_battle_logs_v1"
)

var (
	// ErrStorageRead indicates the durable store could not be read at all.
	ErrStorageRead = errors.New("storage read failure")
	// ErrStorageWrite indicates a save did not reach durable storage.
	ErrStorageWrite = errors.New("storage write failure")
)

// Entry is one keyed value in the store: a JSON-encoded array of
// records. Three entries exist, one per collection.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:text;not null"`
}

func (Entry) TableName() string {
	return "store_entries"
}

// Snapshot carries all three collections across the gateway boundary.
type Snapshot struct {
	Players []models.Player    `json:"players"`
	Units   []models.Unit      `json:"units"`
	Logs    []models.BattleLog `json:"battleLogs"`
}

// Gateway persists the tracker's three collections in an embedded
// SQLite file, one JSON array per key.
type Gateway struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database file at path and
// migrates the store table.
func Open(path string) (*Gateway, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: storage path is required", ErrStorageRead)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Clean(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageRead, path, err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("%w: migrate store table: %v", ErrStorageRead, err)
	}

	return &Gateway{db: db}, nil
}

// Close releases the underlying database handle.
func (g *Gateway) Close() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load reads all three collections. A missing key or an undecodable
// value resets that one collection to empty and logs the fault; the
// other keys are unaffected. Only a failure to query the store at all
// is returned as an error.
func (g *Gateway) Load() (Snapshot, error) {
	var snap Snapshot

	var entries []Entry
	if err := g.db.Find(&entries).Error; err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}

	snap.Players = decodeCollection[models.Player](values, KeyPlayers)
	snap.Units = decodeCollection[models.Unit](values, KeyUnits)
	snap.Logs = decodeCollection[models.BattleLog](values, KeyBattleLogs)
	return snap, nil
}

func decodeCollection[T any](values map[string]string, key string) []T {
	raw, ok := values[key]
	if !ok {
		return nil
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("⚠️  Discarding unreadable %s: %v", key, err)
		return nil
	}
	return records
}

// Save writes all three collections in one transaction. On failure
// nothing is written and ErrStorageWrite is returned.
func (g *Gateway) Save(snap Snapshot) error {
	entries, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	err = g.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return nil
}

func encodeSnapshot(snap Snapshot) ([]Entry, error) {
	// Encode empty collections as [] rather than null so a load on the
	// other side still sees an array.
	players, err := encodeCollection(snap.Players)
	if err != nil {
		return nil, err
	}
	units, err := encodeCollection(snap.Units)
	if err != nil {
		return nil, err
	}
	logs, err := encodeCollection(snap.Logs)
	if err != nil {
		return nil, err
	}
	return []Entry{
		{Key: KeyPlayers, Value: players},
		{Key: KeyUnits, Value: units},
		{Key: KeyBattleLogs, Value: logs},
	}, nil
}

func encodeCollection[T any](records []T) (string, error) {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("%w: encode: %v", ErrStorageWrite, err)
	}
	return string(payload), nil
}
