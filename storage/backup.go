// storage/backup.go
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
)

// Backup is a portable JSON export of the whole store. It matches the
// layout of the manual JSON export of the original tracker, so old
// exports restore cleanly.
type Backup struct {
	ExportedAt time.Time `json:"exportedAt"`
	Snapshot
}

// BackupFilename derives a file name for a backup of the named
// campaign taken at the given time, e.g.
// "ozark-crusade-2026-08-31-140502.json".
func BackupFilename(campaignName string, at time.Time) string {
	name := slug.Make(campaignName)
	if name == "" {
		name = "crusade"
	}
	return fmt.Sprintf("%s-%s.json", name, at.Format("2006-01-02-150405"))
}

// WriteBackup writes the snapshot as an indented JSON document at
// path, creating parent directories as needed.
func WriteBackup(path string, snap Snapshot, at time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	payload, err := json.MarshalIndent(Backup{ExportedAt: at, Snapshot: snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode backup: %v", ErrStorageWrite, err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return nil
}

// ReadBackup reads a backup document previously written by WriteBackup
// (or exported by hand from the old tracker).
func ReadBackup(path string) (Snapshot, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	var backup Backup
	if err := json.Unmarshal(payload, &backup); err != nil {
		return Snapshot{}, fmt.Errorf("%w: decode backup: %v", ErrStorageRead, err)
	}
	return backup.Snapshot, nil
}
