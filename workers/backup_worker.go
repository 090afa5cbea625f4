// workers/backup_worker.go
package workers

import (
	"log"
	"path/filepath"
	"time"

	"crusade-tracker/services"
	"crusade-tracker/storage"

	"github.com/go-co-op/gocron/v2"
)

// BackupWorker periodically exports the store to timestamped JSON
// files, the long-running counterpart of the one-shot backup command.
type BackupWorker struct {
	store        *services.Store
	dir          string
	campaignName string
	interval     time.Duration

	scheduler gocron.Scheduler
}

// NewBackupWorker builds a worker writing backups of the named
// campaign into dir every interval.
func NewBackupWorker(store *services.Store, dir, campaignName string, interval time.Duration) *BackupWorker {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &BackupWorker{
		store:        store,
		dir:          dir,
		campaignName: campaignName,
		interval:     interval,
	}
}

// Start schedules the periodic export, taking one backup immediately.
func (w *BackupWorker) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	w.scheduler = sched

	_, err = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(w.runOnce),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	sched.Start()
	log.Printf("Backup worker started: every %s into %s", w.interval, w.dir)
	return nil
}

// Stop shuts the scheduler down, waiting for a running export.
func (w *BackupWorker) Stop() {
	if w.scheduler == nil {
		return
	}
	if err := w.scheduler.Shutdown(); err != nil {
		log.Printf("Backup worker shutdown: %v", err)
	}
}

func (w *BackupWorker) runOnce() {
	now := time.Now()
	path := filepath.Join(w.dir, storage.BackupFilename(w.campaignName, now))
	if err := storage.WriteBackup(path, w.store.Snapshot(), now); err != nil {
		log.Printf("⚠️  Backup failed: %v", err)
		return
	}
	log.Printf("✅ Backup written: %s", path)
}
