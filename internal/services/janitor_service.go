package services

import (
	"context"
	"errors"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"Stashed/internal/blob"
	"Stashed/internal/config"
	"Stashed/internal/repository"
)

// Janitor periodically sweeps image metadata whose parent row no longer
// exists. The polymorphic parent reference has no foreign key, so a crash
// between a parent delete and its image cascade can strand rows; this is
// the compensating cleanup.
type Janitor struct {
	imageRepo     repository.ImageRepository
	blobStore     blob.Store
	logService    LogService
	configuration *config.Configuration
	sweeping      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	imageRepo repository.ImageRepository,
	blobStore blob.Store,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		imageRepo:     imageRepo,
		blobStore:     blobStore,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

// ForceSweep runs one sweep immediately, unless one is already running.
func (j *Janitor) ForceSweep() error {
	j.mutex.Lock()
	if j.sweeping {
		j.mutex.Unlock()
		return errors.New("sweep is in progress")
	}
	j.sweeping = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.sweeping = false
			j.mutex.Unlock()
		}()
		j.sweep()
	}()

	return nil
}

// StartSweepCycle schedules the sweep on the configured cron expression.
func (j *Janitor) StartSweepCycle() {
	j.logService.Log.Debug("starting janitor sweep cycle")

	schedule := j.configuration.Server.JanitorConfig.Schedule
	_, err := j.cron.AddFunc(schedule, func() {
		j.mutex.Lock()
		if j.sweeping {
			j.mutex.Unlock()
			return
		}
		j.sweeping = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.sweeping = false
			j.mutex.Unlock()
		}()
		j.sweep()
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "sweep",
			"error": err.Error(),
		}).Error("Failed to schedule janitor sweep")
		return
	}
	j.cron.Start()
}

func (j *Janitor) Stop() {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	j.cron.Stop()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "sweep",
		"status": "stopped",
	}).Info("Janitor sweep stopped")
}

func (j *Janitor) IsSweeping() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.sweeping
}

func (j *Janitor) sweep() {
	ctx := context.Background()
	orphans, err := j.imageRepo.FindOrphans(ctx)
	if err != nil {
		j.logService.Log.WithError(err).Error("janitor could not list orphaned images")
		return
	}
	removed := 0
	for _, orphan := range orphans {
		if err := j.blobStore.Delete(ctx, orphan.StoragePath); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"image_id":     orphan.ID,
				"storage_path": orphan.StoragePath,
			}).WithError(err).Warn("could not delete orphaned blob")
		}
		if err := j.imageRepo.Remove(ctx, orphan.ID); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"image_id": orphan.ID,
			}).WithError(err).Error("could not remove orphaned image row")
			continue
		}
		removed++
	}
	if removed > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":     "sweep",
			"removed": removed,
		}).Info("janitor removed orphaned images")
	}
}
