// Licensed to The Moov Authors under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. The Moov Authors licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package backup

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/moov-io/backupstore/internal/alerting"
	"github.com/moov-io/backupstore/internal/events"
	"github.com/moov-io/backupstore/internal/mirror"
	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/backupstore/internal/storage"
	"github.com/moov-io/backupstore/pkg/models"
	"github.com/moov-io/base/log"
	"github.com/moov-io/base/stime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// followUpTimeout bounds the mirror copy and event sent after each stored backup.
const followUpTimeout = 30 * time.Second

// Service writes backups into the configured directory. Configuration is read once
// in NewService and never changes afterwards.
type Service struct {
	logger log.Logger

	enabled bool
	token   string
	chest   storage.Chest

	mirror   mirror.Storage
	emitter  events.Emitter
	alerters []alerting.Alerter
	time     stime.TimeService

	followUpTimeout time.Duration
	followUps       sync.WaitGroup
}

func NewService(
	logger log.Logger,
	cfg service.BackupConfig,
	chest storage.Chest,
	mirror mirror.Storage,
	emitter events.Emitter,
	alerters []alerting.Alerter,
	timeService stime.TimeService,
) *Service {
	if chest == nil && cfg.Enabled() {
		chest = storage.NewFilesystem(cfg.Path)
	}
	if emitter == nil {
		emitter = &events.MockEmitter{}
	}
	if timeService == nil {
		timeService = stime.NewSystemTimeService()
	}
	return &Service{
		logger:   logger,
		enabled:  cfg.Enabled(),
		token:    cfg.Token(),
		chest:    chest,
		mirror:   mirror,
		emitter:  emitter,
		alerters: alerters,
		time:     timeService,

		followUpTimeout: followUpTimeout,
	}
}

// StoreBackup authorizes the caller and then writes payload to filename.
func (s *Service) StoreBackup(ctx context.Context, token, filename string, payload []byte) error {
	if err := s.Authorize(token); err != nil {
		return err
	}
	return s.Store(ctx, filename, payload)
}

// Authorize returns ErrDisabled when no directory is configured and ErrUnauthorized
// when a token is required and token doesn't exactly match it.
func (s *Service) Authorize(token string) error {
	if !s.enabled || s.chest == nil {
		backupErrors.With("reason", "disabled").Add(1)
		return ErrDisabled
	}
	if s.token != "" && subtle.ConstantTimeCompare([]byte(s.token), []byte(token)) != 1 {
		backupErrors.With("reason", "unauthorized").Add(1)
		return ErrUnauthorized
	}
	return nil
}

// Store writes payload to filename, replacing any existing file. Callers must
// Authorize first.
func (s *Service) Store(ctx context.Context, filename string, payload []byte) error {
	if !s.enabled || s.chest == nil {
		return ErrDisabled
	}

	logger := s.logger.With(log.Fields{
		"filename": log.String(filename),
	})

	if err := s.chest.WriteFile(filename, payload); err != nil {
		backupErrors.With("reason", "storage").Add(1)

		err = &StorageError{Filename: filename, Err: err}
		logger.Error().LogErrorf("problem writing backup: %v", err)

		if alertErr := alerting.AlertAll(s.alerters, err); alertErr != nil {
			logger.Error().LogErrorf("problem sending alerts: %v", alertErr)
		}
		return err
	}
	backupsStored.Add(1)

	logger.With(log.Fields{
		"size": log.Int(len(payload)),
	}).Log("stored backup")

	// The caller's response doesn't wait on the mirror or event.
	s.followUps.Add(1)
	go func() {
		defer s.followUps.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.followUpTimeout)
		defer cancel()

		if err := s.afterStore(ctx, filename, payload); err != nil {
			err = &FollowUpError{Filename: filename, Err: err}
			logger.Warn().LogErrorf("backup stored but follow-up failed: %v", err)

			if alertErr := alerting.AlertAll(s.alerters, err); alertErr != nil {
				logger.Error().LogErrorf("problem sending alerts: %v", alertErr)
			}
		}
	}()

	return nil
}

// afterStore copies the backup to the mirror and emits BackupStored.
func (s *Service) afterStore(ctx context.Context, filename string, payload []byte) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.mirror != nil {
		g.Go(func() error {
			if err := s.mirror.SaveFile(ctx, filename, payload); err != nil {
				return fmt.Errorf("mirroring: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		err := s.emitter.Send(ctx, models.Event{
			Event: models.BackupStored{
				ID:       uuid.NewString(),
				Filename: filename,
				Size:     len(payload),
				StoredAt: s.time.Now(),
			},
		})
		if err != nil {
			return fmt.Errorf("emitting BackupStored: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Wait blocks until the mirror copies and events of every stored backup have
// finished. It's called on shutdown before the mirror and emitter are closed.
func (s *Service) Wait() {
	s.followUps.Wait()
}

// Ready is used as an admin readiness check.
func (s *Service) Ready() error {
	if !s.enabled || s.chest == nil {
		return nil
	}
	return s.chest.Ready()
}
