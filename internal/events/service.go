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

package events

import (
	"context"
	"errors"
	"sync"

	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/backupstore/pkg/models"
	"github.com/moov-io/base/log"
)

type Emitter interface {
	Send(ctx context.Context, evt models.Event) error
}

func NewEmitter(logger log.Logger, cfg *service.EventsConfig) (Emitter, error) {
	if cfg == nil {
		return &MockEmitter{}, nil
	}
	if cfg.Stream != nil {
		return newStreamService(logger, cfg.Stream)
	}
	if cfg.Webhook != nil {
		return newWebhookService(logger, cfg.Webhook)
	}
	return nil, errors.New("unknown events config")
}

// MockEmitter keeps every event it's given.
type MockEmitter struct {
	Err error

	mu   sync.Mutex
	sent []models.Event
}

func (e *MockEmitter) Send(_ context.Context, evt models.Event) error {
	if e.Err != nil {
		return e.Err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sent = append(e.sent, evt)
	return nil
}

func (e *MockEmitter) Sent() []models.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Event(nil), e.sent...)
}
