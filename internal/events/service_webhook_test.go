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
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/backupstore/pkg/models"
	"github.com/moov-io/base"
	"github.com/moov-io/base/log"

	"github.com/stretchr/testify/require"
)

func TestWebhookService(t *testing.T) {
	var body *models.BackupStored
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bs, _ := io.ReadAll(r.Body)

		var wrapper models.BackupStored
		if err := models.ReadEvent(bs, &wrapper); err != nil {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			body = &wrapper
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(server.Close)

	svc, err := newWebhookService(log.NewTestLogger(), &service.WebhookConfig{
		Endpoint: server.URL + "/hook",
	})
	require.NoError(t, err)

	id := base.ID()
	err = svc.Send(context.Background(), models.Event{
		Event: models.BackupStored{
			ID:       id,
			Filename: "a.json",
		},
	})
	require.NoError(t, err)

	require.NotNil(t, body)
	require.Equal(t, id, body.ID)
	require.Equal(t, "a.json", body.Filename)
}

func TestWebhookService_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	svc, err := newWebhookService(log.NewTestLogger(), &service.WebhookConfig{
		Endpoint: server.URL,
	})
	require.NoError(t, err)

	err = svc.Send(context.Background(), models.Event{Event: models.BackupStored{}})
	require.ErrorContains(t, err, "400 Bad Request")
}

func TestWebhookService_Timeout(t *testing.T) {
	svc, err := newWebhookService(log.NewTestLogger(), &service.WebhookConfig{
		Endpoint: "http://localhost:8080/hook",
	})
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, svc.client.HTTPClient.Timeout)

	svc, err = newWebhookService(log.NewTestLogger(), &service.WebhookConfig{
		Endpoint: "http://localhost:8080/hook",
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	require.Equal(t, time.Second, svc.client.HTTPClient.Timeout)
}

func TestNewEmitter(t *testing.T) {
	emitter, err := NewEmitter(log.NewTestLogger(), nil)
	require.NoError(t, err)
	require.IsType(t, &MockEmitter{}, emitter)

	emitter, err = NewEmitter(log.NewTestLogger(), &service.EventsConfig{
		Webhook: &service.WebhookConfig{Endpoint: "http://localhost:8080/hook"},
	})
	require.NoError(t, err)
	require.IsType(t, &webhookService{}, emitter)

	_, err = NewEmitter(log.NewTestLogger(), &service.EventsConfig{})
	require.Error(t, err)
}
