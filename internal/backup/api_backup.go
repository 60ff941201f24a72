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
	"io"
	"net/http"

	"github.com/moov-io/base/log"
	"github.com/moov-io/base/telemetry"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func NewBackupController(logger log.Logger, svc *Service) *BackupController {
	return &BackupController{
		logger:  logger,
		service: svc,
	}
}

type BackupController struct {
	logger  log.Logger
	service *Service
}

func (c *BackupController) AppendRoutes(router *mux.Router) *mux.Router {
	router.
		Name("Backup.store").
		Methods("POST").
		Path("/backup/{filename}").
		HandlerFunc(c.StoreBackupHandler)

	return router
}

// StoreBackupHandler writes the request body to the filename from the path. No
// response body is written, only a status code.
func (c *BackupController) StoreBackupHandler(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]
	if filename == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ctx, span := telemetry.StartSpan(r.Context(), "store-backup-handler", trace.WithAttributes(
		attribute.String("backupstore.filename", filename),
	))
	defer span.End()

	logger := c.logger.With(log.Fields{
		"filename": log.String(filename),
	})

	if err := c.service.Authorize(r.Header.Get("Authorization")); err != nil {
		logger.Info().Logf("rejected backup: %v", err)
		w.WriteHeader(statusCode(err))
		return
	}

	payload, err := readBody(r)
	if err != nil {
		logger.Error().LogErrorf("error reading backup: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.service.Store(ctx, filename, payload); err != nil {
		span.RecordError(err)
		w.WriteHeader(statusCode(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func readBody(req *http.Request) ([]byte, error) {
	defer req.Body.Close()

	bs, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	return decodeBody(req.Header.Get("Content-Type"), bs)
}
