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
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrDisabled is returned when no backup directory is configured.
	ErrDisabled = errors.New("backup storage is not configured")

	// ErrUnauthorized is returned when the Authorization header doesn't match the configured token.
	ErrUnauthorized = errors.New("authorization mismatch")
)

// StorageError wraps a failure to write a backup to disk.
type StorageError struct {
	Filename string
	Err      error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storing backup %s: %v", e.Filename, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) AlertDetails() map[string]string {
	return map[string]string{
		"filename": e.Filename,
		"reason":   "storage",
	}
}

// FollowUpError wraps a failure to mirror or announce a backup which was stored.
// The caller has already been answered when it happens.
type FollowUpError struct {
	Filename string
	Err      error
}

func (e *FollowUpError) Error() string {
	return fmt.Sprintf("following up on backup %s: %v", e.Filename, e.Err)
}

func (e *FollowUpError) Unwrap() error {
	return e.Err
}

func (e *FollowUpError) AlertDetails() map[string]string {
	return map[string]string{
		"filename": e.Filename,
		"reason":   "follow-up",
	}
}

func statusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrDisabled):
		return http.StatusNotImplemented
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
