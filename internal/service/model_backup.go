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

package service

import (
	"os"
	"strings"

	"github.com/moov-io/base/strx"
)

type BackupConfig struct {
	// Path is the directory backups are written into. An empty or whitespace-only
	// Path disables the backup endpoint.
	Path string

	// Authorization is a shared secret which must exactly match the Authorization
	// header of each request. An empty or whitespace-only value disables the check.
	Authorization string
}

// Enabled reports if a backup directory has been configured.
func (cfg BackupConfig) Enabled() bool {
	return strings.TrimSpace(cfg.Path) != ""
}

// Token returns the required Authorization value, preferring BACKUP_AUTHORIZATION
// from the environment over the config file.
func (cfg BackupConfig) Token() string {
	token := strx.Or(os.Getenv("BACKUP_AUTHORIZATION"), cfg.Authorization)
	if strings.TrimSpace(token) == "" {
		return ""
	}
	return token
}
