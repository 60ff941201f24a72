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
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	backupsStored = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "backups_stored",
		Help: "Counter of backups written to disk",
	}, nil)

	backupErrors = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "backup_store_errors",
		Help: "Counter of rejected or failed backup requests",
	}, []string{"reason"})
)

func init() {
	backupsStored.Add(0)
	for _, reason := range []string{"disabled", "unauthorized", "storage"} {
		backupErrors.With("reason", reason).Add(0)
	}
}
