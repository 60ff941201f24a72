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
	"errors"
)

// MirrorConfig copies every stored backup into a blob bucket.
type MirrorConfig struct {
	ID string

	// BucketURI is a gocloud.dev bucket URL such as mem://, file:///var/backups,
	// s3://bucket?region=us-east-1 or gs://bucket
	BucketURI string

	// Prefix is prepended to each filename inside the bucket.
	Prefix string
}

func (cfg *MirrorConfig) Validate() error {
	if cfg == nil {
		return nil
	}
	if cfg.BucketURI == "" {
		return errors.New("missing BucketURI")
	}
	return nil
}
