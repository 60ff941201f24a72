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

package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"
)

// Event wraps every message emitted by backupstore. Type is set to the name of
// the inner event's Go type.
type Event struct {
	Event interface{} `json:"event"`
	Type  string      `json:"type"`
}

// Name returns Type, or the inner event's type name when Type is unset.
func (evt Event) Name() string {
	if evt.Type != "" {
		return evt.Type
	}
	if evt.Event == nil {
		return ""
	}
	return reflect.TypeOf(evt.Event).Name()
}

func (evt Event) Bytes() []byte {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(evt)
	return buf.Bytes()
}

func (evt Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Event interface{} `json:"event"`
		Type  string      `json:"type"`
	}{
		Event: evt.Event,
		Type:  evt.Name(),
	})
}

func ReadEvent(data []byte, evt interface{}) error {
	return json.Unmarshal(data, &Event{
		Event: evt,
	})
}

// BackupStored is emitted after a backup has been written to disk.
type BackupStored struct {
	ID       string    `json:"id"`
	Filename string    `json:"filename"`
	Size     int       `json:"size"`
	StoredAt time.Time `json:"storedAt"`
}
