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
	"fmt"

	"github.com/moov-io/backupstore/internal/awssqs"
	"github.com/moov-io/backupstore/internal/kafka"
	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/backupstore/pkg/models"
	"github.com/moov-io/base/log"

	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub"
)

type streamService struct {
	topic *pubsub.Topic
}

func newStreamService(logger log.Logger, cfg *service.EventsStream) (*streamService, error) {
	if cfg == nil {
		return nil, errors.New("nil EventsStream config")
	}

	topic, err := openTopic(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("events stream: %v", err)
	}
	return &streamService{
		topic: topic,
	}, nil
}

func openTopic(logger log.Logger, cfg *service.EventsStream) (*pubsub.Topic, error) {
	if cfg.InMem != nil {
		return pubsub.OpenTopic(context.Background(), cfg.InMem.URL)
	}
	if cfg.Kafka != nil {
		return kafka.OpenTopic(logger, cfg.Kafka)
	}
	if cfg.SNS != nil {
		return awssqs.OpenTopic(logger, cfg.SNS)
	}
	return nil, errors.New("no topic configured")
}

func (ss *streamService) Send(ctx context.Context, evt models.Event) error {
	err := ss.topic.Send(ctx, &pubsub.Message{
		Body: evt.Bytes(),
		Metadata: map[string]string{
			"type": evt.Name(),
		},
	})
	if err != nil {
		return fmt.Errorf("error emitting %s: %v", evt.Name(), err)
	}
	return nil
}

func (ss *streamService) Shutdown(ctx context.Context) error {
	return ss.topic.Shutdown(ctx)
}
