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
	"time"
)

type EventsConfig struct {
	Stream  *EventsStream
	Webhook *WebhookConfig
}

func (cfg *EventsConfig) Validate() error {
	if cfg == nil {
		return nil
	}
	if cfg.Stream == nil && cfg.Webhook == nil {
		return errors.New("one of Stream or Webhook is required")
	}
	if cfg.Stream != nil {
		if err := cfg.Stream.Validate(); err != nil {
			return err
		}
	}
	if cfg.Webhook != nil && cfg.Webhook.Endpoint == "" {
		return errors.New("webhook: missing Endpoint")
	}
	return nil
}

type EventsStream struct {
	InMem *InMemory
	Kafka *KafkaConfig
	SNS   *SNSConfig
}

func (cfg *EventsStream) Validate() error {
	if cfg.InMem == nil && cfg.Kafka == nil && cfg.SNS == nil {
		return errors.New("stream: one of InMem, Kafka or SNS is required")
	}
	if cfg.SNS != nil && cfg.SNS.TopicARN == "" {
		return errors.New("stream: sns: missing TopicARN")
	}
	if cfg.Kafka != nil {
		if len(cfg.Kafka.Brokers) == 0 {
			return errors.New("stream: kafka: missing Brokers")
		}
		if cfg.Kafka.Topic == "" {
			return errors.New("stream: kafka: missing Topic")
		}
	}
	return nil
}

type InMemory struct {
	URL string
}

type KafkaConfig struct {
	Brokers []string
	Key     string
	Secret  string
	Topic   string
	TLS     bool

	Producer KafkaProducerConfig
}

type KafkaProducerConfig struct {
	MaxMessageBytes int
}

type SNSConfig struct {
	TopicARN string
	Region   string
}

type WebhookConfig struct {
	Endpoint string

	// Timeout bounds each delivery attempt. Zero uses a 10s default.
	Timeout time.Duration
}
