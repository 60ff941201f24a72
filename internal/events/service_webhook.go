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
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/backupstore/pkg/models"
	"github.com/moov-io/base/log"

	"github.com/hashicorp/go-retryablehttp"
)

type webhookService struct {
	client   *retryablehttp.Client
	endpoint *url.URL
	logger   log.Logger
}

func newWebhookService(logger log.Logger, cfg *service.WebhookConfig) (*webhookService, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("webhook: missing endpoint")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("webhook: %v", err)
	}
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 3
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = cfg.Timeout
	if client.HTTPClient.Timeout <= 0 {
		client.HTTPClient.Timeout = 10 * time.Second
	}
	return &webhookService{
		client:   client,
		endpoint: u,
		logger:   logger,
	}, nil
}

func (w *webhookService) Send(ctx context.Context, evt models.Event) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, "POST", w.endpoint.String(), bytes.NewReader(evt.Bytes()))
	if err != nil {
		return fmt.Errorf("error preparing request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("problem sending %s webhook: %v", evt.Name(), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected %s webhook response: %s", evt.Name(), resp.Status)
	}

	w.logger.Info().Logf("sent %s webhook to %s", evt.Name(), w.endpoint.Host)

	return nil
}
