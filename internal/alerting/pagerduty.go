package alerting

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PagerDuty/go-pagerduty"
	"github.com/moov-io/backupstore/internal/service"
)

type PagerDuty struct {
	client     *pagerduty.Client
	routingKey string
}

func NewPagerDutyAlerter(cfg *service.PagerDutyAlerting) (*PagerDuty, error) {
	notifier := &PagerDuty{
		client:     pagerduty.NewClient(cfg.ApiKey),
		routingKey: cfg.RoutingKey,
	}
	if notifier.client != nil {
		notifier.client.SetDebugFlag(pagerduty.DebugCaptureLastResponse)
	}
	if err := notifier.ping(); err != nil {
		return nil, err
	}
	return notifier, nil
}

func (pd *PagerDuty) AlertError(e error) error {
	if e == nil {
		return nil
	}

	hostName, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("getting host name: %v", err)
	}

	details := alertDetails(e)
	details["error"] = e.Error()

	dedupKey := e.Error()
	details["dedupKey"] = dedupKey
	errorHash := fmt.Sprintf("%x", sha256.Sum256([]byte(dedupKey)))

	event := &pagerduty.V2Event{
		RoutingKey: pd.routingKey,
		Action:     "trigger",
		DedupKey:   errorHash,
		Payload: &pagerduty.V2Payload{
			Summary:   describe(e),
			Source:    hostName,
			Severity:  "critical",
			Component: "backupstore",
			Timestamp: time.Now().Format(time.RFC3339),
			Details:   details,
		},
	}

	if pd.client == nil {
		return errors.New("nil PD client")
	}

	resp, err := pd.client.ManageEventWithContext(context.Background(), event)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("%s problem creating PagerDuty event caused by %s: %s", resp.Status, resp.Message, strings.Join(resp.Errors, ", "))
		}
		var body []byte
		if httpResp, ok := pd.client.LastAPIResponse(); ok && httpResp != nil && httpResp.Body != nil {
			body, _ = io.ReadAll(httpResp.Body)
		}
		return fmt.Errorf("unexpected response of %s from creating event in PagerDuty: %v", string(body), err)
	}

	return nil
}

func (pd *PagerDuty) ping() error {
	if pd == nil || pd.client == nil {
		return errors.New("pagerduty: nil")
	}

	// make a call and verify we don't error
	resp, err := pd.client.ListAbilitiesWithContext(context.Background())
	if err != nil {
		return fmt.Errorf("pagerduty list abilities: %v", err)
	}
	if len(resp.Abilities) <= 0 {
		return fmt.Errorf("pagerduty: missing abilities")
	}

	return nil
}
