package alerting

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/moov-io/backupstore/internal/service"
)

type Alerter interface {
	AlertError(err error) error
}

// NewAlerters returns an Alerter for each configured destination. No alerters are
// returned when nothing is configured.
func NewAlerters(cfg service.ErrorAlerting) ([]Alerter, error) {
	var alerters []Alerter
	if cfg.PagerDuty != nil {
		pd, err := NewPagerDutyAlerter(cfg.PagerDuty)
		if err != nil {
			return nil, err
		}
		alerters = append(alerters, pd)
	}
	if cfg.Slack != nil {
		slack, err := NewSlackAlerter(cfg.Slack)
		if err != nil {
			return nil, err
		}
		alerters = append(alerters, slack)
	}
	if cfg.Mock != nil && cfg.Mock.Enabled {
		alerters = append(alerters, &MockAlerter{})
	}
	return alerters, nil
}

// AlertAll sends err to every alerter and returns the combined delivery errors.
func AlertAll(alerters []Alerter, err error) error {
	if err == nil {
		return nil
	}
	var errs []error
	for i := range alerters {
		if e := alerters[i].AlertError(err); e != nil {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}

// Detailer is implemented by errors which carry extra fields for alerts, such as
// the filename of the backup involved.
type Detailer interface {
	AlertDetails() map[string]string
}

func alertDetails(err error) map[string]string {
	details := make(map[string]string)

	var d Detailer
	if errors.As(err, &d) {
		for k, v := range d.AlertDetails() {
			details[k] = v
		}
	}
	return details
}

// describe renders err followed by its alert details in key order.
func describe(err error) string {
	details := alertDetails(err)
	if len(details) == 0 {
		return err.Error()
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]string, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, fmt.Sprintf("%s=%s", k, details[k]))
	}
	return fmt.Sprintf("%v (%s)", err, strings.Join(fields, " "))
}

type MockAlerter struct {
	mu     sync.Mutex
	alerts []error
}

func (a *MockAlerter) AlertError(err error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.alerts = append(a.alerts, err)
	return nil
}

func (a *MockAlerter) Alerts() []error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]error(nil), a.alerts...)
}
