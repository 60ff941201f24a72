package alerting

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/moov-io/backupstore/internal/service"

	"github.com/stretchr/testify/require"
)

func TestNewAlerters(t *testing.T) {
	if os.Getenv("PD_API_KEY") == "" && os.Getenv("SLACK_ACCESS_TOKEN") == "" {
		t.Skip("Skip TestNewAlerters as PD_API_KEY and SLACK_ACCESS_TOKEN are not set")
	}
	var cfg service.ErrorAlerting
	if os.Getenv("PD_API_KEY") != "" {
		cfg.PagerDuty = &service.PagerDutyAlerting{
			ApiKey:     os.Getenv("PD_API_KEY"),
			RoutingKey: os.Getenv("PD_ROUTING_KEY"),
		}
	}
	if os.Getenv("SLACK_ACCESS_TOKEN") != "" {
		cfg.Slack = &service.SlackAlerting{
			AccessToken: os.Getenv("SLACK_ACCESS_TOKEN"),
			ChannelID:   os.Getenv("SLACK_CHANNEL_ID"),
		}
	}

	alerters, err := NewAlerters(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, alerters)

	require.NoError(t, AlertAll(alerters, errors.New("error message")))
}

func TestNewAlerters_None(t *testing.T) {
	alerters, err := NewAlerters(service.ErrorAlerting{})
	require.NoError(t, err)
	require.Empty(t, alerters)

	require.NoError(t, AlertAll(alerters, errors.New("ignored")))
}

func TestAlertAll_Mock(t *testing.T) {
	alerters, err := NewAlerters(service.ErrorAlerting{
		Mock: &service.MockAlerting{Enabled: true},
	})
	require.NoError(t, err)
	require.Len(t, alerters, 1)

	require.NoError(t, AlertAll(alerters, nil))
	require.NoError(t, AlertAll(alerters, errors.New("disk full")))

	mock, ok := alerters[0].(*MockAlerter)
	require.True(t, ok)
	require.Len(t, mock.Alerts(), 1)
	require.EqualError(t, mock.Alerts()[0], "disk full")
}

type detailedError struct {
	filename string
}

func (e *detailedError) Error() string {
	return "disk full"
}

func (e *detailedError) AlertDetails() map[string]string {
	return map[string]string{
		"filename": e.filename,
		"reason":   "storage",
	}
}

func TestAlertDetails(t *testing.T) {
	require.Empty(t, alertDetails(errors.New("plain")))
	require.Equal(t, "plain", describe(errors.New("plain")))

	err := fmt.Errorf("writing: %w", &detailedError{filename: "save1.json"})

	details := alertDetails(err)
	require.Equal(t, "save1.json", details["filename"])
	require.Equal(t, "storage", details["reason"])

	require.Equal(t, "writing: disk full (filename=save1.json reason=storage)", describe(err))
}
