package alerting

import (
	"errors"
	"fmt"

	"github.com/moov-io/backupstore/internal/service"

	"github.com/slack-go/slack"
)

type Slack struct {
	channelID string
	client    *slack.Client
}

func NewSlackAlerter(cfg *service.SlackAlerting) (*Slack, error) {
	notifier := &Slack{
		channelID: cfg.ChannelID,
		client:    slack.New(cfg.AccessToken),
	}
	if err := notifier.AuthTest(); err != nil {
		return nil, err
	}
	return notifier, nil
}

func (s *Slack) AlertError(e error) error {
	if e == nil {
		return nil
	}

	_, _, err := s.client.PostMessage(
		s.channelID,
		slack.MsgOptionText("backupstore: "+describe(e), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("sending slack message: %v", err)
	}

	return nil
}

func (s *Slack) AuthTest() error {
	if s == nil || s.client == nil {
		return errors.New("slack: nil or no slack client")
	}

	// make a call and verify we don't error
	resp, err := s.client.AuthTest()
	if err != nil {
		return fmt.Errorf("slack auth test: %v", err)
	}
	if resp.UserID == "" {
		return fmt.Errorf("slack: missing user_id")
	}

	return nil
}
