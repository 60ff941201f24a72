package awssqs

import (
	"testing"

	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/base/log"

	"github.com/stretchr/testify/require"
)

func TestTopicURL(t *testing.T) {
	cfg := &service.SNSConfig{
		TopicARN: "arn:aws:sns:us-east-2:123456789012:backups",
		Region:   "us-east-2",
	}
	require.Equal(t, "awssns:///arn:aws:sns:us-east-2:123456789012:backups?region=us-east-2", TopicURL(cfg))

	cfg.Region = ""
	require.Equal(t, "awssns:///arn:aws:sns:us-east-2:123456789012:backups", TopicURL(cfg))
}

func TestOpenTopic_MissingARN(t *testing.T) {
	_, err := OpenTopic(log.NewTestLogger(), &service.SNSConfig{})
	require.ErrorContains(t, err, "missing TopicARN")
}
