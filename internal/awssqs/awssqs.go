package awssqs

import (
	"context"
	"fmt"
	"net/url"

	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/base/log"

	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/awssnssqs"
)

// TopicURL builds the gocloud.dev URL for an SNS topic.
func TopicURL(cfg *service.SNSConfig) string {
	u := "awssns:///" + cfg.TopicARN
	if cfg.Region != "" {
		u += "?" + url.Values{"region": []string{cfg.Region}}.Encode()
	}
	return u
}

func OpenTopic(logger log.Logger, cfg *service.SNSConfig) (*pubsub.Topic, error) {
	if cfg.TopicARN == "" {
		return nil, fmt.Errorf("sns: missing TopicARN")
	}

	logger.Info().
		Set("topic_arn", log.String(cfg.TopicARN)).
		Set("region", log.String(cfg.Region)).
		Log("opening sns topic")

	return pubsub.OpenTopic(context.Background(), TopicURL(cfg))
}
