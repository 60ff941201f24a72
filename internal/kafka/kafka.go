package kafka

import (
	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/base/log"

	"github.com/Shopify/sarama"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/kafkapubsub"
)

var (
	minKafkaVersion = sarama.V2_6_0_0
)

// OpenTopic connects to the configured brokers for publishing. SASL/PLAIN is used
// when a Key is provided.
func OpenTopic(logger log.Logger, cfg *service.KafkaConfig) (*pubsub.Topic, error) {
	config := kafkapubsub.MinimalConfig()
	config.Version = minKafkaVersion
	config.Net.TLS.Enable = cfg.TLS

	config.Net.SASL.Enable = cfg.Key != ""
	config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
	config.Net.SASL.User = cfg.Key
	config.Net.SASL.Password = cfg.Secret

	if cfg.Producer.MaxMessageBytes > 0 {
		config.Producer.MaxMessageBytes = cfg.Producer.MaxMessageBytes
	}

	logger.Info().
		Set("tls", log.Bool(cfg.TLS)).
		Set("sasl.enable", log.Bool(config.Net.SASL.Enable)).
		Set("sasl.user", log.String(cfg.Key)).
		Set("topic", log.String(cfg.Topic)).
		Log("opening kafka topic")

	return kafkapubsub.OpenTopic(cfg.Brokers, config, cfg.Topic, nil)
}
