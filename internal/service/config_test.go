package service_test

import (
	"testing"

	"github.com/moov-io/backupstore"
	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/base/config"
	"github.com/moov-io/base/log"

	"github.com/stretchr/testify/require"
)

func Test_ConfigLoading(t *testing.T) {
	logger := log.NewNopLogger()

	configService := config.NewService(logger)

	gc := &service.GlobalConfig{}
	err := configService.LoadFromFS(gc, backupstore.ConfigFS)
	require.NoError(t, err)

	cfg := gc.BackupStore
	require.Equal(t, ":8484", cfg.Inbound.HTTP.BindAddress)
	require.Equal(t, ":9494", cfg.Admin.BindAddress)
	require.False(t, cfg.Backup.Enabled())
	require.Nil(t, cfg.Mirror)
	require.Nil(t, cfg.Events)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := &service.Config{
		Mirror: &service.MirrorConfig{},
	}
	require.ErrorContains(t, cfg.Validate(), "missing BucketURI")

	cfg = &service.Config{
		Events: &service.EventsConfig{},
	}
	require.ErrorContains(t, cfg.Validate(), "one of Stream or Webhook")

	cfg = &service.Config{
		Events: &service.EventsConfig{
			Stream: &service.EventsStream{
				Kafka: &service.KafkaConfig{Brokers: []string{"localhost:9092"}},
			},
		},
	}
	require.ErrorContains(t, cfg.Validate(), "missing Topic")

	cfg = &service.Config{
		Inbound: service.Inbound{
			HTTP: service.HTTPConfig{
				TLS: service.TLSConfig{CertFile: "server.crt"},
			},
		},
	}
	require.ErrorContains(t, cfg.Validate(), "CertFile and KeyFile")

	cfg = &service.Config{
		Errors: service.ErrorAlerting{
			Slack: &service.SlackAlerting{AccessToken: "xoxb"},
		},
	}
	require.ErrorContains(t, cfg.Validate(), "channelID is missing")
}

func TestBackupConfig(t *testing.T) {
	cfg := service.BackupConfig{
		Path:          t.TempDir(),
		Authorization: "secret",
	}
	require.True(t, cfg.Enabled())
	require.Equal(t, "secret", cfg.Token())

	t.Setenv("BACKUP_AUTHORIZATION", "from-env")
	require.Equal(t, "from-env", cfg.Token())
}

func TestBackupConfig_Blank(t *testing.T) {
	t.Setenv("BACKUP_AUTHORIZATION", "")

	cfg := service.BackupConfig{
		Path:          "  ",
		Authorization: " \t",
	}
	require.False(t, cfg.Enabled())
	require.Equal(t, "", cfg.Token())

	// surrounding whitespace is kept on a real token
	cfg.Authorization = " secret "
	require.Equal(t, " secret ", cfg.Token())
}
