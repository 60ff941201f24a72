package mirror

import (
	"context"
	"errors"

	"github.com/moov-io/backupstore/internal/service"

	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	savedBackupsCounter = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "mirror_saved_backups",
		Help: "Counter of backups copied to mirror storage",
	}, []string{"type", "id"})

	saveBackupErrors = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "mirror_save_errors",
		Help: "Counter of errors encountered when copying backups to mirror storage",
	}, []string{"type", "id"})
)

// Storage keeps a second copy of every backup written to disk.
type Storage interface {
	SaveFile(ctx context.Context, filename string, data []byte) error

	Close() error
}

func NewStorage(cfg *service.MirrorConfig) (Storage, error) {
	if cfg == nil {
		return newMockStorage(), nil
	}
	if cfg.BucketURI != "" {
		return newBlobStorage(cfg)
	}
	return nil, errors.New("unknown mirror config")
}
