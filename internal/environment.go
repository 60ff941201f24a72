package internal

import (
	"context"
	"fmt"

	"github.com/moov-io/backupstore"
	"github.com/moov-io/backupstore/internal/alerting"
	"github.com/moov-io/backupstore/internal/backup"
	"github.com/moov-io/backupstore/internal/events"
	"github.com/moov-io/backupstore/internal/mirror"
	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/base/admin"
	"github.com/moov-io/base/config"
	"github.com/moov-io/base/log"
	"github.com/moov-io/base/stime"

	"github.com/gorilla/mux"
)

// Environment - Contains everything thats been instantiated for this service.
type Environment struct {
	Logger      log.Logger
	Config      *service.Config
	TimeService stime.TimeService

	Mirror   mirror.Storage
	Events   events.Emitter
	Alerters []alerting.Alerter
	Backup   *backup.Service

	PublicRouter *mux.Router
	AdminServer  *admin.Server
	Shutdown     func()
}

// NewEnvironment - Generates a new default environment. Overrides can be specified via configs.
func NewEnvironment(env *Environment) (*Environment, error) {
	if env == nil {
		env = &Environment{}
	}

	env.Shutdown = func() {}

	if env.Logger == nil {
		env.Logger = log.NewDefaultLogger()
	}

	if env.Config == nil {
		cfg, err := LoadConfig(env.Logger)
		if err != nil {
			return nil, err
		}
		env.Config = cfg
	}
	env.Config.Logger = env.Logger

	if err := env.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	if env.TimeService == nil {
		env.TimeService = stime.NewSystemTimeService()
	}

	if env.Mirror == nil {
		store, err := mirror.NewStorage(env.Config.Mirror)
		if err != nil {
			return nil, fmt.Errorf("unable to create mirror storage: %v", err)
		}
		env.Mirror = store

		prev := env.Shutdown
		env.Shutdown = func() {
			prev()
			if err := store.Close(); err != nil {
				env.Logger.Error().LogErrorf("closing mirror storage: %v", err)
			}
		}
	}

	if env.Events == nil {
		emitter, err := events.NewEmitter(env.Logger, env.Config.Events)
		if err != nil {
			return nil, fmt.Errorf("unable to create events emitter: %v", err)
		}
		env.Events = emitter

		if s, ok := emitter.(interface{ Shutdown(context.Context) error }); ok {
			prev := env.Shutdown
			env.Shutdown = func() {
				prev()
				if err := s.Shutdown(context.Background()); err != nil {
					env.Logger.Error().LogErrorf("shutting down events: %v", err)
				}
			}
		}
	}

	if env.Alerters == nil {
		alerters, err := alerting.NewAlerters(env.Config.Errors)
		if err != nil {
			return nil, fmt.Errorf("unable to create error alerters: %v", err)
		}
		env.Alerters = alerters
	}

	if env.Backup == nil {
		env.Backup = backup.NewService(env.Logger, env.Config.Backup, nil, env.Mirror, env.Events, env.Alerters, env.TimeService)
	}

	// finish pending mirror copies and events before their clients close
	closeDeps := env.Shutdown
	env.Shutdown = func() {
		env.Backup.Wait()
		closeDeps()
	}
	if env.Config.Backup.Enabled() {
		env.Logger.Info().Logf("storing backups in %s", env.Config.Backup.Path)
	} else {
		env.Logger.Info().Log("no backup path configured, backup endpoint is disabled")
	}

	// router
	if env.PublicRouter == nil {
		env.PublicRouter = mux.NewRouter()
	}
	backup.NewBackupController(env.Logger, env.Backup).AppendRoutes(env.PublicRouter)

	return env, nil
}

func LoadConfig(logger log.Logger) (*service.Config, error) {
	configService := config.NewService(logger)

	global := &service.GlobalConfig{}
	if err := configService.LoadFromFS(global, backupstore.ConfigFS); err != nil {
		return nil, err
	}

	cfg := &global.BackupStore

	return cfg, nil
}
