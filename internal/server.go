package internal

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/moov-io/backupstore"
	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/base/admin"
	"github.com/moov-io/base/log"

	"github.com/gorilla/mux"
)

// RunServers - Boots up all the servers and awaits till they are stopped.
func (env *Environment) RunServers(terminationListener chan error) func() {
	env.AdminServer = bootAdminServer(terminationListener, env.Logger, env.Config.Admin)
	if env.AdminServer != nil {
		env.AdminServer.AddVersionHandler(backupstore.Version)
		env.AdminServer.AddReadinessCheck("backup-directory", env.Backup.Ready)
		env.registerConfigRoute()
	}

	_, shutdownPublicServer := bootHTTPServer("public", env.PublicRouter, terminationListener, env.Logger, env.Config.Inbound.HTTP)

	return func() {
		if env.AdminServer != nil {
			env.AdminServer.Shutdown()
		}
		shutdownPublicServer()
	}
}

func bootHTTPServer(name string, routes *mux.Router, errs chan<- error, logger log.Logger, config service.HTTPConfig) (*http.Server, func()) {
	// Create main HTTP server
	serve := &http.Server{
		Addr:    config.BindAddress,
		Handler: routes,
		TLSConfig: &tls.Config{
			InsecureSkipVerify: false,
			MinVersion:         tls.VersionTLS12,
		},
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start main HTTP server
	go func() {
		if config.TLS.CertFile != "" && config.TLS.KeyFile != "" {
			logger.Info().Log(fmt.Sprintf("%s listening on %s for HTTPS", name, config.BindAddress))
			if err := serve.ListenAndServeTLS(config.TLS.CertFile, config.TLS.KeyFile); err != nil && err != http.ErrServerClosed {
				errs <- logger.Fatal().LogErrorf("problem starting https: %w", err).Err()
			}
		} else {
			logger.Info().Log(fmt.Sprintf("%s listening on %s for HTTP", name, config.BindAddress))
			if err := serve.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errs <- logger.Fatal().LogErrorf("problem starting http: %w", err).Err()
			}
		}
	}()

	shutdownServer := func() {
		if err := serve.Shutdown(context.Background()); err != nil {
			logger.Error().LogErrorf("shutting down: %v", err)
		}
	}

	return serve, shutdownServer
}

func bootAdminServer(errs chan<- error, logger log.Logger, config service.Admin) *admin.Server {
	adminServer, err := admin.New(admin.Opts{
		Addr: config.BindAddress,
	})
	if err != nil {
		errs <- logger.Fatal().LogErrorf("problem creating admin server: %v", err).Err()
		return nil
	}

	go func() {
		logger.Info().Log(fmt.Sprintf("listening on %s", adminServer.BindAddr()))
		if err := adminServer.Listen(); err != nil && err != http.ErrServerClosed {
			errs <- logger.Fatal().LogErrorf("problem starting admin http: %w", err).Err()
		}
	}()

	return adminServer
}

const redacted = "*****"

func (env *Environment) registerConfigRoute() {
	env.AdminServer.AddHandler("/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		json.NewEncoder(w).Encode(redactConfig(*env.Config))
	})
}

// redactConfig blanks out secrets before the config is shown on the admin server.
func redactConfig(cfg service.Config) service.Config {
	if cfg.Backup.Authorization != "" {
		cfg.Backup.Authorization = redacted
	}
	if cfg.Events != nil {
		events := *cfg.Events
		if events.Stream != nil && events.Stream.Kafka != nil {
			kafka := *events.Stream.Kafka
			if kafka.Secret != "" {
				kafka.Secret = redacted
			}
			stream := *events.Stream
			stream.Kafka = &kafka
			events.Stream = &stream
		}
		if events.Webhook != nil {
			webhook := *events.Webhook
			webhook.Endpoint = redactURL(webhook.Endpoint)
			events.Webhook = &webhook
		}
		cfg.Events = &events
	}
	if cfg.Errors.PagerDuty != nil {
		pd := *cfg.Errors.PagerDuty
		pd.ApiKey = redacted
		cfg.Errors.PagerDuty = &pd
	}
	if cfg.Errors.Slack != nil {
		slack := *cfg.Errors.Slack
		slack.AccessToken = redacted
		cfg.Errors.Slack = &slack
	}
	return cfg
}

// redactURL hides the userinfo and query of raw, where webhook credentials are
// usually carried.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return redacted
	}
	if u.User != nil {
		u.User = url.User(redacted)
	}
	if u.RawQuery != "" {
		u.RawQuery = redacted
	}
	return u.String()
}
