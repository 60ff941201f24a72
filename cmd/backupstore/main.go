package main

import (
	"os"

	"github.com/moov-io/backupstore"
	"github.com/moov-io/backupstore/internal"
	"github.com/moov-io/backupstore/internal/service"
	"github.com/moov-io/base/log"
)

func main() {
	logger := log.NewDefaultLogger().Set("app", log.String("backupstore")).Set("version", log.String(backupstore.Version))

	env, err := internal.NewEnvironment(&internal.Environment{
		Logger: logger,
	})
	if err != nil {
		logger.Fatal().LogErrorf("Error loading up environment: %v", err)
		os.Exit(1)
	}
	defer env.Shutdown()

	termListener := service.NewTerminationListener()

	stopServers := env.RunServers(termListener)
	defer stopServers()

	service.AwaitTermination(env.Logger, termListener)
}
