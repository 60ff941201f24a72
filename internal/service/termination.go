package service

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/moov-io/base/log"
)

// NewTerminationListener returns a channel which receives an error once the process
// is asked to stop via SIGINT or SIGTERM.
func NewTerminationListener() chan error {
	errs := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	return errs
}

// AwaitTermination blocks until terminationListener fires and returns what stopped the process.
func AwaitTermination(logger log.Logger, terminationListener chan error) error {
	err := <-terminationListener
	if err != nil {
		logger.Info().With(log.Fields{
			"reason": log.String(err.Error()),
		}).Log("backupstore shutting down")
	}
	return err
}
