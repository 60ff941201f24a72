package service

import (
	"fmt"

	"github.com/moov-io/base/log"
)

type GlobalConfig struct {
	BackupStore Config
}

type Config struct {
	Logger  log.Logger `json:"-"`
	Admin   Admin
	Inbound Inbound
	Backup  BackupConfig
	Mirror  *MirrorConfig
	Events  *EventsConfig
	Errors  ErrorAlerting
}

func (cfg *Config) Validate() error {
	if err := cfg.Inbound.Validate(); err != nil {
		return fmt.Errorf("inbound: %v", err)
	}
	if err := cfg.Mirror.Validate(); err != nil {
		return fmt.Errorf("mirror: %v", err)
	}
	if err := cfg.Events.Validate(); err != nil {
		return fmt.Errorf("events: %v", err)
	}
	if err := cfg.Errors.Validate(); err != nil {
		return fmt.Errorf("errors: %v", err)
	}
	return nil
}

type Admin struct {
	BindAddress string
}
