package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Archive Archive
}

type Archive struct {
	Dir           string        `envconfig:"ARCHIVE_DIR" default:"."`
	WatchInterval time.Duration `envconfig:"WATCH_INTERVAL" default:"15m"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
