// Package config reads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Server struct {
	Addr        string `env:"STRATEGY_EXPLORER_ADDR" envDefault:":8080"`
	DatasetPath string `env:"STRATEGY_EXPLORER_DATASET" envDefault:"strategies.csv"`
	TopN        int    `env:"STRATEGY_EXPLORER_TOP_N" envDefault:"3"`
	Verbose     bool   `env:"STRATEGY_EXPLORER_VERBOSE" envDefault:"false"`
}

func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.TopN < 0 {
		cfg.TopN = 0
	}
	return cfg, nil
}
