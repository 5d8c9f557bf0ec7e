package config

import "github.com/kelseyhightower/envconfig"

// Env holds process-environment defaults for the CLI.
type Env struct {
	Dir        string `envconfig:"DIR" default:"."`
	ConfigFile string `envconfig:"CONFIG" default:"cierre.yaml"`
}

// FromEnv reads CIERRE_* environment variables.
func FromEnv() (Env, error) {
	var e Env
	if err := envconfig.Process("cierre", &e); err != nil {
		return Env{}, err
	}
	return e, nil
}
