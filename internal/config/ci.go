package config

import (
	"github.com/caarlos0/env/v11"
)

// CIContext holds read-only signals from the execution environment.
// Under CI the run identifier makes derived names unique across concurrent
// runs; locally a timestamp takes that role.
type CIContext struct {
	// Token authenticates against the cloud API. Required for mutating
	// commands, unused by doctor and init.
	Token string `env:"BURNIN_TOKEN"`

	// IsCI reports whether the process runs under a CI system.
	IsCI bool `env:"CI"`

	// RunID is the CI system's unique identifier for this invocation.
	RunID string `env:"CI_RUN_ID"`

	// Repository is the source repository name (owner/repo form).
	Repository string `env:"CI_REPOSITORY"`

	// EnvLabel overrides the configured environment label when set.
	EnvLabel string `env:"CI_ENV_LABEL"`
}

// LoadCI reads CI context from the process environment.
func LoadCI() (*CIContext, error) {
	var ci CIContext
	if err := env.Parse(&ci); err != nil {
		return nil, err
	}
	return &ci, nil
}
