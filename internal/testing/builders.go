package testing

import (
	"time"

	"github.com/ephemeralci/burnin/internal/config"
)

// NewConfig returns a validation-run configuration with millisecond retry
// delays so retry paths stay fast under test.
func NewConfig() *config.Config {
	budget := func(attempts int) config.StageBudget {
		return config.StageBudget{Attempts: attempts, Delay: config.Duration(time.Millisecond)}
	}
	return &config.Config{
		Location: "fsn1",
		Prefix:   "burnin",
		TTL:      "4h",
		EnvLabel: "dev",
		Template: config.TemplateConfig{
			Binary: "tplc",
		},
		ProjectTool: config.ProjectToolConfig{
			Binary:   "pvt",
			Manifest: "pvt.yaml",
		},
		Retry: config.RetryConfig{
			Scope:    budget(3),
			Tool:     budget(2),
			Template: budget(2),
			Smoke:    budget(3),
		},
	}
}
