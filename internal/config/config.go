package config

import (
	"fmt"
	"regexp"
	"time"
)

// Default configuration values.
const (
	DefaultPrefix         = "burnin"
	DefaultTTL            = "4h"
	DefaultEnvLabel       = "dev"
	DefaultToolBinary     = "pvt"
	DefaultToolManifest   = "pvt.yaml"
	DefaultTemplateBinary = "tplc"
)

// Config holds the full configuration for a validation run.
type Config struct {
	// Location is the cloud location the ephemeral scope is created in.
	Location string `yaml:"location"`

	// Prefix is the leading segment of every derived name.
	Prefix string `yaml:"prefix"`

	// TTL is a best-effort lifetime hint stamped on scope tags.
	TTL string `yaml:"ttl"`

	// EnvLabel names the target environment (dev, staging, ...). The CI
	// environment may override it.
	EnvLabel string `yaml:"envLabel"`

	Template    TemplateConfig    `yaml:"template"`
	ProjectTool ProjectToolConfig `yaml:"projectTool"`
	Retry       RetryConfig       `yaml:"retry"`

	// ScopeIDOverride pins the scope id verbatim instead of deriving one.
	// Set from the --scope-id flag, never from the file.
	ScopeIDOverride string `yaml:"-"`

	// ToolEnvOverride pins the project tool environment name verbatim.
	ToolEnvOverride string `yaml:"-"`

	// CI carries environment-derived context. Populated by LoadCI.
	CI CIContext `yaml:"-"`
}

// TemplateConfig describes the optional template stages.
type TemplateConfig struct {
	// Binary is the template engine executable.
	Binary string `yaml:"binary"`

	// Path points at the template to build, validate and deploy. Empty
	// disables the template stages.
	Path string `yaml:"path"`

	// ParametersPath points at an optional parameters file.
	ParametersPath string `yaml:"parametersPath"`
}

// ProjectToolConfig describes the optional project provisioning tool.
type ProjectToolConfig struct {
	// Binary is the project tool executable.
	Binary string `yaml:"binary"`

	// Manifest is the file whose presence enables the tool stage.
	Manifest string `yaml:"manifest"`
}

// StageBudget is the retry budget for one pipeline stage.
type StageBudget struct {
	Attempts int      `yaml:"attempts"`
	Delay    Duration `yaml:"delay"`
}

// RetryConfig holds per-stage retry budgets. Cheap idempotent reads retry
// more cheaply than expensive deployments.
type RetryConfig struct {
	Scope    StageBudget `yaml:"scope"`
	Tool     StageBudget `yaml:"tool"`
	Template StageBudget `yaml:"template"`
	Smoke    StageBudget `yaml:"smoke"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// AsDuration returns the underlying time.Duration.
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// applyDefaults fills zero-valued fields with defaults.
func (c *Config) applyDefaults() {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.TTL == "" {
		c.TTL = DefaultTTL
	}
	if c.EnvLabel == "" {
		c.EnvLabel = DefaultEnvLabel
	}
	if c.ProjectTool.Binary == "" {
		c.ProjectTool.Binary = DefaultToolBinary
	}
	if c.ProjectTool.Manifest == "" {
		c.ProjectTool.Manifest = DefaultToolManifest
	}
	if c.Template.Binary == "" {
		c.Template.Binary = DefaultTemplateBinary
	}
	applyBudgetDefaults(&c.Retry.Scope, 3, 10*time.Second)
	applyBudgetDefaults(&c.Retry.Tool, 2, 30*time.Second)
	applyBudgetDefaults(&c.Retry.Template, 2, 30*time.Second)
	applyBudgetDefaults(&c.Retry.Smoke, 5, 5*time.Second)
}

func applyBudgetDefaults(b *StageBudget, attempts int, delay time.Duration) {
	if b.Attempts == 0 {
		b.Attempts = attempts
	}
	if b.Delay == 0 {
		b.Delay = Duration(delay)
	}
}

// namePattern constrains prefix and envLabel to pieces that survive being
// embedded in cloud resource names.
var namePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Validate checks the configuration and returns a detailed error if
// validation fails.
func (c *Config) Validate() error {
	if c.Location == "" {
		return fmt.Errorf("location is required")
	}
	if !namePattern.MatchString(c.Prefix) {
		return fmt.Errorf("prefix %q must be a lowercase alphanumeric name", c.Prefix)
	}
	if !namePattern.MatchString(c.EnvLabel) {
		return fmt.Errorf("envLabel %q must be a lowercase alphanumeric name", c.EnvLabel)
	}
	for stage, b := range map[string]StageBudget{
		"scope":    c.Retry.Scope,
		"tool":     c.Retry.Tool,
		"template": c.Retry.Template,
		"smoke":    c.Retry.Smoke,
	} {
		if b.Attempts < 1 {
			return fmt.Errorf("retry.%s.attempts must be at least 1", stage)
		}
		if b.Delay < 0 {
			return fmt.Errorf("retry.%s.delay must not be negative", stage)
		}
	}
	return nil
}
