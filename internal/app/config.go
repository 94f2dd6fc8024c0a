package app

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/vk/pbxpatch/internal/pbx"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PlanPath points at the patch plan: a .hcl file or directory, or a
	// single .yaml/.yml file.
	PlanPath string

	// ProjectPath, when set, overrides the project file named in the plan.
	ProjectPath string

	// OnMissingAnchor, when set, overrides the plan's missing-anchor
	// policy.
	OnMissingAnchor string

	// DryRun applies the full pipeline but never writes the result back.
	DryRun bool

	// Backup forces a .bak copy of the pre-patch file even when the plan
	// does not ask for one.
	Backup bool

	LogFormat string
	LogLevel  string
}

// EnvDefaults carries the configuration values that may be seeded from the
// environment before flag parsing.
type EnvDefaults struct {
	LogLevel  string `env:"PBXPATCH_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PBXPATCH_LOG_FORMAT" envDefault:"text"`
	DryRun    bool   `env:"PBXPATCH_DRY_RUN"`
}

// ParseEnvDefaults reads the PBXPATCH_* environment variables.
func ParseEnvDefaults() (EnvDefaults, error) {
	var defaults EnvDefaults
	if err := env.Parse(&defaults); err != nil {
		return EnvDefaults{}, err
	}
	return defaults, nil
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PlanPath == "" {
		return nil, errors.New("PlanPath is a required configuration field and cannot be empty")
	}
	if cfg.OnMissingAnchor != "" {
		if _, err := pbx.ParseMissingAnchorPolicy(cfg.OnMissingAnchor); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}
