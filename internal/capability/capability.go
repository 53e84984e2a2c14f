// Package capability inspects the working tree to decide which optional
// pipeline stages apply to a run. Detection is pure: it never touches cloud
// state, and it fails fast when a required local tool is missing.
package capability

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ephemeralci/burnin/internal/config"
)

// ErrMissingTool marks a required local tool that could not be found. The
// run aborts before any cloud call is made.
var ErrMissingTool = errors.New("required tool not found")

// Capabilities is the fixed set of optional-stage switches for one run.
// It is determined once at detection time and read-only afterward.
type Capabilities struct {
	// UsesProjectTool is true when the project manifest is present.
	UsesProjectTool bool

	// HasTemplate is true when the configured template path exists.
	HasTemplate bool

	// HasParametersFile is true when the parameters file exists.
	HasParametersFile bool
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Detect inspects dir and produces the capability set for cfg.
//
// A present manifest whose companion binary is missing is fatal: the run
// would only discover the gap mid-pipeline, after cloud resources exist.
func Detect(dir string, cfg *config.Config) (Capabilities, error) {
	var caps Capabilities

	if fileExists(filepath.Join(dir, cfg.ProjectTool.Manifest)) {
		if _, err := lookPath(cfg.ProjectTool.Binary); err != nil {
			return Capabilities{}, fmt.Errorf("%w: manifest %s present but %q is not on PATH",
				ErrMissingTool, cfg.ProjectTool.Manifest, cfg.ProjectTool.Binary)
		}
		caps.UsesProjectTool = true
	}

	if cfg.Template.Path != "" && fileExists(resolve(dir, cfg.Template.Path)) {
		if _, err := lookPath(cfg.Template.Binary); err != nil {
			return Capabilities{}, fmt.Errorf("%w: template %s present but %q is not on PATH",
				ErrMissingTool, cfg.Template.Path, cfg.Template.Binary)
		}
		caps.HasTemplate = true
	}

	if cfg.Template.ParametersPath != "" && fileExists(resolve(dir, cfg.Template.ParametersPath)) {
		caps.HasParametersFile = true
	}

	return caps, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
