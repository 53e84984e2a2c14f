package handlers

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ephemeralci/burnin/internal/config"
)

// Seams for testing.
var (
	runWizard = config.RunWizard
	writeFile = os.WriteFile

	stdinIsTTY = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// Init handles the init command.
//
// Interactive terminals get the wizard; everything else (CI, pipes) gets a
// starter config with defaults so init stays scriptable.
func Init(path string, force bool) error {
	if path == "" {
		path = "burnin.yaml"
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	var result *config.WizardResult
	if stdinIsTTY() {
		var err error
		result, err = runWizard()
		if err != nil {
			return err
		}
	} else {
		log.Printf("No interactive terminal, writing defaults")
		result = &config.WizardResult{Location: "fsn1", EnvLabel: config.DefaultEnvLabel}
	}

	data, err := result.Render()
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	if err := writeFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Printf("Wrote starter configuration to %s", path)
	log.Printf("Next: set BURNIN_TOKEN and run 'burnin run -c %s'", path)
	return nil
}
