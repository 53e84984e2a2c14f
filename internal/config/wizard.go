package config

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	Location     string
	EnvLabel     string
	TemplatePath string
	UseTool      bool
}

// RunWizard runs the interactive starter-config wizard.
func RunWizard() (*WizardResult, error) {
	result := &WizardResult{
		Location: "fsn1",
		EnvLabel: DefaultEnvLabel,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Cloud location").
				Options(
					huh.NewOption("Falkenstein (fsn1)", "fsn1"),
					huh.NewOption("Nuremberg (nbg1)", "nbg1"),
					huh.NewOption("Helsinki (hel1)", "hel1"),
					huh.NewOption("Ashburn (ash)", "ash"),
				).
				Value(&result.Location),
			huh.NewInput().
				Title("Environment label").
				Placeholder(DefaultEnvLabel).
				Value(&result.EnvLabel),
			huh.NewInput().
				Title("Template path (empty to skip template stages)").
				Placeholder("infra/main.tpl").
				Value(&result.TemplatePath),
			huh.NewConfirm().
				Title("Provision through the project tool?").
				Value(&result.UseTool),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard aborted: %w", err)
	}
	if result.EnvLabel == "" {
		result.EnvLabel = DefaultEnvLabel
	}
	return result, nil
}

// Render produces starter YAML for the wizard result.
func (w *WizardResult) Render() ([]byte, error) {
	cfg := map[string]any{
		"location": w.Location,
		"envLabel": w.EnvLabel,
	}
	if w.TemplatePath != "" {
		cfg["template"] = map[string]any{"path": w.TemplatePath}
	}
	if w.UseTool {
		cfg["projectTool"] = map[string]any{"manifest": DefaultToolManifest}
	}
	return yaml.Marshal(cfg)
}
