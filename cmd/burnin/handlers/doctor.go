package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"

	"github.com/ephemeralci/burnin/internal/capability"
	"github.com/ephemeralci/burnin/internal/session"
)

// DoctorReport is the offline diagnostic summary for a working tree. It
// involves no cloud calls; everything is derived from configuration, the
// local filesystem, and PATH.
type DoctorReport struct {
	Capabilities capability.Capabilities `json:"capabilities"`
	ScopeID      string                  `json:"scopeId"`
	DeploymentID string                  `json:"deploymentId"`
	ToolEnvName  string                  `json:"toolEnvName,omitempty"`
	Tools        []ToolStatus            `json:"tools"`
	TokenPresent bool                    `json:"tokenPresent"`
	Problem      string                  `json:"problem,omitempty"`
}

// ToolStatus reports whether a required binary resolves on PATH.
type ToolStatus struct {
	Name  string `json:"name"`
	Path  string `json:"path,omitempty"`
	Found bool   `json:"found"`
}

// Seams for testing.
var (
	lookupTool   = exec.LookPath
	stdoutWriter = func() *os.File { return os.Stdout }
)

// Doctor handles the doctor command.
//
// It loads the configuration, runs capability detection, and prints what a
// run would do: which stages apply, which names would be derived, and
// whether the required tools and token are available.
func Doctor(configPath string, jsonOutput bool) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	report := DoctorReport{TokenPresent: cfg.CI.Token != ""}

	caps, err := detectCapabilities(workDir, cfg)
	if err != nil {
		if !errors.Is(err, capability.ErrMissingTool) {
			return err
		}
		// A missing tool is exactly what doctor exists to report.
		report.Problem = err.Error()
	}
	report.Capabilities = caps

	sess := session.New(cfg, caps)
	report.ScopeID = sess.ScopeID
	report.DeploymentID = sess.DeploymentID
	report.ToolEnvName = sess.ToolEnvName

	report.Tools = []ToolStatus{
		toolStatus(cfg.ProjectTool.Binary),
		toolStatus(cfg.Template.Binary),
	}

	if jsonOutput {
		enc := json.NewEncoder(stdoutWriter())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(report)
	return nil
}

func toolStatus(binary string) ToolStatus {
	path, err := lookupTool(binary)
	return ToolStatus{Name: binary, Path: path, Found: err == nil}
}

func printReport(r DoctorReport) {
	out := stdoutWriter()
	ok, bad := "ok", "missing"
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		ok, bad = "✅", "❌"
	}
	mark := func(b bool) string {
		if b {
			return ok
		}
		return bad
	}

	fmt.Fprintln(out, "burnin doctor")
	fmt.Fprintf(out, "  scope id:       %s\n", r.ScopeID)
	fmt.Fprintf(out, "  deployment id:  %s\n", r.DeploymentID)
	if r.ToolEnvName != "" {
		fmt.Fprintf(out, "  tool env:       %s\n", r.ToolEnvName)
	}
	fmt.Fprintf(out, "  project tool:   %t\n", r.Capabilities.UsesProjectTool)
	fmt.Fprintf(out, "  template:       %t\n", r.Capabilities.HasTemplate)
	fmt.Fprintf(out, "  parameters:     %t\n", r.Capabilities.HasParametersFile)
	for _, t := range r.Tools {
		fmt.Fprintf(out, "  binary %-9s %s", t.Name+":", mark(t.Found))
		if t.Found {
			fmt.Fprintf(out, " (%s)", t.Path)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "  cloud token:    %s\n", mark(r.TokenPresent))
	if r.Problem != "" {
		fmt.Fprintf(out, "  problem:        %s\n", r.Problem)
	}
}
