// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ephemeralci/burnin/internal/capability"
	"github.com/ephemeralci/burnin/internal/config"
	"github.com/ephemeralci/burnin/internal/pipeline"
	"github.com/ephemeralci/burnin/internal/platform/cloud"
	"github.com/ephemeralci/burnin/internal/platform/projecttool"
	"github.com/ephemeralci/burnin/internal/platform/template"
	"github.com/ephemeralci/burnin/internal/session"
)

// Exit codes for the run command. CI systems branch on these.
const (
	ExitOK          = 0
	ExitSetup       = 1
	ExitMissingTool = 2
	ExitStageFailed = 3
	ExitNoResources = 4
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads the run configuration from file.
	loadConfigFile = config.LoadFile

	// detectCapabilities inspects the working tree.
	detectCapabilities = capability.Detect

	// newCloudClient creates the cloud client for a token.
	newCloudClient = func(token string) cloud.ScopeManager {
		return cloud.NewRealClient(token)
	}

	// newToolDriver creates the project tool driver.
	newToolDriver = func(binary, dir string) projecttool.Driver {
		return projecttool.NewRunner(binary, dir)
	}

	// newTemplateEngine creates the template engine driver.
	newTemplateEngine = func(binary, dir string) template.Engine {
		return template.NewCLI(binary, dir)
	}

	// notifyContext wires interrupt signals into the run context.
	notifyContext = func(ctx context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	}
)

// RunOptions carries the run command's flag values.
type RunOptions struct {
	ConfigPath string
	ScopeID    string
	ToolEnv    string
	Keep       bool
}

// workDir is the tree a run validates. Like the project tools it drives,
// burnin always operates on the current directory.
const workDir = "."

// Run executes one full validation session and returns the process exit
// code. Cleanup runs on every path out of this function, interruption
// included, and never alters the code the pipeline produced.
func Run(ctx context.Context, opts RunOptions) int {
	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return ExitSetup
	}
	if opts.ScopeID != "" {
		cfg.ScopeIDOverride = opts.ScopeID
	}
	if opts.ToolEnv != "" {
		cfg.ToolEnvOverride = opts.ToolEnv
	}

	caps, err := detectCapabilities(workDir, cfg)
	if err != nil {
		log.Printf("Capability detection failed: %v", err)
		if errors.Is(err, capability.ErrMissingTool) {
			return ExitMissingTool
		}
		return ExitSetup
	}

	if cfg.CI.Token == "" {
		log.Printf("BURNIN_TOKEN is not set; a cloud token is required to run")
		return ExitSetup
	}

	sess := session.New(cfg, caps)

	cloudClient := newCloudClient(cfg.CI.Token)
	var tool projecttool.Driver
	if caps.UsesProjectTool {
		tool = newToolDriver(cfg.ProjectTool.Binary, workDir)
	}
	var tmpl template.Engine
	if caps.HasTemplate {
		tmpl = newTemplateEngine(cfg.Template.Binary, workDir)
	}

	runCtx, stop := notifyContext(ctx)
	defer stop()

	pctx := pipeline.NewContext(runCtx, cfg, sess, cloudClient, tool, tmpl)
	// Every event the pipeline emits carries the scope id.
	pctx.Observer = pctx.Observer.WithFields(map[string]string{"scope": sess.ScopeID})

	// The guard exists before the first mutating call so an interrupt at
	// any later point still releases whatever was created.
	guard := session.NewGuard(sess, cloudClient, tool, pctx.Observer)
	guard.Keep = opts.Keep

	err = pipeline.Run(pctx, pipeline.Stages(pctx))
	sess.ExitCode = exitCodeFor(err)
	if err != nil {
		log.Printf("Validation run failed: %v", err)
	}

	return guard.Release(sess.ExitCode)
}

// exitCodeFor maps a pipeline result to the run exit code. The
// zero-resource check is matched before the generic stage failure because
// it surfaces wrapped inside a stage error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, pipeline.ErrNoResources) {
		return ExitNoResources
	}
	return ExitStageFailed
}
