// Package main provides a standalone cleanup utility for leaked burnin
// resources.
//
// It deletes cloud resources by label selector, which is the recovery path
// when a validation run crashed before its own cleanup, or when a scope was
// kept deliberately and forgotten.
//
// Usage:
//
//	# Delete everything a scope owns, waiting for completion
//	cleanup -scope-id burnin-dev-local-20240101000000 -wait
//
//	# Delete everything a CI run left behind
//	cleanup -run-id 12345
//
//	# Delete by arbitrary labels
//	cleanup -label burnin.io/environment=staging -label burnin.io/managed-by=burnin
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ephemeralci/burnin/internal/platform/cloud"
	"github.com/ephemeralci/burnin/internal/util/labels"
)

type labelFlags []string

func (lf *labelFlags) String() string {
	return strings.Join(*lf, ",")
}

func (lf *labelFlags) Set(value string) error {
	*lf = append(*lf, value)
	return nil
}

func main() {
	var (
		scopeID    = flag.String("scope-id", "", "Scope id to delete")
		runID      = flag.String("run-id", "", "CI run id to clean up")
		wait       = flag.Bool("wait", false, "Wait for server deletion to complete")
		extraLabel labelFlags
	)

	flag.Var(&extraLabel, "label", "Additional labels in key=value format (can be specified multiple times)")
	flag.Parse()

	selector := make(map[string]string)

	if *scopeID != "" {
		selector[labels.KeyScope] = *scopeID
	}

	if *runID != "" {
		selector[labels.KeyRunID] = *runID
	}

	for _, l := range extraLabel {
		parts := strings.SplitN(l, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("Invalid label format: %s (expected key=value)", l)
		}
		selector[parts[0]] = parts[1]
	}

	if len(selector) == 0 {
		log.Fatal("Error: At least one selector must be specified (-scope-id, -run-id, or -label)")
	}

	token := os.Getenv("BURNIN_TOKEN")
	if token == "" {
		log.Fatal("Error: BURNIN_TOKEN environment variable not set")
	}

	client := cloud.NewRealClient(token)

	ctx := context.Background()

	log.Printf("Cleanup utility starting...")
	log.Printf("Label selector: %v", selector)

	// A pure scope selector goes through the scope-delete path, which knows
	// dependency order and can wait for completion.
	if *scopeID != "" && len(selector) == 1 {
		if err := client.DeleteScope(ctx, *scopeID, *wait); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	} else {
		if err := client.CleanupByLabel(ctx, selector); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	fmt.Println("Cleanup completed successfully")
}
