package cloud

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/ephemeralci/burnin/internal/util/async"
	"github.com/ephemeralci/burnin/internal/util/labels"
)

// RealClient implements ScopeManager using the Hetzner Cloud API.
type RealClient struct {
	client *hcloud.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHCloudClient sets a custom hcloud client (useful for testing).
func WithHCloudClient(hc *hcloud.Client) ClientOption {
	return func(c *RealClient) {
		c.client = hc
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		client: hcloud.NewClient(hcloud.WithToken(token)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateScope creates the marker placement group anchoring a scope.
// Placement groups carry no location themselves, so the requested location
// is recorded as a label for traceability.
func (c *RealClient) CreateScope(ctx context.Context, name, location string, tags map[string]string) (string, error) {
	scopeTags := labels.NewTagBuilder(name).
		Merge(tags).
		WithMarker().
		Build()
	if location != "" {
		scopeTags["burnin.io/location"] = location
	}

	result, _, err := c.client.PlacementGroup.Create(ctx, hcloud.PlacementGroupCreateOpts{
		Name:   name,
		Type:   hcloud.PlacementGroupTypeSpread,
		Labels: scopeTags,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create scope marker %q: %w", name, err)
	}

	return fmt.Sprintf("%d", result.PlacementGroup.ID), nil
}

// ScopeExists reports whether the scope's marker placement group exists.
func (c *RealClient) ScopeExists(ctx context.Context, name string) (bool, error) {
	pg, _, err := c.client.PlacementGroup.GetByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to look up scope %q: %w", name, err)
	}
	return pg != nil, nil
}

// CountResources counts labeled resources in the scope, the marker excluded.
// The per-type queries run in parallel; they are independent reads.
func (c *RealClient) CountResources(ctx context.Context, name string) (int, error) {
	selector := labels.SelectorForScope(name)
	listOpts := hcloud.ListOpts{LabelSelector: selector}

	var total atomic.Int64
	tasks := []async.Task{
		{Name: "servers", Func: func(ctx context.Context) error {
			servers, err := c.client.Server.AllWithOpts(ctx, hcloud.ServerListOpts{ListOpts: listOpts})
			if err != nil {
				return err
			}
			total.Add(int64(len(servers)))
			return nil
		}},
		{Name: "load balancers", Func: func(ctx context.Context) error {
			lbs, err := c.client.LoadBalancer.AllWithOpts(ctx, hcloud.LoadBalancerListOpts{ListOpts: listOpts})
			if err != nil {
				return err
			}
			total.Add(int64(len(lbs)))
			return nil
		}},
		{Name: "volumes", Func: func(ctx context.Context) error {
			volumes, err := c.client.Volume.AllWithOpts(ctx, hcloud.VolumeListOpts{ListOpts: listOpts})
			if err != nil {
				return err
			}
			total.Add(int64(len(volumes)))
			return nil
		}},
		{Name: "networks", Func: func(ctx context.Context) error {
			networks, err := c.client.Network.AllWithOpts(ctx, hcloud.NetworkListOpts{ListOpts: listOpts})
			if err != nil {
				return err
			}
			total.Add(int64(len(networks)))
			return nil
		}},
		{Name: "placement groups", Func: func(ctx context.Context) error {
			pgs, err := c.client.PlacementGroup.AllWithOpts(ctx, hcloud.PlacementGroupListOpts{ListOpts: listOpts})
			if err != nil {
				return err
			}
			for _, pg := range pgs {
				if pg.Labels[labels.KeyMarker] == "true" {
					continue
				}
				total.Add(1)
			}
			return nil
		}},
	}

	if err := async.RunParallel(ctx, tasks); err != nil {
		return 0, fmt.Errorf("failed to count scope resources: %w", err)
	}

	return int(total.Load()), nil
}

// DeleteScope deletes every resource carrying the scope label, the marker
// included.
func (c *RealClient) DeleteScope(ctx context.Context, name string, wait bool) error {
	return c.cleanupBySelector(ctx, labels.SelectorForScope(name), wait)
}

// CleanupByLabel deletes all resources matching the given label selector.
func (c *RealClient) CleanupByLabel(ctx context.Context, labelSelector map[string]string) error {
	return c.cleanupBySelector(ctx, buildLabelSelector(labelSelector), true)
}

// buildLabelSelector converts a map of labels to a label selector string.
func buildLabelSelector(labels map[string]string) string {
	selector := ""
	for k, v := range labels {
		if selector != "" {
			selector += ","
		}
		selector += fmt.Sprintf("%s=%s", k, v)
	}
	return selector
}
