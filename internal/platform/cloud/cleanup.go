package cloud

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// resource is a constraint for Hetzner Cloud resources with Name and ID.
type resource interface {
	*hcloud.Server | *hcloud.LoadBalancer | *hcloud.Volume |
		*hcloud.Network | *hcloud.PlacementGroup
}

type resourceInfo struct {
	Name string
	ID   int64
}

func getResourceInfo[T resource](r T) resourceInfo {
	switch v := any(r).(type) {
	case *hcloud.Server:
		return resourceInfo{Name: v.Name, ID: v.ID}
	case *hcloud.LoadBalancer:
		return resourceInfo{Name: v.Name, ID: v.ID}
	case *hcloud.Volume:
		return resourceInfo{Name: v.Name, ID: v.ID}
	case *hcloud.Network:
		return resourceInfo{Name: v.Name, ID: v.ID}
	case *hcloud.PlacementGroup:
		return resourceInfo{Name: v.Name, ID: v.ID}
	default:
		return resourceInfo{}
	}
}

// deleteResourcesBySelector lists and deletes one resource type. Deletion
// failures are collected, not fatal, so the remaining types still get their
// turn.
func deleteResourcesBySelector[T resource](
	ctx context.Context,
	resourceType string,
	listFn func(context.Context) ([]T, error),
	deleteFn func(context.Context, T) error,
) error {
	resources, err := listFn(ctx)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", resourceType, err)
	}

	var deleteErrs []error
	for _, r := range resources {
		info := getResourceInfo(r)
		log.Printf("[Cleanup] Deleting %s: %s (ID: %d)", resourceType, info.Name, info.ID)
		if err := deleteFn(ctx, r); err != nil {
			log.Printf("[Cleanup] Warning: Failed to delete %s %s: %v", resourceType, info.Name, err)
			deleteErrs = append(deleteErrs, fmt.Errorf("%s %q: %w", resourceType, info.Name, err))
		}
	}

	if len(deleteErrs) > 0 {
		return errors.Join(deleteErrs...)
	}
	return nil
}

// cleanupBySelector deletes all resources matching the selector in
// dependency order: servers first, the scope marker last. With wait=true
// server deletion is polled to completion before dependent resources are
// removed; with wait=false every delete is issued without polling, for
// cleanup paths running right before process exit.
func (c *RealClient) cleanupBySelector(ctx context.Context, selector string, wait bool) error {
	log.Printf("[Cleanup] Deleting resources with selector: %s", selector)

	var cleanupErrs []error
	collect := func(kind string, err error) {
		if err != nil {
			log.Printf("[Cleanup] Warning: %s cleanup failed: %v", kind, err)
			cleanupErrs = append(cleanupErrs, fmt.Errorf("%s: %w", kind, err))
		}
	}

	collect("servers", c.deleteServersBySelector(ctx, selector, wait))

	collect("load balancers", deleteResourcesBySelector(ctx, "load balancer",
		func(ctx context.Context) ([]*hcloud.LoadBalancer, error) {
			return c.client.LoadBalancer.AllWithOpts(ctx, hcloud.LoadBalancerListOpts{
				ListOpts: hcloud.ListOpts{LabelSelector: selector},
			})
		},
		func(ctx context.Context, lb *hcloud.LoadBalancer) error {
			_, err := c.client.LoadBalancer.Delete(ctx, lb)
			return err
		},
	))

	collect("volumes", deleteResourcesBySelector(ctx, "volume",
		func(ctx context.Context) ([]*hcloud.Volume, error) {
			return c.client.Volume.AllWithOpts(ctx, hcloud.VolumeListOpts{
				ListOpts: hcloud.ListOpts{LabelSelector: selector},
			})
		},
		func(ctx context.Context, v *hcloud.Volume) error {
			_, err := c.client.Volume.Delete(ctx, v)
			return err
		},
	))

	collect("networks", deleteResourcesBySelector(ctx, "network",
		func(ctx context.Context) ([]*hcloud.Network, error) {
			return c.client.Network.AllWithOpts(ctx, hcloud.NetworkListOpts{
				ListOpts: hcloud.ListOpts{LabelSelector: selector},
			})
		},
		func(ctx context.Context, n *hcloud.Network) error {
			_, err := c.client.Network.Delete(ctx, n)
			return err
		},
	))

	collect("placement groups", deleteResourcesBySelector(ctx, "placement group",
		func(ctx context.Context) ([]*hcloud.PlacementGroup, error) {
			return c.client.PlacementGroup.AllWithOpts(ctx, hcloud.PlacementGroupListOpts{
				ListOpts: hcloud.ListOpts{LabelSelector: selector},
			})
		},
		func(ctx context.Context, pg *hcloud.PlacementGroup) error {
			_, err := c.client.PlacementGroup.Delete(ctx, pg)
			return err
		},
	))

	if len(cleanupErrs) > 0 {
		return fmt.Errorf("cleanup encountered %d errors: %w", len(cleanupErrs), errors.Join(cleanupErrs...))
	}

	log.Printf("[Cleanup] Cleanup complete")
	return nil
}

// deleteServersBySelector deletes all servers matching the selector and,
// when wait is set, polls until they are fully gone so dependent resources
// (networks, placement groups) can be removed afterwards.
func (c *RealClient) deleteServersBySelector(ctx context.Context, selector string, wait bool) error {
	servers, err := c.client.Server.AllWithOpts(ctx, hcloud.ServerListOpts{
		ListOpts: hcloud.ListOpts{LabelSelector: selector},
	})
	if err != nil {
		return fmt.Errorf("failed to list servers: %w", err)
	}

	for _, s := range servers {
		log.Printf("[Cleanup] Deleting server: %s (ID: %d)", s.Name, s.ID)
		if _, _, err := c.client.Server.DeleteWithResult(ctx, s); err != nil {
			log.Printf("[Cleanup] Warning: Failed to delete server %s: %v", s.Name, err)
		}
	}

	if !wait || len(servers) == 0 {
		return nil
	}

	log.Printf("[Cleanup] Waiting for %d servers to be fully deleted...", len(servers))
	for i := 0; i < 60; i++ { // up to 5 minutes (60 * 5s)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		remaining, err := c.client.Server.AllWithOpts(ctx, hcloud.ServerListOpts{
			ListOpts: hcloud.ListOpts{LabelSelector: selector},
		})
		if err != nil {
			log.Printf("[Cleanup] Warning: Failed to check remaining servers: %v", err)
			break
		}
		if len(remaining) == 0 {
			log.Printf("[Cleanup] All servers deleted successfully")
			break
		}
		time.Sleep(5 * time.Second)
	}

	return nil
}
