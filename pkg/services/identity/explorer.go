// Package identity resolves the tenancy topology: subscribed regions and
// the compartment tree a collection run iterates.
package identity

import (
	"context"
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
)

// Store is the identity-service surface the explorer needs.
type Store interface {
	ListRegionSubscriptions(ctx context.Context) ([]domain.Region, error)
	ListCompartments(ctx context.Context) ([]domain.Compartment, error)
	GetRootCompartment(ctx context.Context) (domain.Compartment, error)
}

type Explorer interface {
	ListSubscribedRegions(ctx context.Context) ([]domain.Region, error)
	ListCompartments(ctx context.Context) ([]domain.Compartment, error)
}

type explorer struct {
	store Store
}

func NewExplorer(store Store) Explorer {
	return &explorer{store: store}
}

func (e *explorer) ListSubscribedRegions(ctx context.Context) ([]domain.Region, error) {
	regions, err := e.store.ListRegionSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list region subscriptions: %w", err)
	}
	return regions, nil
}

// ListCompartments returns the active compartments of the tenancy with the
// root compartment (the tenancy itself) first.
func (e *explorer) ListCompartments(ctx context.Context) ([]domain.Compartment, error) {
	root, err := e.store.GetRootCompartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get root compartment: %w", err)
	}
	rest, err := e.store.ListCompartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list compartments: %w", err)
	}
	return append([]domain.Compartment{root}, rest...), nil
}
