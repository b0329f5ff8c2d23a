package oci

import (
	"context"
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// IdentityStore wraps the identity client for the home tenancy.
type IdentityStore struct {
	client    identity.IdentityClient
	tenancyID string
}

func NewIdentityStore(provider common.ConfigurationProvider) (*IdentityStore, error) {
	client, err := identity.NewIdentityClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}
	tenancyID, err := provider.TenancyOCID()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenancy OCID: %w", err)
	}
	return &IdentityStore{client: client, tenancyID: tenancyID}, nil
}

func (s *IdentityStore) ListRegionSubscriptions(ctx context.Context) ([]domain.Region, error) {
	resp, err := s.client.ListRegionSubscriptions(ctx, identity.ListRegionSubscriptionsRequest{
		TenancyId: common.String(s.tenancyID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list region subscriptions: %w", err)
	}

	regions := make([]domain.Region, 0, len(resp.Items))
	for _, item := range resp.Items {
		regions = append(regions, domain.Region{
			Name:       deref(item.RegionName),
			HomeRegion: derefBool(item.IsHomeRegion),
		})
	}
	return regions, nil
}

// ListCompartments walks the whole subtree of the tenancy, active
// compartments only. The root compartment is not part of the listing; use
// GetRootCompartment for it.
func (s *IdentityStore) ListCompartments(ctx context.Context) ([]domain.Compartment, error) {
	var compartments []domain.Compartment
	var page *string
	for {
		resp, err := s.client.ListCompartments(ctx, identity.ListCompartmentsRequest{
			CompartmentId:          common.String(s.tenancyID),
			CompartmentIdInSubtree: common.Bool(true),
			LifecycleState:         identity.CompartmentLifecycleStateActive,
			Page:                   page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list compartments: %w", err)
		}
		for _, item := range resp.Items {
			compartments = append(compartments, domain.Compartment{
				ID:    deref(item.Id),
				Name:  deref(item.Name),
				State: string(item.LifecycleState),
			})
		}
		if resp.OpcNextPage == nil {
			return compartments, nil
		}
		page = resp.OpcNextPage
	}
}

// GetRootCompartment returns the tenancy itself as a compartment record.
func (s *IdentityStore) GetRootCompartment(ctx context.Context) (domain.Compartment, error) {
	resp, err := s.client.GetCompartment(ctx, identity.GetCompartmentRequest{
		CompartmentId: common.String(s.tenancyID),
	})
	if err != nil {
		return domain.Compartment{}, fmt.Errorf("failed to get root compartment: %w", err)
	}
	return domain.Compartment{
		ID:    deref(resp.Id),
		Name:  deref(resp.Name),
		State: string(resp.LifecycleState),
	}, nil
}
