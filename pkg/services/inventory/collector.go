// Package inventory walks regions and compartments of a tenancy and
// assembles cost-enriched resource records. Collection is sequential and
// read-only; every provider call goes through the store interfaces below so
// the assembly logic stays testable without the SDK.
package inventory

import (
	"context"
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// ComputeStore lists instances and their image/attachment metadata for one
// region.
type ComputeStore interface {
	ListInstances(ctx context.Context, compartmentID string) ([]domain.InstanceSummary, error)
	ListBootVolumeAttachments(
		ctx context.Context,
		compartmentID, availabilityDomain, instanceID string,
	) ([]domain.VolumeAttachment, error)
	ListVolumeAttachments(
		ctx context.Context,
		compartmentID, availabilityDomain, instanceID string,
	) ([]domain.VolumeAttachment, error)
	GetImage(ctx context.Context, imageID string) (domain.Image, error)
}

// StorageStore resolves volume sizes.
type StorageStore interface {
	GetBootVolume(ctx context.Context, volumeID string) (domain.Volume, error)
	GetVolume(ctx context.Context, volumeID string) (domain.Volume, error)
}

// MySQLStore lists and describes MySQL DB systems for one region.
type MySQLStore interface {
	ListDBSystems(ctx context.Context, compartmentID string) ([]domain.DBSystemSummary, error)
	GetDBSystem(ctx context.Context, dbSystemID string) (domain.DBSystemDetails, error)
}

// RegionStores groups the per-region clients one collection pass needs.
type RegionStores interface {
	Compute() ComputeStore
	Storage() StorageStore
	MySQL() MySQLStore
}

// StoreFactory creates clients bound to a region.
type StoreFactory interface {
	ForRegion(region string) (RegionStores, error)
}

type Collector struct {
	stores StoreFactory
}

func NewCollector(stores StoreFactory) *Collector {
	return &Collector{stores: stores}
}

// Collect runs a full inventory pass over the given regions and
// compartments. Records are appended in region, compartment, listing order.
func (c *Collector) Collect(
	ctx context.Context,
	regions []string,
	compartments []domain.Compartment,
) (*domain.Inventory, error) {
	logger := zerolog.Ctx(ctx)

	inv := &domain.Inventory{}
	for _, region := range regions {
		logger.Info().Str("region", region).Msg("processing region")

		stores, err := c.stores.ForRegion(region)
		if err != nil {
			return nil, fmt.Errorf("failed to create clients for region %s: %w", region, err)
		}

		for _, compartment := range compartments {
			logger.Info().
				Str("region", region).
				Str("compartment", compartment.Name).
				Msg("collecting compartment")

			instances, err := collectInstances(ctx, stores, region, compartment)
			if err != nil {
				return nil, err
			}
			inv.Instances = append(inv.Instances, instances...)

			dbSystems, err := collectDBSystems(ctx, stores, region, compartment)
			if err != nil {
				return nil, err
			}
			inv.DBSystems = append(inv.DBSystems, dbSystems...)
		}
	}
	return inv, nil
}
