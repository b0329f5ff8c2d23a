package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
	"github.com/de-tools/tenancy-atlas/pkg/services/pricing"
	"github.com/rs/zerolog"
)

// collectInstances assembles one record per non-terminated instance in the
// compartment: image metadata, attached boot/block volumes with summed
// sizes, and the three monthly cost components. Stopped instances keep
// their storage and OS line items but their compute estimate is forced to
// zero.
func collectInstances(
	ctx context.Context,
	stores RegionStores,
	region string,
	compartment domain.Compartment,
) ([]domain.Instance, error) {
	logger := zerolog.Ctx(ctx)

	summaries, err := stores.Compute().ListInstances(ctx, compartment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list instances in compartment %s: %w", compartment.ID, err)
	}

	var records []domain.Instance
	for _, inst := range summaries {
		if inst.State == domain.InstanceStateTerminated {
			continue
		}

		image, err := stores.Compute().GetImage(ctx, inst.ImageID)
		if err != nil {
			return nil, fmt.Errorf("failed to get image %s: %w", inst.ImageID, err)
		}

		bootAttachments, err := stores.Compute().ListBootVolumeAttachments(
			ctx, compartment.ID, inst.AvailabilityDomain, inst.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list boot volume attachments for %s: %w", inst.ID, err)
		}
		bootIDs, bootSize, bootCost, err := sumVolumes(
			ctx, bootAttachments, stores.Storage().GetBootVolume, pricing.StorageClassBoot)
		if err != nil {
			return nil, err
		}

		blockAttachments, err := stores.Compute().ListVolumeAttachments(
			ctx, compartment.ID, inst.AvailabilityDomain, inst.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list volume attachments for %s: %w", inst.ID, err)
		}
		blockIDs, blockSize, blockCost, err := sumVolumes(
			ctx, blockAttachments, stores.Storage().GetVolume, pricing.StorageClassBlock)
		if err != nil {
			return nil, err
		}

		// shapes are priced regardless of lifecycle state so the record's
		// PricingKnown flag stays accurate; stopped instances only lose the
		// compute component
		computeCost, err := pricing.ComputeMonthlyCost(inst.Shape, inst.OCPUs, inst.MemoryInGBs)
		pricingKnown := true
		if errors.Is(err, pricing.ErrUnknownShape) {
			computeCost = 0
			pricingKnown = false
			logger.Warn().
				Str("instance", inst.ID).
				Str("shape", inst.Shape).
				Msg("no pricing for compute shape, compute cost recorded as zero")
		} else if err != nil {
			return nil, err
		}
		if inst.State == domain.InstanceStateStopped {
			computeCost = 0
		}

		osCost := pricing.OSMonthlyCost(image.OperatingSystem, inst.OCPUs)
		storageCost := bootCost + blockCost

		records = append(records, domain.Instance{
			Region:          region,
			CompartmentID:   compartment.ID,
			CompartmentName: compartment.Name,
			ID:              inst.ID,
			DisplayName:     inst.DisplayName,
			State:           inst.State,
			Shape:           inst.Shape,
			OperatingSystem: image.OperatingSystem,
			OCPUs:           inst.OCPUs,
			MemoryInGBs:     inst.MemoryInGBs,
			BootSizeInMBs:   bootSize,
			BlockSizeInMBs:  blockSize,
			BootVolumeIDs:   bootIDs,
			BlockVolumeIDs:  blockIDs,
			TimeCreated:     inst.TimeCreated,

			ComputeCostPerMonth: computeCost,
			OSCostPerMonth:      osCost,
			StorageCostPerMonth: storageCost,
			TotalCostPerMonth:   computeCost + osCost + storageCost,
			PricingKnown:        pricingKnown,
		})
	}
	return records, nil
}

type volumeGetter func(ctx context.Context, volumeID string) (domain.Volume, error)

func sumVolumes(
	ctx context.Context,
	attachments []domain.VolumeAttachment,
	get volumeGetter,
	class pricing.StorageClass,
) (ids []string, sizeInMBs int64, cost float64, err error) {
	for _, attachment := range attachments {
		volume, err := get(ctx, attachment.VolumeID)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to get volume %s: %w", attachment.VolumeID, err)
		}
		volumeCost, err := pricing.StorageMonthlyCost(class, volume.SizeInMBs)
		if err != nil {
			return nil, 0, 0, err
		}
		ids = append(ids, attachment.VolumeID)
		sizeInMBs += volume.SizeInMBs
		cost += volumeCost
	}
	return ids, sizeInMBs, cost, nil
}
