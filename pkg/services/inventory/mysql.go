package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
	"github.com/de-tools/tenancy-atlas/pkg/services/pricing"
	"github.com/rs/zerolog"
)

// collectDBSystems assembles one record per non-deleted MySQL DB system in
// the compartment. The listing view lacks storage size and creation time,
// so each system is described individually.
func collectDBSystems(
	ctx context.Context,
	stores RegionStores,
	region string,
	compartment domain.Compartment,
) ([]domain.DBSystem, error) {
	logger := zerolog.Ctx(ctx)

	summaries, err := stores.MySQL().ListDBSystems(ctx, compartment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list db systems in compartment %s: %w", compartment.ID, err)
	}

	var records []domain.DBSystem
	for _, db := range summaries {
		if db.State == domain.DBSystemStateDeleted {
			continue
		}

		details, err := stores.MySQL().GetDBSystem(ctx, db.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get db system %s: %w", db.ID, err)
		}

		cost, err := pricing.MySQLMonthlyCost(db.Shape, details.DataStorageSizeInGBs)
		pricingKnown := true
		if errors.Is(err, pricing.ErrUnknownShape) {
			pricingKnown = false
			logger.Warn().
				Str("db_system", db.ID).
				Str("shape", db.Shape).
				Msg("no pricing for mysql shape, cost recorded as zero")
		} else if err != nil {
			return nil, err
		}

		timeCreated := details.TimeCreated
		if timeCreated == nil {
			timeCreated = db.TimeCreated
		}

		records = append(records, domain.DBSystem{
			Region:               region,
			CompartmentID:        compartment.ID,
			CompartmentName:      compartment.Name,
			ID:                   db.ID,
			DisplayName:          db.DisplayName,
			Shape:                db.Shape,
			AvailabilityDomain:   db.AvailabilityDomain,
			State:                db.State,
			DataStorageSizeInGBs: details.DataStorageSizeInGBs,
			IsHighlyAvailable:    db.IsHighlyAvailable,
			TimeCreated:          timeCreated,

			CostPerMonth: cost,
			PricingKnown: pricingKnown,
		})
	}
	return records, nil
}
