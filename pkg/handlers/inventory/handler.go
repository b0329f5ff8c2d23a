package inventory

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/de-tools/tenancy-atlas/pkg/models/api"
	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
	"github.com/de-tools/tenancy-atlas/pkg/services/identity"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Collector runs an inventory pass. Satisfied by *inventory.Collector.
type Collector interface {
	Collect(
		ctx context.Context,
		regions []string,
		compartments []domain.Compartment,
	) (*domain.Inventory, error)
}

type Handler struct {
	explorer  identity.Explorer
	collector Collector
}

func NewHandler(explorer identity.Explorer, collector Collector) *Handler {
	return &Handler{
		explorer:  explorer,
		collector: collector,
	}
}

func (h *Handler) ListRegions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	regions, err := h.explorer.ListSubscribedRegions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list regions")
		http.Error(w, "failed to list regions", http.StatusBadGateway)
		return
	}

	response := make([]api.Region, 0, len(regions))
	for _, region := range regions {
		response = append(response, api.Region{Name: region.Name, HomeRegion: region.HomeRegion})
	}

	writeJSON(w, logger, response)
}

func (h *Handler) ListCompartments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	compartments, err := h.explorer.ListCompartments(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list compartments")
		http.Error(w, "failed to list compartments", http.StatusBadGateway)
		return
	}

	response := make([]api.Compartment, 0, len(compartments))
	for _, compartment := range compartments {
		response = append(response, api.Compartment{
			ID:    compartment.ID,
			Name:  compartment.Name,
			State: compartment.State,
		})
	}

	writeJSON(w, logger, response)
}

// GetRegionInventory collects one region on demand and returns the
// assembled records. Collection is synchronous; large tenancies take a
// while.
func (h *Handler) GetRegionInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	region := chi.URLParam(r, "region")

	compartments, err := h.explorer.ListCompartments(ctx)
	if err != nil {
		logger.Error().Err(err).Str("region", region).Msg("failed to list compartments")
		http.Error(w, "failed to list compartments", http.StatusBadGateway)
		return
	}

	inv, err := h.collector.Collect(ctx, []string{region}, compartments)
	if err != nil {
		logger.Error().Err(err).Str("region", region).Msg("failed to collect inventory")
		http.Error(w, "failed to collect inventory", http.StatusBadGateway)
		return
	}

	writeJSON(w, logger, mapInventory(inv))
}

func mapInventory(inv *domain.Inventory) api.Inventory {
	response := api.Inventory{
		Instances:        make([]api.Instance, 0, len(inv.Instances)),
		DBSystems:        make([]api.DBSystem, 0, len(inv.DBSystems)),
		TotalMonthlyCost: inv.TotalMonthlyCost(),
	}
	for _, inst := range inv.Instances {
		response.Instances = append(response.Instances, api.Instance{
			Region:              inst.Region,
			CompartmentName:     inst.CompartmentName,
			ID:                  inst.ID,
			DisplayName:         inst.DisplayName,
			State:               inst.State,
			Shape:               inst.Shape,
			OperatingSystem:     inst.OperatingSystem,
			OCPUs:               inst.OCPUs,
			MemoryInGBs:         inst.MemoryInGBs,
			BootSizeInMBs:       inst.BootSizeInMBs,
			BlockSizeInMBs:      inst.BlockSizeInMBs,
			TimeCreated:         inst.TimeCreated,
			ComputeCostPerMonth: inst.ComputeCostPerMonth,
			OSCostPerMonth:      inst.OSCostPerMonth,
			StorageCostPerMonth: inst.StorageCostPerMonth,
			TotalCostPerMonth:   inst.TotalCostPerMonth,
			PricingKnown:        inst.PricingKnown,
		})
	}
	for _, db := range inv.DBSystems {
		response.DBSystems = append(response.DBSystems, api.DBSystem{
			Region:               db.Region,
			CompartmentName:      db.CompartmentName,
			ID:                   db.ID,
			DisplayName:          db.DisplayName,
			Shape:                db.Shape,
			State:                db.State,
			DataStorageSizeInGBs: db.DataStorageSizeInGBs,
			IsHighlyAvailable:    db.IsHighlyAvailable,
			TimeCreated:          db.TimeCreated,
			CostPerMonth:         db.CostPerMonth,
			PricingKnown:         db.PricingKnown,
		})
	}
	return response
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
