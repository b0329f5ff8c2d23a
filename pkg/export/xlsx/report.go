package xlsx

import (
	"strings"
	"time"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
)

const (
	ComputeSheetName = "Compute Instances"
	MySQLSheetName   = "MySQL Databases"
)

var computeColumns = []string{
	"region",
	"compartment_name",
	"compartment_id",
	"instance_state",
	"instance_name",
	"instance_ocid",
	"OS",
	"shape",
	"ocpus",
	"memory_in_gbs",
	"boot_size_in_MBs",
	"block_size_in_MBs",
	"boot_volumes",
	"block_volumes",
	"date_created",
	"estimated_compute_cost_per_month",
	"estimated_os_cost_per_month",
	"estimated_storage_cost_per_month",
	"total_cost_per_month",
}

var mysqlColumns = []string{
	"region",
	"compartment_name",
	"compartment_id",
	"db_system_name",
	"db_system_id",
	"shape",
	"data_storage_size_in_gbs",
	"availability_domain",
	"is_highly_available",
	"state",
	"time_created",
	"db_cost",
}

// InventorySheets flattens a collected inventory into the workbook layout:
// one sheet per resource kind, fixed column order.
func InventorySheets(inv *domain.Inventory) []Sheet {
	computeRows := make([]map[string]any, 0, len(inv.Instances))
	for _, inst := range inv.Instances {
		computeRows = append(computeRows, instanceRow(inst))
	}

	mysqlRows := make([]map[string]any, 0, len(inv.DBSystems))
	for _, db := range inv.DBSystems {
		mysqlRows = append(mysqlRows, dbSystemRow(db))
	}

	return []Sheet{
		{Name: ComputeSheetName, Columns: computeColumns, Rows: computeRows},
		{Name: MySQLSheetName, Columns: mysqlColumns, Rows: mysqlRows},
	}
}

func instanceRow(inst domain.Instance) map[string]any {
	return map[string]any{
		"region":                           inst.Region,
		"compartment_name":                 inst.CompartmentName,
		"compartment_id":                   inst.CompartmentID,
		"instance_state":                   inst.State,
		"instance_name":                    inst.DisplayName,
		"instance_ocid":                    inst.ID,
		"OS":                               inst.OperatingSystem,
		"shape":                            inst.Shape,
		"ocpus":                            inst.OCPUs,
		"memory_in_gbs":                    inst.MemoryInGBs,
		"boot_size_in_MBs":                 inst.BootSizeInMBs,
		"block_size_in_MBs":                inst.BlockSizeInMBs,
		"boot_volumes":                     strings.Join(inst.BootVolumeIDs, ","),
		"block_volumes":                    strings.Join(inst.BlockVolumeIDs, ","),
		"date_created":                     formatTime(inst.TimeCreated),
		"estimated_compute_cost_per_month": inst.ComputeCostPerMonth,
		"estimated_os_cost_per_month":      inst.OSCostPerMonth,
		"estimated_storage_cost_per_month": inst.StorageCostPerMonth,
		"total_cost_per_month":             inst.TotalCostPerMonth,
	}
}

func dbSystemRow(db domain.DBSystem) map[string]any {
	return map[string]any{
		"region":                   db.Region,
		"compartment_name":         db.CompartmentName,
		"compartment_id":           db.CompartmentID,
		"db_system_name":           db.DisplayName,
		"db_system_id":             db.ID,
		"shape":                    db.Shape,
		"data_storage_size_in_gbs": db.DataStorageSizeInGBs,
		"availability_domain":      db.AvailabilityDomain,
		"is_highly_available":      db.IsHighlyAvailable,
		"state":                    db.State,
		"time_created":             formatTime(db.TimeCreated),
		"db_cost":                  db.CostPerMonth,
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
