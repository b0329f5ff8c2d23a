package api

import "time"

type Region struct {
	Name       string `json:"name"`
	HomeRegion bool   `json:"home_region"`
}

type Compartment struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

type Instance struct {
	Region              string     `json:"region"`
	CompartmentName     string     `json:"compartment_name"`
	ID                  string     `json:"id"`
	DisplayName         string     `json:"display_name"`
	State               string     `json:"state"`
	Shape               string     `json:"shape"`
	OperatingSystem     string     `json:"operating_system"`
	OCPUs               float64    `json:"ocpus"`
	MemoryInGBs         float64    `json:"memory_in_gbs"`
	BootSizeInMBs       int64      `json:"boot_size_in_mbs"`
	BlockSizeInMBs      int64      `json:"block_size_in_mbs"`
	TimeCreated         *time.Time `json:"time_created,omitempty"`
	ComputeCostPerMonth float64    `json:"compute_cost_per_month"`
	OSCostPerMonth      float64    `json:"os_cost_per_month"`
	StorageCostPerMonth float64    `json:"storage_cost_per_month"`
	TotalCostPerMonth   float64    `json:"total_cost_per_month"`
	PricingKnown        bool       `json:"pricing_known"`
}

type DBSystem struct {
	Region               string     `json:"region"`
	CompartmentName      string     `json:"compartment_name"`
	ID                   string     `json:"id"`
	DisplayName          string     `json:"display_name"`
	Shape                string     `json:"shape"`
	State                string     `json:"state"`
	DataStorageSizeInGBs int        `json:"data_storage_size_in_gbs"`
	IsHighlyAvailable    bool       `json:"is_highly_available"`
	TimeCreated          *time.Time `json:"time_created,omitempty"`
	CostPerMonth         float64    `json:"cost_per_month"`
	PricingKnown         bool       `json:"pricing_known"`
}

type Inventory struct {
	Instances        []Instance `json:"instances"`
	DBSystems        []DBSystem `json:"db_systems"`
	TotalMonthlyCost float64    `json:"total_monthly_cost"`
}
