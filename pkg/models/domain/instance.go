package domain

import "time"

const (
	InstanceStateStopped    = "STOPPED"
	InstanceStateTerminated = "TERMINATED"
)

// InstanceSummary is the raw listing view of a compute instance, before
// volume and cost enrichment. OCPUs and MemoryInGBs are zero when the
// shape reports no configuration (older fixed shapes).
type InstanceSummary struct {
	ID                 string
	DisplayName        string
	Shape              string
	State              string
	AvailabilityDomain string
	ImageID            string
	OCPUs              float64
	MemoryInGBs        float64
	TimeCreated        *time.Time
}

// Image carries the metadata of the image an instance was launched from.
type Image struct {
	OperatingSystem        string
	OperatingSystemVersion string
}

// VolumeAttachment links an instance to a boot or block volume.
type VolumeAttachment struct {
	VolumeID string
}

// Volume is a boot or block volume with its provisioned size.
type Volume struct {
	ID        string
	SizeInMBs int64
}

// Instance is one assembled inventory row for a compute instance. Records
// are built fresh per collection run and never mutated after assembly.
type Instance struct {
	Region          string
	CompartmentID   string
	CompartmentName string
	ID              string
	DisplayName     string
	State           string
	Shape           string
	OperatingSystem string
	OCPUs           float64
	MemoryInGBs     float64
	BootSizeInMBs   int64
	BlockSizeInMBs  int64
	BootVolumeIDs   []string
	BlockVolumeIDs  []string
	TimeCreated     *time.Time

	ComputeCostPerMonth float64
	OSCostPerMonth      float64
	StorageCostPerMonth float64
	TotalCostPerMonth   float64

	// PricingKnown is false when the shape is missing from the rate tables;
	// the cost fields are zero in that case.
	PricingKnown bool
}
