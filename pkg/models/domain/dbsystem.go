package domain

import "time"

const DBSystemStateDeleted = "DELETED"

// DBSystemSummary is the raw listing view of a MySQL DB system.
type DBSystemSummary struct {
	ID                 string
	DisplayName        string
	Shape              string
	State              string
	AvailabilityDomain string
	IsHighlyAvailable  bool
	TimeCreated        *time.Time
}

// DBSystemDetails holds the fields only the describe call returns.
type DBSystemDetails struct {
	DataStorageSizeInGBs int
	TimeCreated          *time.Time
}

// DBSystem is one assembled inventory row for a MySQL DB system.
type DBSystem struct {
	Region               string
	CompartmentID        string
	CompartmentName      string
	ID                   string
	DisplayName          string
	Shape                string
	AvailabilityDomain   string
	State                string
	DataStorageSizeInGBs int
	IsHighlyAvailable    bool
	TimeCreated          *time.Time

	CostPerMonth float64
	PricingKnown bool
}
