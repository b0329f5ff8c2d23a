package pricing

import "fmt"

// StorageClass identifies a billable storage tier.
type StorageClass string

const (
	StorageClassBoot  StorageClass = "boot_volume"
	StorageClassBlock StorageClass = "standard_block"
)

// USD per GB-month. Boot volumes bill at the standard block rate.
var storageRates = map[StorageClass]float64{
	StorageClassBoot:  0.0255,
	StorageClassBlock: 0.0255,
}

// StorageMonthlyCost estimates the monthly USD cost of a volume from its
// provisioned size in megabytes. The result is already a per-month figure;
// no hourly conversion is involved.
func StorageMonthlyCost(class StorageClass, sizeInMBs int64) (float64, error) {
	rate, ok := storageRates[class]
	if !ok {
		return 0, fmt.Errorf("storage class %q: %w", class, ErrUnknownShape)
	}
	sizeInGBs := float64(sizeInMBs) / 1024
	return sizeInGBs * rate, nil
}
