package pricing

import (
	"fmt"
	"math"
)

// mysqlRate pins the canonical OCPU and memory counts of a MySQL shape
// together with its hourly per-OCPU and per-GB rates. DB systems do not
// report a shape config, so the counts come from the table.
type mysqlRate struct {
	OCPUs       float64
	MemoryInGBs float64
	OCPUPrice   float64
	MemoryPrice float64
}

var mysqlRates = map[string]mysqlRate{
	"MySQL.VM.Standard.E3":          {OCPUs: 1, MemoryInGBs: 8, OCPUPrice: 0.025, MemoryPrice: 0.0015},
	"MySQL.VM.Standard.E4":          {OCPUs: 1, MemoryInGBs: 16, OCPUPrice: 0.030, MemoryPrice: 0.002},
	"MySQL.HeatWave.VM.Standard.E3": {OCPUs: 16, MemoryInGBs: 512, OCPUPrice: 0.04, MemoryPrice: 0.0025},
	"MySQL.HeatWave.VM.Standard.E4": {OCPUs: 16, MemoryInGBs: 1024, OCPUPrice: 0.045, MemoryPrice: 0.003},
	"MySQL.HeatWave.BM.Standard.E3": {OCPUs: 32, MemoryInGBs: 2048, OCPUPrice: 0.06, MemoryPrice: 0.004},
	"MySQL.VM.Standard2.8.120GB":    {OCPUs: 8, MemoryInGBs: 120, OCPUPrice: 0.05, MemoryPrice: 0.003},
	"MySQL.VM.Standard.E3.4.64GB":   {OCPUs: 4, MemoryInGBs: 64, OCPUPrice: 0.035, MemoryPrice: 0.002},
	"MySQL.HeatWave.VM.Standard":    {OCPUs: 32, MemoryInGBs: 2048, OCPUPrice: 0.06, MemoryPrice: 0.004},
	"MySQL.VM.Standard1.1":          {OCPUs: 1, MemoryInGBs: 7, OCPUPrice: 0.020, MemoryPrice: 0.0012},
	"MySQL.VM.Standard2.1":          {OCPUs: 1, MemoryInGBs: 15, OCPUPrice: 0.022, MemoryPrice: 0.0013},
	"MySQL.VM.Standard2.2":          {OCPUs: 2, MemoryInGBs: 30, OCPUPrice: 0.024, MemoryPrice: 0.0014},
	"MySQL.VM.Standard2.4":          {OCPUs: 4, MemoryInGBs: 60, OCPUPrice: 0.028, MemoryPrice: 0.0016},
	"MySQL.VM.Standard2.8":          {OCPUs: 8, MemoryInGBs: 120, OCPUPrice: 0.032, MemoryPrice: 0.0018},
	"MySQL.VM.Standard2.16":         {OCPUs: 16, MemoryInGBs: 240, OCPUPrice: 0.038, MemoryPrice: 0.002},
	"MySQL.VM.Standard2.24":         {OCPUs: 24, MemoryInGBs: 320, OCPUPrice: 0.042, MemoryPrice: 0.0022},
	"MySQL.2":                       {OCPUs: 2, MemoryInGBs: 16, OCPUPrice: 0.03, MemoryPrice: 0.0015},
	"MySQL.4":                       {OCPUs: 4, MemoryInGBs: 32, OCPUPrice: 0.035, MemoryPrice: 0.002},
	"MySQL.8":                       {OCPUs: 8, MemoryInGBs: 64, OCPUPrice: 0.04, MemoryPrice: 0.0025},
	"MySQL.16":                      {OCPUs: 16, MemoryInGBs: 128, OCPUPrice: 0.045, MemoryPrice: 0.003},
	"MySQL.32":                      {OCPUs: 32, MemoryInGBs: 256, OCPUPrice: 0.05, MemoryPrice: 0.0035},
	"MySQL.48":                      {OCPUs: 48, MemoryInGBs: 384, OCPUPrice: 0.055, MemoryPrice: 0.004},
	"MySQL.64":                      {OCPUs: 64, MemoryInGBs: 512, OCPUPrice: 0.06, MemoryPrice: 0.0045},
	"MySQL.256":                     {OCPUs: 256, MemoryInGBs: 2048, OCPUPrice: 0.07, MemoryPrice: 0.005},
}

const mysqlStorageRatePerGBMonth = 0.0255

// MySQLMonthlyCost estimates the monthly USD cost of a DB system from its
// shape and allocated data storage, rounded to cents. Unknown shapes return
// (0, ErrUnknownShape).
func MySQLMonthlyCost(shape string, dataStorageSizeInGBs int) (float64, error) {
	rate, ok := mysqlRates[shape]
	if !ok {
		return 0, fmt.Errorf("mysql shape %q: %w", shape, ErrUnknownShape)
	}
	hourly := rate.OCPUs*rate.OCPUPrice + rate.MemoryInGBs*rate.MemoryPrice
	monthly := hourly*HoursPerMonth + float64(dataStorageSizeInGBs)*mysqlStorageRatePerGBMonth
	return math.Round(monthly*100) / 100, nil
}
