package pricing

// Per-OCPU hourly license surcharges. An operating system missing from the
// table carries no surcharge, which is a valid price rather than an unknown.
var osRates = map[string]float64{
	"Windows": 0.092,
}

// OSMonthlyCost estimates the monthly OS licensing surcharge for an
// instance with the given OCPU count.
func OSMonthlyCost(operatingSystem string, ocpus float64) float64 {
	return ocpus * osRates[operatingSystem] * HoursPerMonth
}
