package pricing

import "fmt"

// computeRate is the hourly rate of a compute shape. Flexible shapes are
// priced per OCPU and per GB of memory; bare metal shapes carry a fixed
// hourly rate.
type computeRate struct {
	OCPU    float64
	Memory  float64
	Fixed   float64
	IsFixed bool
}

var computeRates = map[string]computeRate{
	"VM.Standard3.Flex":   {OCPU: 0.04, Memory: 0.0015},
	"VM.Standard.E3.Flex": {OCPU: 0.025, Memory: 0.0015},
	"VM.Standard.E4.Flex": {OCPU: 0.025, Memory: 0.0015},
	"VM.Standard.E5.Flex": {OCPU: 0.03, Memory: 0.002},
	"BM.Standard.E3.128":  {Fixed: 2.88, IsFixed: true},
	"BM.Standard.E4.128":  {Fixed: 3.2, IsFixed: true},
}

// ComputeMonthlyCost estimates the monthly USD cost of a running instance.
// Metered quantities the provider reports as not applicable must be passed
// as zero. Unknown shapes return (0, ErrUnknownShape).
func ComputeMonthlyCost(shape string, ocpus, memoryInGBs float64) (float64, error) {
	rate, ok := computeRates[shape]
	if !ok {
		return 0, fmt.Errorf("compute shape %q: %w", shape, ErrUnknownShape)
	}
	if rate.IsFixed {
		return rate.Fixed * HoursPerMonth, nil
	}
	return (ocpus*rate.OCPU + memoryInGBs*rate.Memory) * HoursPerMonth, nil
}
