package domain

// Inventory accumulates the records of one collection run.
type Inventory struct {
	Instances []Instance
	DBSystems []DBSystem
}

// TotalMonthlyCost sums the estimated monthly cost over all records.
func (inv *Inventory) TotalMonthlyCost() float64 {
	var total float64
	for _, inst := range inv.Instances {
		total += inst.TotalCostPerMonth
	}
	for _, db := range inv.DBSystems {
		total += db.CostPerMonth
	}
	return total
}
