package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
)

// Reporter prints a run summary to the console after the workbook has been
// written.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

type summary struct {
	OutputFile     string
	InstanceCount  int
	DBSystemCount  int
	ComputeTotal   float64
	DBTotal        float64
	GrandTotal     float64
	UnpricedShapes []string
}

func (c *Reporter) Handle(inv *domain.Inventory, outputFile string) error {
	s := summary{OutputFile: outputFile}
	seen := map[string]bool{}

	for _, inst := range inv.Instances {
		s.InstanceCount++
		s.ComputeTotal += inst.TotalCostPerMonth
		if !inst.PricingKnown && !seen[inst.Shape] {
			seen[inst.Shape] = true
			s.UnpricedShapes = append(s.UnpricedShapes, inst.Shape)
		}
	}
	for _, db := range inv.DBSystems {
		s.DBSystemCount++
		s.DBTotal += db.CostPerMonth
		if !db.PricingKnown && !seen[db.Shape] {
			seen[db.Shape] = true
			s.UnpricedShapes = append(s.UnpricedShapes, db.Shape)
		}
	}
	s.GrandTotal = s.ComputeTotal + s.DBTotal

	tmpl := `
Tenancy inventory
Compute instances: {{.InstanceCount}} (est. USD {{printf "%.2f" .ComputeTotal}}/month)
MySQL DB systems:  {{.DBSystemCount}} (est. USD {{printf "%.2f" .DBTotal}}/month)
Total estimate:    USD {{printf "%.2f" .GrandTotal}}/month
{{if .UnpricedShapes}}
Shapes without pricing (costs recorded as zero):
{{range .UnpricedShapes}}- {{.}}
{{end}}{{end}}
Exported results to {{.OutputFile}}
`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, s)
}
