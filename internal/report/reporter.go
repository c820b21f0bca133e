// Package report renders planning results as human-readable text.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guttosm/production-planner/internal/domain/model"
)

// InfeasibleMessage is the fixed line printed when no valid assignment exists.
const InfeasibleMessage = "No feasible solution found."

// Reporter writes plan reports to a single destination writer.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// WriteTable renders the processing-time table, one row per process and
// site, one column per product.
func (r *Reporter) WriteTable(table model.TimeTable) error {
	if _, err := fmt.Fprintln(r.w, "Processing time per unit (minutes):"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Process\tSite\t%s\t%s\n", model.ProductX.Label(), model.ProductY.Label())
	for _, proc := range model.AllProcesses {
		for _, site := range model.AllSites {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n",
				proc.Label(), site.Label(),
				table.At(proc, site, model.ProductX),
				table.At(proc, site, model.ProductY))
		}
	}
	return tw.Flush()
}

// WriteResult renders the production quantities, per-process
// utilization, cloth consumption, and total profit of a feasible
// result, or the fixed infeasibility message and nothing else.
func (r *Reporter) WriteResult(result model.PlanResult) error {
	if !result.Feasible {
		_, err := fmt.Fprintln(r.w, InfeasibleMessage)
		return err
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, "Production plan:")
	for _, q := range result.Plan.Quantities {
		fmt.Fprintf(r.w, "  %s at %s: %d units\n", q.Product.Label(), q.Site.Label(), q.Units)
	}

	fmt.Fprintln(r.w, "Utilization:")
	for _, u := range result.Utilization {
		fmt.Fprintf(r.w, "  %s at %s: %d/%d min\n",
			u.Process.Label(), u.Site.Label(), u.UsedMinutes, u.CapacityMinutes)
	}

	fmt.Fprintf(r.w, "Cloth used: %d/%d m\n", result.Cloth.Used, result.Cloth.Supply)
	_, err := fmt.Fprintf(r.w, "Total profit: %d\n", result.Profit)
	return err
}
