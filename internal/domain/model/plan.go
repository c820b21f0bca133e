package model

// Quantity is the number of units of one product produced at one site.
type Quantity struct {
	Site    Site    `json:"site"`
	Product Product `json:"product"`
	Units   int     `json:"units"`
}

// Plan holds the four production quantities of one run, in model order
// (Product X at Site A, Product Y at Site A, Product X at Site B,
// Product Y at Site B).
type Plan struct {
	Quantities [4]Quantity `json:"quantities"`
}

// NewPlan builds a Plan from units listed in model order.
func NewPlan(units [4]int) Plan {
	var p Plan
	i := 0
	for _, site := range AllSites {
		for _, prod := range AllProducts {
			p.Quantities[i] = Quantity{Site: site, Product: prod, Units: units[i]}
			i++
		}
	}
	return p
}

// Units returns the planned units of a product at a site.
func (p Plan) Units(site Site, prod Product) int {
	for _, q := range p.Quantities {
		if q.Site == site && q.Product == prod {
			return q.Units
		}
	}
	return 0
}

// TotalUnits returns the units planned across all sites and products.
func (p Plan) TotalUnits() int {
	total := 0
	for _, q := range p.Quantities {
		total += q.Units
	}
	return total
}

// Utilization is the capacity usage of one process at one site,
// recomputed from the planned quantities.
type Utilization struct {
	Process         Process `json:"process"`
	Site            Site    `json:"site"`
	UsedMinutes     int     `json:"used_minutes"`
	CapacityMinutes int     `json:"capacity_minutes"`
}

// ClothUsage is the raw-material consumption of the plan.
type ClothUsage struct {
	Used   int `json:"used"`
	Supply int `json:"supply"`
}

// PlanResult represents the complete outcome of one planning run.
type PlanResult struct {
	Feasible    bool           `json:"feasible"`
	Plan        Plan           `json:"plan"`
	Utilization [4]Utilization `json:"utilization"`
	Cloth       ClothUsage     `json:"cloth"`
	Profit      int            `json:"profit"`
}

// Infeasible returns the result for a run where no valid assignment exists.
func Infeasible() PlanResult {
	return PlanResult{Feasible: false}
}
