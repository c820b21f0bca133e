// Package model defines the core domain entities for the production planner.
package model

// Process is a manufacturing step a unit passes through.
type Process string

const (
	Cutting Process = "cutting"
	Sewing  Process = "sewing"
)

// Site is one of the two production locations.
type Site string

const (
	SiteA Site = "site-a"
	SiteB Site = "site-b"
)

// Product is one of the two goods the workshop produces.
type Product string

const (
	ProductX Product = "product-x"
	ProductY Product = "product-y"
)

var (
	// AllProcesses lists processes in model order.
	AllProcesses = []Process{Cutting, Sewing}
	// AllSites lists sites in model order.
	AllSites = []Site{SiteA, SiteB}
	// AllProducts lists products in model order.
	AllProducts = []Product{ProductX, ProductY}
)

// Label returns the display name of a process.
func (p Process) Label() string {
	if p == Cutting {
		return "Cutting"
	}
	return "Sewing"
}

// Label returns the display name of a site.
func (s Site) Label() string {
	if s == SiteA {
		return "Site A"
	}
	return "Site B"
}

// Label returns the display name of a product.
func (p Product) Label() string {
	if p == ProductX {
		return "Product X"
	}
	return "Product Y"
}

func processIndex(p Process) int {
	if p == Sewing {
		return 1
	}
	return 0
}

func siteIndex(s Site) int {
	if s == SiteB {
		return 1
	}
	return 0
}

func productIndex(p Product) int {
	if p == ProductY {
		return 1
	}
	return 0
}

// TimeTable holds per-unit processing minutes, indexed by
// process x site x product. The fixed shape makes a malformed
// coefficient table unrepresentable.
type TimeTable [2][2][2]int

// At returns the per-unit minutes for one process, site, and product.
func (t TimeTable) At(proc Process, site Site, prod Product) int {
	return t[processIndex(proc)][siteIndex(site)][productIndex(prod)]
}

// Set stores the per-unit minutes for one process, site, and product.
func (t *TimeTable) Set(proc Process, site Site, prod Product, minutes int) {
	t[processIndex(proc)][siteIndex(site)][productIndex(prod)] = minutes
}
