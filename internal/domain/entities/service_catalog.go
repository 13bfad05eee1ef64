package entities

type ServicePricing struct {
	Base         float64 `json:"base"`
	PerContainer float64 `json:"perContainer,omitempty"`
	PerKg        float64 `json:"perKg,omitempty"`
	PerMile      float64 `json:"perMile,omitempty"`
	PerPallet    float64 `json:"perPallet,omitempty"`
	PerShipment  float64 `json:"perShipment,omitempty"`
	Custom       bool    `json:"custom,omitempty"`
}

// ServiceOffering is one entry of the public service catalog.
type ServiceOffering struct {
	Tag         ServiceType    `json:"tag"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Features    []string       `json:"features"`
	Icon        string         `json:"icon"`
	Active      bool           `json:"active"`
	Pricing     ServicePricing `json:"pricing"`
}

// ServiceCatalog is the fixed catalog shown on the Services page and written
// to the "services" collection by the seeder.
var ServiceCatalog = []ServiceOffering{
	{
		Tag:         ServiceTypeOcean,
		Title:       "Ocean Freight",
		Description: "Cost-effective sea freight solutions for large volume shipments",
		Features:    []string{"FCL & LCL options", "Port-to-Port & Door-to-Door", "Consolidation", "Container tracking"},
		Icon:        "ship",
		Active:      true,
		Pricing:     ServicePricing{Base: 1500, PerContainer: 2000},
	},
	{
		Tag:         ServiceTypeAir,
		Title:       "Air Freight",
		Description: "Fast and reliable air cargo services for time-sensitive shipments",
		Features:    []string{"Express delivery", "Charter services", "Door-to-door", "Real-time tracking"},
		Icon:        "plane",
		Active:      true,
		Pricing:     ServicePricing{Base: 500, PerKg: 5},
	},
	{
		Tag:         ServiceTypeGround,
		Title:       "Ground Transportation",
		Description: "Comprehensive road freight services across North America",
		Features:    []string{"FTL & LTL", "Cross-border", "Last-mile delivery", "Temperature controlled"},
		Icon:        "truck",
		Active:      true,
		Pricing:     ServicePricing{Base: 300, PerMile: 2},
	},
	{
		Tag:         ServiceTypeWarehouse,
		Title:       "Warehousing",
		Description: "Secure storage and distribution solutions",
		Features:    []string{"Climate controlled", "Pick & pack", "Inventory management", "Distribution"},
		Icon:        "warehouse",
		Active:      true,
		Pricing:     ServicePricing{Base: 200, PerPallet: 10},
	},
	{
		Tag:         ServiceTypeCustoms,
		Title:       "Customs Clearance",
		Description: "Expert customs brokerage services",
		Features:    []string{"Documentation", "Duty calculation", "Compliance", "Fast processing"},
		Icon:        "filecheck",
		Active:      true,
		Pricing:     ServicePricing{Base: 150, PerShipment: 100},
	},
	{
		Tag:         ServiceTypeSpecialized,
		Title:       "Specialized Cargo",
		Description: "Handling of oversized, hazardous, and high-value cargo",
		Features:    []string{"Oversized freight", "Hazmat certified", "High-value goods", "Project cargo"},
		Icon:        "package",
		Active:      true,
		Pricing:     ServicePricing{Base: 1000, Custom: true},
	},
}
