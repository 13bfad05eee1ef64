package entities

import "time"

// ServiceType is the enumerated freight-service category driving base pricing.
type ServiceType string

const (
	ServiceTypeOcean       ServiceType = "ocean"
	ServiceTypeAir         ServiceType = "air"
	ServiceTypeGround      ServiceType = "ground"
	ServiceTypeWarehouse   ServiceType = "warehouse"
	ServiceTypeCustoms     ServiceType = "customs"
	ServiceTypeSpecialized ServiceType = "specialized"
)

// ServiceTypes lists every known tag in catalog order.
var ServiceTypes = []ServiceType{
	ServiceTypeOcean,
	ServiceTypeAir,
	ServiceTypeGround,
	ServiceTypeWarehouse,
	ServiceTypeCustoms,
	ServiceTypeSpecialized,
}

type Fee struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

type Discount struct {
	Name       string   `json:"name"`
	Amount     float64  `json:"amount"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// PriceCalculation is the immutable pricing breakdown of a quote.
//
// Invariant: TotalPrice = BasePrice + sum(AdditionalFees) - sum(Discounts).
// A negative total is possible and is not clamped.
type PriceCalculation struct {
	BasePrice      float64    `json:"basePrice"`
	AdditionalFees []Fee      `json:"additionalFees"`
	Discounts      []Discount `json:"discounts"`
	TotalPrice     float64    `json:"totalPrice"`
	Currency       string     `json:"currency"`
	CalculatedAt   time.Time  `json:"calculatedAt"`
}

// EmptyPriceCalculation is the snapshot embedded in rejection records.
func EmptyPriceCalculation(now time.Time) PriceCalculation {
	return PriceCalculation{
		AdditionalFees: []Fee{},
		Discounts:      []Discount{},
		Currency:       "USD",
		CalculatedAt:   now,
	}
}
