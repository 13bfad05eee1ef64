package usecase

import (
	"time"

	"torchline_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	defaultBasePrice    = 500
	heavyWeightLimit    = 1000
	heavyWeightFee      = 200
	expressTimeline     = "ASAP"
	expressFee          = 300
	volumePalletLimit   = 10
	volumeDiscount      = 100
	volumeDiscountPct   = 5
	defaultCurrency     = "USD"
	flatApprovedRevenue = 1500
)

var basePrices = map[entities.ServiceType]float64{
	entities.ServiceTypeOcean:       1500,
	entities.ServiceTypeAir:         500,
	entities.ServiceTypeGround:      300,
	entities.ServiceTypeWarehouse:   200,
	entities.ServiceTypeCustoms:     150,
	entities.ServiceTypeSpecialized: 1000,
}

// BasePrice returns the table price of a service tag, 500 for unknown tags.
func BasePrice(serviceType entities.ServiceType) float64 {
	if p, ok := basePrices[serviceType]; ok {
		return p
	}
	return defaultBasePrice
}

// CalculatePrice maps a service tag and shipment details to a price breakdown.
// It always succeeds; missing details simply add no fee or discount.
func CalculatePrice(serviceType entities.ServiceType, details entities.ServiceDetails) entities.PriceCalculation {
	return calculatePriceAt(serviceType, details, time.Now().UTC())
}

func calculatePriceAt(serviceType entities.ServiceType, details entities.ServiceDetails, now time.Time) entities.PriceCalculation {
	base := BasePrice(serviceType)
	fees := []entities.Fee{}
	discounts := []entities.Discount{}

	if details.Weight != nil && *details.Weight > heavyWeightLimit {
		fees = append(fees, entities.Fee{Name: "Heavy Weight Fee", Amount: heavyWeightFee, Type: "weight"})
	}
	if details.Timeline == expressTimeline {
		fees = append(fees, entities.Fee{Name: "Express Service", Amount: expressFee, Type: "express"})
	}
	if details.PalletCount != nil && *details.PalletCount > volumePalletLimit {
		pct := float64(volumeDiscountPct)
		discounts = append(discounts, entities.Discount{Name: "Volume Discount", Amount: volumeDiscount, Percentage: &pct})
	}

	total := decimal.NewFromFloat(base)
	for _, f := range fees {
		total = total.Add(decimal.NewFromFloat(f.Amount))
	}
	for _, d := range discounts {
		total = total.Sub(decimal.NewFromFloat(d.Amount))
	}

	return entities.PriceCalculation{
		BasePrice:      base,
		AdditionalFees: fees,
		Discounts:      discounts,
		TotalPrice:     total.InexactFloat64(),
		Currency:       defaultCurrency,
		CalculatedAt:   now,
	}
}
