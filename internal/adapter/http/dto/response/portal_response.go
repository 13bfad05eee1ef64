package response

import (
	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase"
)

type ShipmentResponse struct {
	ID string `json:"id"`
	entities.Shipment
}

type VendorOrderResponse struct {
	ID string `json:"id"`
	entities.VendorOrder
}

type CustomerDashboardResponse struct {
	Shipments []ShipmentResponse `json:"shipments"`
	Quotes    []QuoteResponse    `json:"quotes"`
}

type VendorDashboardResponse struct {
	Orders []VendorOrderResponse `json:"orders"`
}

func FromCustomerDashboard(d usecase.CustomerDashboard) CustomerDashboardResponse {
	out := CustomerDashboardResponse{
		Shipments: make([]ShipmentResponse, 0, len(d.Shipments)),
		Quotes:    FromQuotes(d.Quotes),
	}
	for _, s := range d.Shipments {
		out.Shipments = append(out.Shipments, ShipmentResponse{ID: s.ID, Shipment: s})
	}
	return out
}

func FromVendorDashboard(d usecase.VendorDashboard) VendorDashboardResponse {
	out := VendorDashboardResponse{Orders: make([]VendorOrderResponse, 0, len(d.Orders))}
	for _, o := range d.Orders {
		out.Orders = append(out.Orders, VendorOrderResponse{ID: o.ID, VendorOrder: o})
	}
	return out
}
