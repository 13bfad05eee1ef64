package usecase

import (
	"context"
	"log"
	"strings"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"
)

const dashboardPageSize = 10

type CustomerDashboard struct {
	Shipments []entities.Shipment `json:"shipments"`
	Quotes    []entities.Quote    `json:"quotes"`
}

type VendorDashboard struct {
	Orders []entities.VendorOrder `json:"orders"`
}

// IPortalUseCase backs the customer and vendor portal landing pages.
type IPortalUseCase interface {
	CustomerDashboard(ctx context.Context, user entities.SessionUser) (CustomerDashboard, error)
	VendorDashboard(ctx context.Context, user entities.SessionUser) (VendorDashboard, error)
}

type PortalUseCase struct {
	store interfaces.IDocumentStore
	owner string
}

var _ IPortalUseCase = (*PortalUseCase)(nil)

func NewPortalUseCase(store interfaces.IDocumentStore, owner string) *PortalUseCase {
	return &PortalUseCase{store: store, owner: resolveActor(owner)}
}

func (u *PortalUseCase) CustomerDashboard(ctx context.Context, user entities.SessionUser) (CustomerDashboard, error) {
	out := CustomerDashboard{Shipments: []entities.Shipment{}, Quotes: []entities.Quote{}}

	shipDocs, err := u.store.Read(ctx, u.owner, entities.ReadQuery{Collection: CollectionShipments, Limit: dashboardPageSize})
	if err != nil {
		log.Printf("[portal][usecase] shipments fetch failed email=%s err=%v", user.Email, err)
		return CustomerDashboard{}, err
	}
	for _, d := range shipDocs {
		s, err := decodeDocument[entities.Shipment](d)
		if err != nil || !sameEmail(s.CustomerEmail, user.Email) {
			continue
		}
		s.ID = d.ID
		out.Shipments = append(out.Shipments, s)
	}

	quoteDocs, err := u.store.Read(ctx, u.owner, entities.ReadQuery{Collection: CollectionQuoteRequests, Limit: dashboardPageSize})
	if err != nil {
		log.Printf("[portal][usecase] quotes fetch failed email=%s err=%v", user.Email, err)
		return CustomerDashboard{}, err
	}
	for _, d := range quoteDocs {
		q, err := toQuote(d)
		if err != nil || !sameEmail(q.Email, user.Email) {
			continue
		}
		out.Quotes = append(out.Quotes, q)
	}

	log.Printf("[portal][usecase] customer dashboard email=%s shipments=%d quotes=%d", user.Email, len(out.Shipments), len(out.Quotes))
	return out, nil
}

func (u *PortalUseCase) VendorDashboard(ctx context.Context, user entities.SessionUser) (VendorDashboard, error) {
	out := VendorDashboard{Orders: []entities.VendorOrder{}}

	docs, err := u.store.Read(ctx, u.owner, entities.ReadQuery{Collection: CollectionVendorOrders, Limit: dashboardPageSize})
	if err != nil {
		log.Printf("[portal][usecase] orders fetch failed email=%s err=%v", user.Email, err)
		return VendorDashboard{}, err
	}
	for _, d := range docs {
		o, err := decodeDocument[entities.VendorOrder](d)
		if err != nil || !sameEmail(o.VendorEmail, user.Email) {
			continue
		}
		o.ID = d.ID
		out.Orders = append(out.Orders, o)
	}
	log.Printf("[portal][usecase] vendor dashboard email=%s orders=%d", user.Email, len(out.Orders))
	return out, nil
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
