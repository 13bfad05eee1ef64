package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// SeedOptions tune a seeding run.
type SeedOptions struct {
	HashPasswords bool
}

// SeedResult counts the documents written per collection.
type SeedResult struct {
	Created map[string]int
}

type ISeedUseCase interface {
	Seed(ctx context.Context, opts SeedOptions) (SeedResult, error)
}

// SeedUseCase writes the demo data set: four accounts (one per role), the
// service catalog, two shipments, one pending quote and one vendor order.
type SeedUseCase struct {
	store interfaces.IDocumentStore
	owner string
	now   func() time.Time
}

var _ ISeedUseCase = (*SeedUseCase)(nil)

func NewSeedUseCase(store interfaces.IDocumentStore, owner string) *SeedUseCase {
	return &SeedUseCase{store: store, owner: resolveActor(owner), now: func() time.Time { return time.Now().UTC() }}
}

type seedItem struct {
	collection string
	data       any
	tags       []string
}

func (u *SeedUseCase) Seed(ctx context.Context, opts SeedOptions) (SeedResult, error) {
	items, err := u.seedItems(opts)
	if err != nil {
		return SeedResult{}, err
	}

	res := SeedResult{Created: map[string]int{}}
	for _, it := range items {
		if _, err := u.store.Create(ctx, u.owner, it.collection, it.data, it.tags); err != nil {
			log.Printf("[seed][usecase] create failed collection=%s err=%v", it.collection, err)
			return res, fmt.Errorf("seed %s: %w", it.collection, err)
		}
		res.Created[it.collection]++
	}
	log.Printf("[seed][usecase] completed owner=%s documents=%d", u.owner, len(items))
	return res, nil
}

func (u *SeedUseCase) seedItems(opts SeedOptions) ([]seedItem, error) {
	now := u.now()
	var items []seedItem

	for _, user := range demoUsers(now) {
		if opts.HashPasswords {
			hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash password for %s: %w", user.Email, err)
			}
			user.Password = string(hash)
		}
		items = append(items, seedItem{CollectionUsers, user, []string{"user", string(user.Role), user.PortalType}})
	}

	for _, svc := range entities.ServiceCatalog {
		items = append(items, seedItem{CollectionServices, svc, []string{"service", "active"}})
	}

	for _, s := range demoShipments(now) {
		items = append(items, seedItem{CollectionShipments, s, []string{"shipment", s.Status}})
	}

	q := demoQuote(now)
	items = append(items, seedItem{CollectionQuoteRequests, q, []string{"quote", string(q.Status), string(q.Service)}})

	order := entities.VendorOrder{
		OrderID:       "ORD-001",
		VendorEmail:   "vendor@example.com",
		VendorName:    "Jane Vendor",
		CustomerName:  "John Customer",
		CustomerEmail: "customer@example.com",
		Service:       "Air Freight",
		Status:        "active",
		Amount:        1500,
		CreatedAt:     now,
	}
	items = append(items, seedItem{CollectionVendorOrders, order, []string{"order", order.Status}})
	return items, nil
}

// DemoCredentials lists the seeded logins as "email / password" pairs by portal.
var DemoCredentials = []struct {
	Portal   string
	Email    string
	Password string
}{
	{"Customer Portal", "customer@example.com", "customer123"},
	{"Employee Portal", "employee@torchlinegroup.com", "employee123"},
	{"Vendor Portal", "vendor@example.com", "vendor123"},
	{"Admin", "admin@torchlinegroup.com", "admin123"},
}

func demoUsers(now time.Time) []entities.User {
	return []entities.User{
		{
			Email: "admin@torchlinegroup.com", Password: "admin123", Name: "Admin User",
			Role: entities.UserRoleAdmin, PortalType: "employee", Company: "Torchline Freight Group",
			Phone: "+1 720-575-3331", Status: "active", CreatedAt: now,
		},
		{
			Email: "customer@example.com", Password: "customer123", Name: "John Customer",
			Role: entities.UserRoleCustomer, PortalType: "customer", Company: "ABC Corp",
			Phone: "+1 555-123-4567", Status: "active", CreatedAt: now,
		},
		{
			Email: "employee@torchlinegroup.com", Password: "employee123", Name: "Sarah Employee",
			Role: entities.UserRoleEmployee, PortalType: "employee", Company: "Torchline Freight Group",
			Phone: "+1 720-575-3332", Status: "active", CreatedAt: now,
		},
		{
			Email: "vendor@example.com", Password: "vendor123", Name: "Jane Vendor",
			Role: entities.UserRoleVendor, PortalType: "vendor", Company: "XYZ Logistics",
			Phone: "+1 555-987-6543", Status: "active", CreatedAt: now,
		},
	}
}

func demoShipments(now time.Time) []entities.Shipment {
	return []entities.Shipment{
		{
			TrackingNumber: "TFG123456789", CustomerEmail: "customer@example.com", CustomerName: "John Customer",
			Origin: "New York, NY", Destination: "Los Angeles, CA", Status: "in-transit",
			Service: "Ground Transportation", EstimatedDelivery: now.AddDate(0, 0, 3),
			Weight: 500, Dimensions: "48x40x48", CreatedAt: now,
		},
		{
			TrackingNumber: "TFG987654321", CustomerEmail: "customer@example.com", CustomerName: "John Customer",
			Origin: "Chicago, IL", Destination: "Miami, FL", Status: "delivered",
			Service: "Air Freight", EstimatedDelivery: now.AddDate(0, 0, -2),
			Weight: 200, Dimensions: "24x20x20", CreatedAt: now.AddDate(0, 0, -5),
		},
	}
}

func demoQuote(now time.Time) entities.Quote {
	cubicFeet, weight, pallets := 2000.0, 10000.0, 20.0
	return entities.Quote{
		Name:    "John Customer",
		Email:   "customer@example.com",
		Phone:   "+1 555-123-4567",
		Company: "ABC Corp",
		Service: entities.ServiceTypeOcean,
		Message: "Need to ship 5 containers from Shanghai to Los Angeles",
		Status:  entities.QuoteStatusPending,
		ServiceDetails: &entities.ServiceDetails{
			PickupLocation:   "Shanghai, China",
			DeliveryLocation: "Los Angeles, CA",
			CubicFeet:        &cubicFeet,
			PalletCount:      &pallets,
			Weight:           &weight,
			Timeline:         "2-3 weeks",
		},
		SubmittedAt: now.Format(time.RFC3339Nano),
	}
}
