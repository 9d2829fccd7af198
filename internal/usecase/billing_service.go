package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/taglens/backend/internal/domain"
)

// BillingServiceConfig holds configuration for the billing service
type BillingServiceConfig struct {
	ListLimit int
}

// BillingService creates and lists billing records
type BillingService struct {
	store     domain.BillRepository
	listLimit int
}

// NewBillingService creates a new billing service with dependencies
func NewBillingService(store domain.BillRepository, config BillingServiceConfig) *BillingService {
	listLimit := config.ListLimit
	if listLimit <= 0 {
		listLimit = 20
	}

	return &BillingService{
		store:     store,
		listLimit: listLimit,
	}
}

// CreateBill validates and persists a bill, returning its assigned id.
// A zero quantity defaults to 1; a zero total is computed from the items.
func (s *BillingService) CreateBill(ctx context.Context, bill *domain.Bill) (string, error) {
	if bill == nil || len(bill.Items) == 0 {
		return "", fmt.Errorf("%w: at least one item is required", domain.ErrInvalidBill)
	}

	for i := range bill.Items {
		item := &bill.Items[i]
		if strings.TrimSpace(item.Name) == "" {
			return "", fmt.Errorf("%w: item %d has no name", domain.ErrInvalidBill, i)
		}
		if item.Quantity < 0 {
			return "", fmt.Errorf("%w: item %d has negative quantity", domain.ErrInvalidBill, i)
		}
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		if item.SellPrice < 0 || item.MRP < 0 {
			return "", fmt.Errorf("%w: item %d has negative price", domain.ErrInvalidBill, i)
		}
	}

	if bill.Total == 0 {
		bill.Total = computeTotal(bill.Items)
	}

	return s.store.Save(ctx, bill)
}

// ListBills returns the most recent bills, newest first
func (s *BillingService) ListBills(ctx context.Context) ([]domain.Bill, error) {
	return s.store.List(ctx, s.listLimit)
}

// computeTotal sums the bill items. An item without a sell price falls
// back to its MRP.
func computeTotal(items []domain.BillItem) float64 {
	var total float64
	for _, item := range items {
		price := item.SellPrice
		if price == 0 {
			price = item.MRP
		}
		total += price * float64(item.Quantity)
	}
	return total
}
