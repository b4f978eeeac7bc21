package purchasing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/purchase-system/backend/internal/domain/bom"
	"github.com/purchase-system/backend/internal/domain/purchasing"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreatePurchaseRequest is the input for creating a purchase order.
// Currency, the order references and the expected delivery date are
// optional; an empty currency falls back to the domain default.
type CreatePurchaseRequest struct {
	NoProject     string                    `json:"no_project"`
	VendorName    string                    `json:"vendor_name"`
	Network       string                    `json:"network"`
	Currency      string                    `json:"currency"`
	PO            *string                   `json:"po"`
	Shopping      *string                   `json:"shopping"`
	TimeDelivered *time.Time                `json:"time_delivered"`
	Items         []purchasing.PurchaseItem `json:"items"`
}

// PurchaseService creates purchase orders and tracks their progress.
// Creation runs in one transaction: the network balance is verified and
// deducted, the purchase and its details inserted, and the covered BOM
// lines flipped to PO. Insufficient balance applies nothing.
type PurchaseService struct {
	store        purchasing.Store
	purchaseRepo purchasing.PurchaseRepository
	lineRepo     bom.LineRepository
	logger       *zap.Logger
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(
	store purchasing.Store,
	purchaseRepo purchasing.PurchaseRepository,
	lineRepo bom.LineRepository,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		store:        store,
		purchaseRepo: purchaseRepo,
		lineRepo:     lineRepo,
		logger:       logger,
	}
}

// Create places a purchase order against a network budget
func (s *PurchaseService) Create(ctx context.Context, req CreatePurchaseRequest) (*purchasing.Purchase, error) {
	vendorName := strings.TrimSpace(req.VendorName)
	if vendorName == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}

	var result *purchasing.Purchase
	err := s.store.WithinTransaction(ctx, func(tx purchasing.PurchaseTx) error {
		vendor, err := tx.FindVendorByName(ctx, vendorName)
		if errors.Is(err, shared.ErrNotFound) {
			vendor, err = purchasing.NewVendor(vendorName)
			if err != nil {
				return err
			}
			if err := tx.InsertVendor(ctx, vendor); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		purchase, err := purchasing.NewPurchase(req.NoProject, vendor.IDVendor, req.Network, req.Currency, req.Items)
		if err != nil {
			return err
		}
		purchase.PO = req.PO
		purchase.Shopping = req.Shopping
		purchase.TimeDelivered = req.TimeDelivered

		network, err := tx.FindNetwork(ctx, req.Network)
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_NETWORK", "Unknown network: "+req.Network)
		} else if err != nil {
			return err
		}
		if !network.CanAfford(purchase.Total) {
			return shared.ErrInsufficientBalance
		}

		if err := tx.DeductNetworkBalance(ctx, network.Network, purchase.Total); err != nil {
			return err
		}
		if err := tx.InsertPurchase(ctx, purchase); err != nil {
			return err
		}
		for _, noPart := range purchase.PartNumbers() {
			if err := tx.UpdateLineStatus(ctx, purchase.NoProject, noPart, bom.LineStatusPO); err != nil {
				return err
			}
		}

		result = purchase
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase created",
		zap.String("no_project", result.NoProject),
		zap.String("network", result.Network),
		zap.String("total", result.Total.String()),
		zap.Int("items", len(result.Details)))
	return result, nil
}

// ListByProject returns the project's purchased lines joined with vendor
// and network information.
func (s *PurchaseService) ListByProject(ctx context.Context, noProject string) ([]purchasing.PurchaseLineView, error) {
	return s.purchaseRepo.FindByProject(ctx, noProject)
}

// LineStatusUpdate moves one BOM line to another workflow status and,
// when a purchase is named, records the external order references on
// its header in the same call.
type LineStatusUpdate struct {
	NoProject  string
	NoPart     string
	Status     bom.LineStatus
	PurchaseID *uuid.UUID
	PO         *string
	Shopping   *string
}

// UpdateLineStatus applies a LineStatusUpdate
func (s *PurchaseService) UpdateLineStatus(ctx context.Context, upd LineStatusUpdate) error {
	if !upd.Status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown BOM line status: "+string(upd.Status))
	}
	if (upd.PO != nil || upd.Shopping != nil) && upd.PurchaseID == nil {
		return shared.NewDomainError("INVALID_INPUT", "Order references need a purchase_id")
	}

	if err := s.lineRepo.UpdateStatus(ctx, upd.NoProject, upd.NoPart, upd.Status); err != nil {
		return err
	}
	if upd.PurchaseID != nil && (upd.PO != nil || upd.Shopping != nil) {
		return s.purchaseRepo.UpdateOrderRefs(ctx, *upd.PurchaseID, upd.PO, upd.Shopping)
	}
	return nil
}

// StatusBreakdown is one slice of the tracking summary
type StatusBreakdown struct {
	Status  bom.LineStatus `json:"status"`
	Count   int64          `json:"count"`
	Percent float64        `json:"percent"`
}

// TrackingSummary reports a project's purchasing progress
type TrackingSummary struct {
	NoProject  string            `json:"no_project"`
	TotalLines int64             `json:"total_lines"`
	Breakdown  []StatusBreakdown `json:"breakdown"`
	TotalSpent decimal.Decimal   `json:"total_spent"`
}

// Tracking summarizes a project's BOM line statuses and spend
func (s *PurchaseService) Tracking(ctx context.Context, noProject string) (*TrackingSummary, error) {
	counts, err := s.lineRepo.CountByStatus(ctx, noProject)
	if err != nil {
		return nil, err
	}
	spent, err := s.purchaseRepo.TotalSpentByProject(ctx, noProject)
	if err != nil {
		return nil, err
	}

	summary := &TrackingSummary{NoProject: noProject, TotalSpent: spent}
	for _, count := range counts {
		summary.TotalLines += count
	}
	for _, status := range []bom.LineStatus{
		bom.LineStatusQuoted, bom.LineStatusPR, bom.LineStatusShoppingCart,
		bom.LineStatusPO, bom.LineStatusDelivered,
	} {
		count := counts[status]
		percent := 0.0
		if summary.TotalLines > 0 {
			percent = float64(count) / float64(summary.TotalLines) * 100
		}
		summary.Breakdown = append(summary.Breakdown, StatusBreakdown{
			Status:  status,
			Count:   count,
			Percent: percent,
		})
	}
	return summary, nil
}
