package inventory

import (
	"context"
	"time"

	"github.com/purchase-system/backend/internal/domain/catalog"
	"github.com/purchase-system/backend/internal/domain/inventory"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/purchase-system/backend/internal/infrastructure/xlsximport"
)

// StockService records warehouse movements and answers availability
type StockService struct {
	stockRepo inventory.StockRepository
	partRepo  catalog.PartRepository
}

// NewStockService creates a new StockService
func NewStockService(stockRepo inventory.StockRepository, partRepo catalog.PartRepository) *StockService {
	return &StockService{stockRepo: stockRepo, partRepo: partRepo}
}

// RecordEntry registers parts received into the warehouse. The part must
// already exist in the catalog.
func (s *StockService) RecordEntry(ctx context.Context, noPart string, quantity int, rack string, dateEntry time.Time) (*inventory.StockEntry, error) {
	canonical := xlsximport.NormalizeText(noPart)
	exists, err := s.partRepo.Exists(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("UNKNOWN_PART", "Part is not in the catalog: "+canonical)
	}

	entry, err := inventory.NewStockEntry(canonical, quantity, rack, dateEntry)
	if err != nil {
		return nil, err
	}
	if err := s.stockRepo.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordOutput registers parts leaving the warehouse, rejecting outputs
// that exceed the available quantity.
func (s *StockService) RecordOutput(ctx context.Context, noPart string, quantity int, destination string, dateOutput time.Time) (*inventory.OutputMovement, error) {
	canonical := xlsximport.NormalizeText(noPart)

	available, err := s.stockRepo.AvailableQuantity(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if quantity > available {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			"Not enough stock available for part "+canonical)
	}

	output, err := inventory.NewOutputMovement(canonical, quantity, destination, dateOutput)
	if err != nil {
		return nil, err
	}
	if err := s.stockRepo.SaveOutput(ctx, output); err != nil {
		return nil, err
	}
	return output, nil
}

// Overview lists every stocked part with entered, shipped and available
// quantities.
func (s *StockService) Overview(ctx context.Context) ([]inventory.StockOverview, error) {
	return s.stockRepo.Overview(ctx)
}

// Movements returns a part's inbound and outbound history
func (s *StockService) Movements(ctx context.Context, noPart string) ([]inventory.StockEntry, []inventory.OutputMovement, error) {
	canonical := xlsximport.NormalizeText(noPart)
	entries, err := s.stockRepo.FindEntriesByPart(ctx, canonical)
	if err != nil {
		return nil, nil, err
	}
	outputs, err := s.stockRepo.FindOutputsByPart(ctx, canonical)
	if err != nil {
		return nil, nil, err
	}
	return entries, outputs, nil
}
