package catalog

import (
	"context"
	"strings"

	"github.com/purchase-system/backend/internal/domain/catalog"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/purchase-system/backend/internal/infrastructure/xlsximport"
)

// PartService handles catalog queries and maintenance outside the
// import flow. Imports create parts through their own transaction.
type PartService struct {
	partRepo catalog.PartRepository
}

// NewPartService creates a new PartService
func NewPartService(partRepo catalog.PartRepository) *PartService {
	return &PartService{partRepo: partRepo}
}

// Get returns one part by its canonical part number. The lookup key is
// normalized the same way the importer normalizes stored values, so
// "café-123" finds CAFE-123.
func (s *PartService) Get(ctx context.Context, noPart string) (*catalog.Part, error) {
	canonical := xlsximport.NormalizeText(noPart)
	if canonical == "" {
		return nil, shared.NewDomainError("INVALID_PART_NUMBER", "Part number cannot be empty")
	}
	return s.partRepo.FindByNoPart(ctx, canonical)
}

// List returns parts matching the filter
func (s *PartService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Part], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 200 {
		filter.PageSize = 50
	}

	parts, err := s.partRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.partRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(parts, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Search finds parts whose number or description matches the query
func (s *PartService) Search(ctx context.Context, query string) ([]catalog.Part, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, shared.NewDomainError("INVALID_QUERY", "Search query cannot be empty")
	}
	return s.partRepo.Search(ctx, query)
}

// ListByType returns parts of one type/category
func (s *PartService) ListByType(ctx context.Context, partType string) ([]catalog.Part, error) {
	canonical := xlsximport.NormalizeText(partType)
	if canonical == "" {
		return nil, shared.NewDomainError("INVALID_TYPE", "Part type cannot be empty")
	}
	return s.partRepo.FindByType(ctx, canonical)
}

// Types returns the distinct part types present in the catalog
func (s *PartService) Types(ctx context.Context) ([]string, error) {
	return s.partRepo.DistinctTypes(ctx)
}
