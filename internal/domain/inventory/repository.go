package inventory

import "context"

// StockOverview summarizes one part's warehouse position:
// available = total received minus total shipped out.
type StockOverview struct {
	NoPart      string  `json:"no_part"`
	Description *string `json:"description"`
	Entered     int     `json:"entered"`
	Shipped     int     `json:"shipped"`
	Available   int     `json:"available"`
}

// StockRepository defines persistence for inbound and outbound movements
type StockRepository interface {
	SaveEntry(ctx context.Context, entry *StockEntry) error
	SaveOutput(ctx context.Context, output *OutputMovement) error
	FindEntriesByPart(ctx context.Context, noPart string) ([]StockEntry, error)
	FindOutputsByPart(ctx context.Context, noPart string) ([]OutputMovement, error)
	Overview(ctx context.Context) ([]StockOverview, error)
	AvailableQuantity(ctx context.Context, noPart string) (int, error)
}
