package xlsximport

// Header aliases for each logical BOM field. Sheets arrive from several
// sources with Spanish, English or abbreviated headers; the picker's
// fuzzy fallback covers anything close to these.
var (
	PartNumberAliases  = []string{"no_parte", "numero_de_parte", "part_number"}
	BrandAliases       = []string{"marca", "brand"}
	DescriptionAliases = []string{"producto", "description", "descripcion"}
	SaleQtyAliases     = []string{"cantidad_venta", "quantity", "qty"}
	UnitAliases        = []string{"unidad", "unit"}
	TypeAliases        = []string{"tipo", "type"}
	ProjectQtyAliases  = []string{"cantidad_solicitada", "cantidad_proyecto"}
)

// Candidate is one validated spreadsheet row resolved to a part and,
// when present, a requested quantity for the project's BOM. Text fields
// are canonicalized via NormalizeText; absent fields are nil.
type Candidate struct {
	Line            int
	NoPart          string
	Brand           *string
	Description     *string
	SaleQuantity    *int
	Unit            *string
	Type            *string
	ProjectQuantity *int
}

// ParseCandidates extracts candidates from the sheet's data rows. Rows
// whose part number cannot be resolved (or normalizes to empty) are
// dropped; the second return value counts them so callers can report
// the loss instead of swallowing it.
func ParseCandidates(sheet *Sheet) ([]Candidate, int) {
	candidates := make([]Candidate, 0, len(sheet.Rows))
	skipped := 0

	for _, row := range sheet.Rows {
		raw, ok := row.Pick(PartNumberAliases)
		if !ok {
			skipped++
			continue
		}
		noPart := NormalizeText(raw)
		if noPart == "" {
			skipped++
			continue
		}

		c := Candidate{Line: row.Line, NoPart: noPart}
		if v, ok := row.Pick(BrandAliases); ok {
			c.Brand = textPtr(v)
		}
		if v, ok := row.Pick(DescriptionAliases); ok {
			c.Description = textPtr(v)
		}
		if v, ok := row.Pick(SaleQtyAliases); ok {
			c.SaleQuantity = ToInt(v)
		}
		if v, ok := row.Pick(UnitAliases); ok {
			c.Unit = textPtr(v)
		}
		if v, ok := row.Pick(TypeAliases); ok {
			c.Type = textPtr(v)
		}
		if v, ok := row.Pick(ProjectQtyAliases); ok {
			c.ProjectQuantity = ToInt(v)
		}

		candidates = append(candidates, c)
	}

	return candidates, skipped
}

func textPtr(v string) *string {
	normalized := NormalizeText(v)
	if normalized == "" {
		return nil
	}
	return &normalized
}
