package xlsximport

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoWorksheet is returned when the workbook contains no sheets.
	ErrNoWorksheet = errors.New("workbook contains no worksheets")
	// ErrTooFewRows is returned when the first sheet lacks a header row
	// plus at least one data row.
	ErrTooFewRows = errors.New("sheet needs a header row and at least one data row")
)

// Sheet is the first worksheet of an uploaded workbook, parsed into
// canonical-keyed rows. Blank data rows are dropped during reading.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// ReadSheet parses the first worksheet of an xlsx workbook. Row 1 is
// the header row; headers that normalize to the empty string get a
// synthetic col_<index> key so their cells stay addressable.
func ReadSheet(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}

	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheets[0], err)
	}
	if len(grid) < 2 {
		return nil, ErrTooFewRows
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		key := NormalizeHeader(h)
		if key == "" {
			key = fmt.Sprintf("col_%d", i)
		}
		headers[i] = key
	}

	sheet := &Sheet{Headers: headers}
	for i, cells := range grid[1:] {
		if isBlank(cells) {
			continue
		}
		data := make(map[string]string, len(headers))
		for j, key := range headers {
			if j < len(cells) {
				data[key] = cells[j]
			} else {
				data[key] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, Row{
			// +2: 1-based sheet coordinates plus the header row
			Line:    i + 2,
			Headers: headers,
			Data:    data,
		})
	}

	return sheet, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
