package xlsximport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows to the default sheet of a fresh workbook and
// returns the serialized xlsx bytes.
func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadSheet(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"No Parte", "Marca", "Cantidad Solicitada"},
		{"abc-1", "Acme", "25"},
		{"def-2", "", "10"},
	})

	sheet, err := ReadSheet(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"no_parte", "marca", "cantidad_solicitada"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, 2, sheet.Rows[0].Line)
	assert.Equal(t, "abc-1", sheet.Rows[0].Data["no_parte"])
	assert.Equal(t, "25", sheet.Rows[0].Data["cantidad_solicitada"])
	assert.Equal(t, "", sheet.Rows[1].Data["marca"])
}

func TestReadSheetSkipsBlankRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"No Parte", "Marca"},
		{"abc-1", "Acme"},
		{"", ""},
		{"   ", ""},
		{"def-2", "Other"},
	})

	sheet, err := ReadSheet(buf)
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "abc-1", sheet.Rows[0].Data["no_parte"])
	assert.Equal(t, "def-2", sheet.Rows[1].Data["no_parte"])
	// line numbers keep sheet coordinates, blanks included
	assert.Equal(t, 5, sheet.Rows[1].Line)
}

func TestReadSheetSyntheticHeaders(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"No Parte", "***", "Tipo"},
		{"abc-1", "ignored", "Hardware"},
	})

	sheet, err := ReadSheet(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"no_parte", "col_1", "tipo"}, sheet.Headers)
	assert.Equal(t, "ignored", sheet.Rows[0].Data["col_1"])
}

func TestReadSheetShortRow(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"No Parte", "Marca", "Tipo"},
		{"abc-1"},
	})

	sheet, err := ReadSheet(buf)
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "", sheet.Rows[0].Data["marca"])
	assert.Equal(t, "", sheet.Rows[0].Data["tipo"])
}

func TestReadSheetTooFewRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"No Parte", "Marca"},
	})

	_, err := ReadSheet(buf)
	assert.ErrorIs(t, err, ErrTooFewRows)
}

func TestReadSheetNotAWorkbook(t *testing.T) {
	_, err := ReadSheet(bytes.NewBufferString("definitely not xlsx"))
	assert.Error(t, err)
}
