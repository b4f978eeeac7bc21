package catalog

import (
	"strings"
	"testing"

	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewPart(t *testing.T) {
	t.Run("valid part", func(t *testing.T) {
		part, err := NewPart("ABC-1", strPtr("ACME"), strPtr("WIDGET"), intPtr(10), strPtr("PCS"), strPtr("HARDWARE"))
		require.NoError(t, err)
		assert.Equal(t, "ABC-1", part.NoPart)
		assert.Equal(t, "ACME", *part.Brand)
		assert.Equal(t, 10, *part.Quantity)
	})

	t.Run("empty part number", func(t *testing.T) {
		_, err := NewPart("", nil, nil, nil, nil, nil)
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_PART_NUMBER", domainErr.Code)
	})

	t.Run("part number too long", func(t *testing.T) {
		_, err := NewPart(strings.Repeat("X", 101), nil, nil, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := NewPart("ABC-1", nil, nil, intPtr(-1), nil, nil)
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})

	t.Run("nil attributes allowed", func(t *testing.T) {
		part, err := NewPart("ABC-1", nil, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, part.Brand)
		assert.Nil(t, part.Quantity)
	})
}

func TestPartUnitsPerPackage(t *testing.T) {
	part, err := NewPart("ABC-1", nil, nil, intPtr(25), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 25, part.UnitsPerPackage())

	part.Quantity = nil
	assert.Equal(t, 0, part.UnitsPerPackage())
}
