package purchasing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchase(t *testing.T) {
	items := []PurchaseItem{
		{NoPart: "ABC-1", Quantity: 4, PriceUnit: decimal.NewFromFloat(12.50)},
		{NoPart: "DEF-2", Quantity: 1, PriceUnit: decimal.NewFromInt(100)},
	}

	t.Run("computes total from items", func(t *testing.T) {
		p, err := NewPurchase("P100", "V123456789", "NET-A", "MXN", items)
		require.NoError(t, err)
		assert.True(t, p.Total.Equal(decimal.NewFromInt(150)), p.Total.String())
		require.Len(t, p.Details, 2)
		assert.True(t, p.Details[0].Subtotal.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, p.ID, p.Details[0].PurchaseID)
		assert.Equal(t, "MXN", p.Currency)
		assert.Nil(t, p.PO)
		assert.Nil(t, p.Shopping)
	})

	t.Run("empty currency falls back to the default", func(t *testing.T) {
		p, err := NewPurchase("P100", "V1", "NET-A", "", items)
		require.NoError(t, err)
		assert.Equal(t, DefaultCurrency, p.Currency)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := NewPurchase("P100", "V1", "NET-A", "MXN", nil)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewPurchase("P100", "V1", "NET-A", "MXN", []PurchaseItem{
			{NoPart: "ABC-1", Quantity: 0, PriceUnit: decimal.NewFromInt(1)},
		})
		assert.Error(t, err)
	})

	t.Run("rejects missing network", func(t *testing.T) {
		_, err := NewPurchase("P100", "V1", "", "MXN", items)
		assert.Error(t, err)
	})
}

func TestPurchasePartNumbers(t *testing.T) {
	p, err := NewPurchase("P100", "V1", "NET-A", "MXN", []PurchaseItem{
		{NoPart: "ABC-1", Quantity: 1, PriceUnit: decimal.NewFromInt(1)},
		{NoPart: "ABC-1", Quantity: 2, PriceUnit: decimal.NewFromInt(2)},
		{NoPart: "DEF-2", Quantity: 1, PriceUnit: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC-1", "DEF-2"}, p.PartNumbers())
}

func TestNetworkDeduct(t *testing.T) {
	n := &Network{Network: "NET-A", Balance: decimal.NewFromInt(100)}

	require.NoError(t, n.Deduct(decimal.NewFromInt(40)))
	assert.True(t, n.Balance.Equal(decimal.NewFromInt(60)))

	err := n.Deduct(decimal.NewFromInt(61))
	require.Error(t, err)
	assert.True(t, n.Balance.Equal(decimal.NewFromInt(60)))

	assert.Error(t, n.Deduct(decimal.NewFromInt(-1)))
}

func TestGenerateVendorID(t *testing.T) {
	id := GenerateVendorID()
	assert.Len(t, id, 10)
	assert.True(t, strings.HasPrefix(id, "V"))
}

func TestNewVendor(t *testing.T) {
	v, err := NewVendor("Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", v.NameVendor)
	assert.NotEmpty(t, v.IDVendor)

	_, err = NewVendor("")
	assert.Error(t, err)
}
