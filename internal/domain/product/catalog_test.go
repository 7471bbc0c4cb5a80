package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblarek/storefront/internal/events"
)

func priced(id string, price int64) Product {
	return Product{
		ID:       id,
		Title:    "Product " + id,
		Category: CategoryOther,
		Price:    decimal.NewNullDecimal(decimal.NewFromInt(price)),
	}
}

func TestCatalog_SetProducts(t *testing.T) {
	bus := events.NewBus()

	var got []CatalogEvent
	events.On(bus, events.CatalogChanged, func(ev CatalogEvent) { got = append(got, ev) })

	c := NewCatalog(bus)
	c.SetProducts([]Product{priced("a", 10), priced("b", 20)})

	require.Len(t, got, 1)
	assert.Len(t, got[0].Products, 2)
	assert.Equal(t, "a", got[0].Products[0].ID)

	p, ok := c.GetProduct("b")
	require.True(t, ok)
	assert.Equal(t, "b", p.ID)

	_, ok = c.GetProduct("missing")
	assert.False(t, ok)
}

func TestCatalog_GetProduct_FirstMatchWins(t *testing.T) {
	c := NewCatalog(events.NewBus())
	first := priced("dup", 10)
	second := priced("dup", 99)
	c.SetProducts([]Product{first, second})

	p, ok := c.GetProduct("dup")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(10).Equal(p.Price.Decimal))
}

func TestCatalog_Preview(t *testing.T) {
	bus := events.NewBus()

	var previews []PreviewEvent
	events.On(bus, events.PreviewChanged, func(ev PreviewEvent) { previews = append(previews, ev) })

	c := NewCatalog(bus)

	_, ok := c.Preview()
	assert.False(t, ok, "no preview before SetPreview")

	a := priced("a", 10)
	c.SetProducts([]Product{a, priced("b", 20)})
	c.SetPreview(a)

	require.Len(t, previews, 1)
	assert.Equal(t, "a", previews[0].Product.ID)

	p, ok := c.Preview()
	require.True(t, ok)
	assert.Equal(t, "a", p.ID)

	// Reload drops the previewed product: the preview no longer resolves.
	c.SetProducts([]Product{priced("b", 20)})
	_, ok = c.Preview()
	assert.False(t, ok)
}

func TestProduct_Priceless(t *testing.T) {
	p := Product{ID: "x"}
	assert.True(t, p.Priceless())
	assert.True(t, decimal.Zero.Equal(p.PriceOrZero()))

	p = priced("y", 100)
	assert.False(t, p.Priceless())
	assert.True(t, decimal.NewFromInt(100).Equal(p.PriceOrZero()))
}
