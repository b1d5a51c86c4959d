package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func variantProduct() Product {
	return Product{
		Name:        "Oak Table",
		Description: "Solid oak dining table",
		Price:       120,
		Category:    "Tables",
		Models: []ModelVariant{
			{ID: "v1", VariantName: "Walnut", ModelURL: "https://cdn.example.com/walnut.glb", Price: 150, Description: "Walnut finish"},
			{ID: "v2", VariantName: "Birch", ModelURL: "https://cdn.example.com/birch.glb", Price: 135, Description: "Birch finish"},
		},
	}
}

func TestNormalizeModels(t *testing.T) {
	t.Run("Legacy single modelUrl becomes a one-element list", func(t *testing.T) {
		p := Product{
			Name:        "Old Chair",
			Description: "A chair from before variants",
			Price:       60,
			ModelURL:    "https://cdn.example.com/chair.glb",
		}

		p.NormalizeModels()

		assert.Len(t, p.Models, 1)
		assert.Equal(t, "Default", p.Models[0].VariantName)
		assert.Equal(t, "https://cdn.example.com/chair.glb", p.Models[0].ModelURL)
		assert.Equal(t, 60.0, p.Models[0].Price)
		assert.Empty(t, p.ModelURL)
	})

	t.Run("Existing variant list wins over the legacy field", func(t *testing.T) {
		p := variantProduct()
		p.ModelURL = "https://cdn.example.com/stale.glb"

		p.NormalizeModels()

		assert.Len(t, p.Models, 2)
		assert.Equal(t, "Walnut", p.Models[0].VariantName)
	})

	t.Run("No assets at all stays empty", func(t *testing.T) {
		p := Product{Name: "Flat Pack", Price: 20}
		p.NormalizeModels()
		assert.False(t, p.HasModels())
	})
}

func TestVariantSelection(t *testing.T) {
	p := variantProduct()

	t.Run("Selected variant overrides price and description", func(t *testing.T) {
		i := 1
		assert.Equal(t, 135.0, p.EffectivePrice(&i))
		assert.Equal(t, "Birch finish", p.EffectiveDescription(&i))
		assert.Equal(t, "Oak Table - Birch", p.DisplayName(&i))
	})

	t.Run("No selection falls back to the base product", func(t *testing.T) {
		assert.Equal(t, 120.0, p.EffectivePrice(nil))
		assert.Equal(t, "Solid oak dining table", p.EffectiveDescription(nil))
		assert.Equal(t, "Oak Table", p.DisplayName(nil))
	})

	t.Run("Out-of-range selection falls back to the base product", func(t *testing.T) {
		i := 5
		assert.Equal(t, 120.0, p.EffectivePrice(&i))
		assert.Equal(t, "Oak Table", p.DisplayName(&i))
	})
}

func TestViewer(t *testing.T) {
	t.Run("Disabled when the product has no 3D assets", func(t *testing.T) {
		p := Product{Name: "Flat Pack"}
		cfg := p.Viewer(0)
		assert.False(t, cfg.Enabled)
		assert.Empty(t, cfg.ModelURL)
	})

	t.Run("Selector shown only with more than one variant", func(t *testing.T) {
		p := variantProduct()
		cfg := p.Viewer(0)
		assert.True(t, cfg.Enabled)
		assert.True(t, cfg.ShowSelector)

		p.Models = p.Models[:1]
		cfg = p.Viewer(0)
		assert.True(t, cfg.Enabled)
		assert.False(t, cfg.ShowSelector)
	})

	t.Run("Out-of-range selection falls back to the first variant", func(t *testing.T) {
		p := variantProduct()
		cfg := p.Viewer(7)
		assert.Equal(t, 0, cfg.Selected)
		assert.Equal(t, "Walnut", cfg.VariantName)
	})
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("returned"))
	assert.False(t, ValidStatus(""))
}

func TestShippingAddressComplete(t *testing.T) {
	full := ShippingAddress{Address: "12 Harbour St", City: "Oslo", ZipCode: "0150", Country: "Norway"}
	assert.True(t, full.Complete())

	partial := full
	partial.Country = ""
	assert.False(t, partial.Complete())

	assert.False(t, ShippingAddress{}.Complete())
}
