package models

import (
	"time"

	"github.com/google/uuid"
)

// Categories is the fixed set of furniture categories a product may carry.
var Categories = []string{"Sofas", "Beds", "Chairs", "Tables", "Cabinets", "Wardrobes", "Doors"}

// ModelVariant is a named alternative configuration of a product: a distinct
// 3D asset with its own price and description. Variants are stored as an
// ordered list and addressed by index for display selection.
type ModelVariant struct {
	ID          string  `json:"id,omitempty" bson:"id,omitempty"`
	VariantName string  `json:"variantName" bson:"variantName"`
	ModelURL    string  `json:"modelUrl" bson:"modelUrl"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
}

type Product struct {
	ID          uuid.UUID      `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Stock       int            `json:"stock"`
	Image       string         `json:"image,omitempty"`
	Models      []ModelVariant `json:"models,omitempty"`
	// ModelURL is the legacy single-asset field older documents carry.
	// NormalizeModels folds it into Models.
	ModelURL  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeModels converts the legacy single modelUrl form into a one-element
// variant list so the rest of the code only ever deals with lists.
func (p *Product) NormalizeModels() {
	if len(p.Models) == 0 && p.ModelURL != "" {
		p.Models = []ModelVariant{{
			VariantName: "Default",
			ModelURL:    p.ModelURL,
			Price:       p.Price,
			Description: p.Description,
		}}
	}
	p.ModelURL = ""
}

// HasModels reports whether the product has any 3D assets. When false the
// viewer is disabled and only the static image applies.
func (p *Product) HasModels() bool {
	return len(p.Models) > 0
}

// VariantAt returns the variant at index i, or nil when i is out of range or
// the product has no variants.
func (p *Product) VariantAt(i int) *ModelVariant {
	if i < 0 || i >= len(p.Models) {
		return nil
	}
	return &p.Models[i]
}

// EffectivePrice resolves the price shown for a variant selection. The base
// product price applies only when no variant is selected or the index is out
// of range.
func (p *Product) EffectivePrice(modelIndex *int) float64 {
	if modelIndex != nil {
		if v := p.VariantAt(*modelIndex); v != nil {
			return v.Price
		}
	}
	return p.Price
}

// EffectiveDescription resolves the description for a variant selection with
// the same fallback rule as EffectivePrice.
func (p *Product) EffectiveDescription(modelIndex *int) string {
	if modelIndex != nil {
		if v := p.VariantAt(*modelIndex); v != nil {
			return v.Description
		}
	}
	return p.Description
}

// DisplayName is the cart-facing name: the product name, suffixed with the
// variant name when a variant is selected.
func (p *Product) DisplayName(modelIndex *int) string {
	if modelIndex != nil {
		if v := p.VariantAt(*modelIndex); v != nil {
			return p.Name + " - " + v.VariantName
		}
	}
	return p.Name
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// ViewerConfig is the 3D viewer configuration for a product: which asset to
// load and whether a variant selector should be shown. Mesh loading, camera
// and orbit controls belong to the rendering engine, not to us.
type ViewerConfig struct {
	Enabled      bool           `json:"enabled"`
	ShowSelector bool           `json:"showSelector"`
	Selected     int            `json:"selected"`
	ModelURL     string         `json:"modelUrl,omitempty"`
	VariantName  string         `json:"variantName,omitempty"`
	Models       []ModelVariant `json:"models,omitempty"`
}

// Viewer builds the viewer configuration for the given variant selection.
// Out-of-range selections fall back to the first variant. A selector control
// only makes sense when more than one variant exists.
func (p *Product) Viewer(selected int) ViewerConfig {
	if !p.HasModels() {
		return ViewerConfig{Enabled: false}
	}
	if selected < 0 || selected >= len(p.Models) {
		selected = 0
	}
	v := p.Models[selected]
	return ViewerConfig{
		Enabled:      true,
		ShowSelector: len(p.Models) > 1,
		Selected:     selected,
		ModelURL:     v.ModelURL,
		VariantName:  v.VariantName,
		Models:       p.Models,
	}
}
