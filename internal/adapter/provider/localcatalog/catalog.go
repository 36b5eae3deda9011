// Package localcatalog answers barcode lookups for common packaged products without a network call.
package localcatalog

import (
	"context"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

type entry struct {
	name       string
	brand      string
	category   domain.Category
	expiryDays int
}

var products = map[string]entry{
	"8901052020294": {"Tata Tea Chakra Gold 500g", "Tata", domain.CategoryBeverages, 365},
	"8901052021000": {"Tata Tea Premium 250g", "Tata", domain.CategoryBeverages, 365},
	"8901030715204": {"Tata Salt 1kg", "Tata", domain.CategoryCondiments, 730},
	"8901262011068": {"Amul Butter 500g", "Amul", domain.CategoryDairy, 180},
	"8901262150064": {"Amul Fresh Milk 500ml", "Amul", domain.CategoryDairy, 7},
	"8901262011112": {"Amul Gold Milk 1L", "Amul", domain.CategoryDairy, 7},
	"8901262011259": {"Amul Cheese Slices", "Amul", domain.CategoryDairy, 90},
	"8901063011014": {"Britannia Good Day 75g", "Britannia", domain.CategorySnacks, 180},
	"8901063109780": {"Britannia Bread 400g", "Britannia", domain.CategoryBread, 3},
	"8901063157078": {"Britannia Cheese 200g", "Britannia", domain.CategoryDairy, 90},
	"8901207100017": {"Parle-G 80g", "Parle", domain.CategorySnacks, 270},
	"8901207018756": {"Parle Monaco 75g", "Parle", domain.CategorySnacks, 180},
	"8901058002393": {"Maggi 2-Minute Noodles", "Nestle", domain.CategoryGrains, 270},
	"8901058002478": {"Maggi Masala Noodles 70g", "Nestle", domain.CategoryGrains, 270},
	"8901058840216": {"Nestle Everyday Dairy Whitener", "Nestle", domain.CategoryDairy, 180},
	"8901049015017": {"MDH Chana Masala 100g", "MDH", domain.CategoryCondiments, 365},
	"8901049017011": {"MDH Garam Masala 100g", "MDH", domain.CategoryCondiments, 365},
	"8904004408130": {"Haldirams Bhujia 400g", "Haldirams", domain.CategorySnacks, 180},
	"8901058836912": {"Fortune Sunflower Oil 1L", "Fortune", domain.CategoryCondiments, 365},
	"8904033500095": {"Saffola Gold Oil 1L", "Saffola", domain.CategoryCondiments, 365},
	"8901725181109": {"Aashirvaad Atta 5kg", "ITC", domain.CategoryGrains, 180},
	"8901042507019": {"MTR Rava Idli Mix 500g", "MTR", domain.CategoryGrains, 365},
	"8901207043116": {"Real Fruit Power Mango 1L", "Dabur", domain.CategoryBeverages, 180},
	"8906002810015": {"Mother Dairy Milk 500ml", "Mother Dairy", domain.CategoryDairy, 3},
	"8906002810091": {"Mother Dairy Curd 400g", "Mother Dairy", domain.CategoryDairy, 7},
	"8906006280016": {"Patanjali Cow Ghee 500ml", "Patanjali", domain.CategoryDairy, 270},
	"8906006280054": {"Patanjali Honey 500g", "Patanjali", domain.CategoryCondiments, 730},
	"8906006280078": {"Patanjali Dahi 400g", "Patanjali", domain.CategoryDairy, 7},
	"8901491101516": {"Lays Classic Salted 52g", "Lays", domain.CategorySnacks, 90},
	"8901388000012": {"Coca Cola 750ml", "Coca Cola", domain.CategoryBeverages, 180},
	"8901388001019": {"Tropicana Orange Juice 1L", "PepsiCo", domain.CategoryBeverages, 60},
}

// Catalog is an in-memory barcode table.
type Catalog struct{}

// New returns the built-in catalog.
func New() *Catalog { return &Catalog{} }

// Name identifies the provider in errors and logs.
func (c *Catalog) Name() string { return string(domain.SourceLocal) }

// Lookup returns the product for upc, or nil, nil when it is not in the table.
func (c *Catalog) Lookup(_ context.Context, upc string) (*domain.Product, error) {
	e, ok := products[upc]
	if !ok {
		return nil, nil
	}
	return &domain.Product{
		Found:               true,
		Source:              domain.SourceLocal,
		UPC:                 upc,
		Name:                e.name,
		Brand:               e.brand,
		Category:            e.category,
		SuggestedExpiryDays: e.expiryDays,
	}, nil
}
