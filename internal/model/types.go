// Package model defines domain types used by the service.
package model

// Inventory reports how many units of a product are available upstream.
type Inventory struct {
	Available int `json:"available"`
}

// Price is an amount in a specific currency.
type Price struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// Product is the composite view assembled from the three upstreams.
type Product struct {
	ID        string    `json:"id"`
	Inventory Inventory `json:"inventory"`
	Price     Price     `json:"price"`
	Reviews   []string  `json:"reviews"`
}

// NewProduct combines three already-fetched values into a Product. Review
// order is kept exactly as delivered; a nil slice becomes an empty one so
// the JSON form is always an array.
func NewProduct(id string, inv Inventory, price Price, reviews []string) Product {
	if reviews == nil {
		reviews = []string{}
	}
	return Product{ID: id, Inventory: inv, Price: price, Reviews: reviews}
}
