package query

import "github.com/samber/lo"

// ProductsPath lists all products.
const ProductsPath = "/products"

// Product is a single product of the product API.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// Products is a page of the product list.
type Products struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// First returns at most n products. A negative n yields none.
func (p Products) First(n int) []Product {
	return lo.Slice(p.Products, 0, max(n, 0))
}

// NewProducts creates the product list endpoint.
func NewProducts(client *Client, opts EndpointOptions) *Endpoint[Products] {
	return NewEndpoint[Products](client, ProductsPath, opts)
}
