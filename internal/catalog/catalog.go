// Package catalog holds the fixed product data. Products are static: they
// are never created or edited by this service, only read.
package catalog

type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
}

var products = []Product{
	{
		ID:       "xx99-mark-two-headphones",
		Name:     "XX99 Mark II Headphones",
		Category: "headphones",
		Price:    2999,
		Image:    "/assets/product-xx99-mark-two-headphones/desktop.jpg",
	},
	{
		ID:       "xx99-mark-one-headphones",
		Name:     "XX99 Mark I Headphones",
		Category: "headphones",
		Price:    1750,
		Image:    "/assets/product-xx99-mark-one-headphones/desktop.jpg",
	},
	{
		ID:       "xx59-headphones",
		Name:     "XX59 Headphones",
		Category: "headphones",
		Price:    899,
		Image:    "/assets/product-xx59-headphones/desktop.jpg",
	},
	{
		ID:       "zx9-speaker",
		Name:     "ZX9 Speaker",
		Category: "speakers",
		Price:    4500,
		Image:    "/assets/product-zx9-speaker/desktop.jpg",
	},
	{
		ID:       "zx7-speaker",
		Name:     "ZX7 Speaker",
		Category: "speakers",
		Price:    3500,
		Image:    "/assets/product-zx7-speaker/desktop.jpg",
	},
	{
		ID:       "yx1-earphones",
		Name:     "YX1 Wireless Earphones",
		Category: "earphones",
		Price:    599,
		Image:    "/assets/product-yx1-earphones/desktop.jpg",
	},
}

type Catalog struct {
	byID map[string]Product
	all  []Product
}

func New() *Catalog {
	c := &Catalog{byID: make(map[string]Product, len(products)), all: products}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

// Lookup returns the product with the given id, if present.
func (c *Catalog) Lookup(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) All() []Product {
	return c.all
}
