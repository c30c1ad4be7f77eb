// Package catalog manages the product collection.
package catalog

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"tokopos/models"
	"tokopos/storedb"
)

var (
	ErrNotFound     = errors.New("catalog: product not found")
	ErrInvalidInput = errors.New("catalog: missing or invalid fields")
)

type Service struct {
	mu    sync.Mutex
	store storedb.Store
}

func NewService(store storedb.Store) *Service {
	return &Service{store: store}
}

// ProductInput carries the editable product fields. Wholesale price and
// minimum quantity at zero disable the tier.
type ProductInput struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	WholesalePrice  float64 `json:"wholesale_price"`
	MinWholesaleQty int     `json:"min_wholesale_qty"`
	Category        string  `json:"category"`
	Stock           int     `json:"stock"`
	StockNote       string  `json:"stock_note"`
}

func (in ProductInput) validate() error {
	if in.Name == "" || in.Price < 0 || in.WholesalePrice < 0 || in.MinWholesaleQty < 0 || in.Stock < 0 {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) products() ([]models.Product, error) {
	var products []models.Product
	if err := s.store.Get(storedb.Products, &products); err != nil {
		if errors.Is(err, storedb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return products, nil
}

// Products lists the whole catalog.
func (s *Service) Products() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products()
}

// Product fetches one product by id.
func (s *Service) Product(id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Create adds a product under a fresh id.
func (s *Service) Create(in ProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := in.validate(); err != nil {
		return nil, err
	}
	products, err := s.products()
	if err != nil {
		return nil, err
	}

	p := models.Product{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Price:           in.Price,
		WholesalePrice:  in.WholesalePrice,
		MinWholesaleQty: in.MinWholesaleQty,
		Category:        in.Category,
		Stock:           in.Stock,
		StockNote:       in.StockNote,
	}
	if err := s.store.Put(storedb.Products, append(products, p)); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces every editable field of the product, stock included.
// Stock decrements from sales go through checkout, not here.
func (s *Service) Update(id string, in ProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := in.validate(); err != nil {
		return nil, err
	}
	products, err := s.products()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].Name = in.Name
		products[i].Price = in.Price
		products[i].WholesalePrice = in.WholesalePrice
		products[i].MinWholesaleQty = in.MinWholesaleQty
		products[i].Category = in.Category
		products[i].Stock = in.Stock
		products[i].StockNote = in.StockNote
		if err := s.store.Put(storedb.Products, products); err != nil {
			return nil, err
		}
		out := products[i]
		return &out, nil
	}
	return nil, ErrNotFound
}

// Delete removes the product from the catalog.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products = append(products[:i], products[i+1:]...)
		return s.store.Put(storedb.Products, products)
	}
	return ErrNotFound
}
