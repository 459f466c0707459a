// Package product implements the read-mostly catalog service.
package product

import (
	"context"
	"fmt"

	"shopback/internal/config"
	domain "shopback/internal/errors"
	"shopback/internal/models"
	"shopback/internal/repositories"
)

const (
	allProductsCacheKey = "products:all"
)

// View is a catalog entry annotated with its cashback percent.
type View struct {
	models.Product
	CashbackPercentage float64 `json:"cashback_percentage"`
}

// CreateProductInput is the payload accepted by product creation.
type CreateProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Cache is the generic JSON cache used for catalog reads.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

type Service interface {
	List(ctx context.Context) ([]View, error)
	ListByCategory(ctx context.Context, category string) ([]View, error)
	Get(ctx context.Context, id uint) (*View, error)
	Create(ctx context.Context, input CreateProductInput) (*View, error)
}

type service struct {
	repo  repositories.ProductRepository
	cache Cache
	cfg   config.CashbackConfig
}

func NewService(repo repositories.ProductRepository, cache Cache, cfg config.CashbackConfig) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cfg.Percentages == nil {
		cfg.Percentages = config.DefaultCashback().Percentages
	}
	return &service{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

func (s *service) List(ctx context.Context) ([]View, error) {
	if s.cache != nil {
		var cached []View
		if err := s.cache.Get(ctx, allProductsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	views := s.annotate(products)
	if s.cache != nil {
		s.cache.Set(ctx, allProductsCacheKey, views)
	}
	return views, nil
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]View, error) {
	if !models.ValidCategory(category) {
		return nil, domain.ErrInvalidCategory
	}

	products, err := s.repo.GetByCategory(category)
	if err != nil {
		return nil, err
	}
	return s.annotate(products), nil
}

func (s *service) Get(ctx context.Context, id uint) (*View, error) {
	if s.cache != nil {
		var cached View
		if err := s.cache.Get(ctx, productCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	view := &View{Product: *product, CashbackPercentage: s.cfg.Percent(product.Category)}
	if s.cache != nil {
		s.cache.Set(ctx, productCacheKey(id), view)
	}
	return view, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*View, error) {
	if !models.ValidCategory(input.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if input.Price <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Delete(ctx, allProductsCacheKey)
	}
	return &View{Product: *product, CashbackPercentage: s.cfg.Percent(product.Category)}, nil
}

func (s *service) annotate(products []models.Product) []View {
	views := make([]View, 0, len(products))
	for _, p := range products {
		views = append(views, View{Product: p, CashbackPercentage: s.cfg.Percent(p.Category)})
	}
	return views
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}
