package product

import (
	"context"
	"testing"

	"shopback/internal/config"
	domain "shopback/internal/errors"
	"shopback/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products []models.Product
	nextID   uint
}

func (f *fakeProductRepo) Create(p *models.Product) error {
	f.nextID++
	p.ID = f.nextID
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *fakeProductRepo) GetAll() ([]models.Product, error) {
	return append([]models.Product(nil), f.products...), nil
}

func (f *fakeProductRepo) GetByCategory(category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) DeleteAll() error {
	f.products = nil
	return nil
}

func newTestService(repo *fakeProductRepo) Service {
	// nil cache: the service must work without Redis.
	return NewService(repo, nil, config.DefaultCashback())
}

func TestService_List_AnnotatesCashback(t *testing.T) {
	repo := &fakeProductRepo{}
	s := newTestService(repo)
	ctx := context.Background()

	_, err := s.Create(ctx, CreateProductInput{Name: "Phone", Description: "a phone", Price: 100, Category: "A"})
	require.NoError(t, err)
	_, err = s.Create(ctx, CreateProductInput{Name: "Speaker", Description: "a speaker", Price: 80, Category: "C"})
	require.NoError(t, err)

	views, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 10.0, views[0].CashbackPercentage)
	assert.Equal(t, 7.0, views[1].CashbackPercentage)
}

func TestService_Get(t *testing.T) {
	repo := &fakeProductRepo{}
	s := newTestService(repo)
	ctx := context.Background()

	created, err := s.Create(ctx, CreateProductInput{Name: "Tablet", Description: "a tablet", Price: 349.99, Category: "B"})
	require.NoError(t, err)

	view, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tablet", view.Name)
	assert.Equal(t, 2.0, view.CashbackPercentage)

	_, err = s.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestService_ListByCategory(t *testing.T) {
	repo := &fakeProductRepo{}
	s := newTestService(repo)
	ctx := context.Background()

	_, err := s.Create(ctx, CreateProductInput{Name: "Phone", Description: "a phone", Price: 100, Category: "A"})
	require.NoError(t, err)
	_, err = s.Create(ctx, CreateProductInput{Name: "Speaker", Description: "a speaker", Price: 80, Category: "C"})
	require.NoError(t, err)

	views, err := s.ListByCategory(ctx, "A")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Phone", views[0].Name)

	_, err = s.ListByCategory(ctx, "D")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestService_Create_Validation(t *testing.T) {
	s := newTestService(&fakeProductRepo{})
	ctx := context.Background()

	_, err := s.Create(ctx, CreateProductInput{Name: "Bad", Price: 10, Category: "Z"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = s.Create(ctx, CreateProductInput{Name: "Free", Price: 0, Category: "A"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
