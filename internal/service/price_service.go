package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"cartly-be/internal/cache"
	"cartly-be/internal/entities"
	"cartly-be/internal/models"
	"cartly-be/internal/repository"
)

// PriceService defines the interface for the public catalog surface
type PriceService interface {
	ListPrices(ctx context.Context, filter repository.PriceFilter) ([]*entities.PriceEntry, error)
	ListStores(ctx context.Context) ([]string, error)
	ListCategories(ctx context.Context) ([]string, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
}

type priceService struct {
	repo  repository.PriceRepository
	cache cache.Cache
}

const catalogCacheTTL = 5 * time.Minute

// NewPriceService creates a new price service. A nil cache disables caching.
func NewPriceService(repo repository.PriceRepository, cacheClient cache.Cache) PriceService {
	return &priceService{repo: repo, cache: cacheClient}
}

// ListPrices returns the filtered price listing, cached per filter combination.
func (s *priceService) ListPrices(ctx context.Context, filter repository.PriceFilter) ([]*entities.PriceEntry, error) {
	cacheKey := fmt.Sprintf("prices:%s:%s:%s:%s", filter.Store, filter.Category, filter.OnSale, filter.Search)

	if s.cache != nil {
		var cached []*entities.PriceEntry
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.repo.ListPrices(filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, cacheKey, entries, catalogCacheTTL)
	}

	return entries, nil
}

// ListStores returns the distinct store names.
func (s *priceService) ListStores(ctx context.Context) ([]string, error) {
	return s.cachedNames(ctx, "catalog:stores", s.repo.ListStores)
}

// ListCategories returns the distinct product categories.
func (s *priceService) ListCategories(ctx context.Context) ([]string, error) {
	return s.cachedNames(ctx, "catalog:categories", s.repo.ListCategories)
}

// FilterOptions fetches stores and categories concurrently; both reads are
// independent and the response needs them together.
func (s *priceService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var opts models.FilterOptions

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stores, err := s.ListStores(gctx)
		if err != nil {
			return err
		}
		opts.Stores = stores
		return nil
	})
	g.Go(func() error {
		categories, err := s.ListCategories(gctx)
		if err != nil {
			return err
		}
		opts.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &opts, nil
}

func (s *priceService) cachedNames(ctx context.Context, cacheKey string, load func() ([]string, error)) ([]string, error) {
	if s.cache != nil {
		var cached []string
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	names, err := load()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, cacheKey, names, catalogCacheTTL)
	}

	return names, nil
}
