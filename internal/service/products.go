package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-market-api/internal/fetch"
	"github.com/pribylovaa/go-market-api/internal/models"
	"github.com/pribylovaa/go-market-api/internal/pkg/log"
	"github.com/pribylovaa/go-market-api/internal/wb"
)

// ProductByLink возвращает карточку товара по ссылке на площадку.
//
// Правила:
//   - нераспознанная ссылка — ErrInvalidArgument, без похода в апстрим;
//   - кэшированная запись без группового идентификатора (Root==0) считается
//     отравленной: запись удаляется и выполняется свежая загрузка;
//   - пустой ответ апстрима либо карточка без Root — ErrNotFound.
func (s *Service) ProductByLink(ctx context.Context, link string) (*models.Product, error) {
	const op = "service/products/ProductByLink"

	lg := log.From(ctx)

	id, ok := wb.ProductIDFromLink(link)
	if !ok {
		return nil, fmt.Errorf("%s: bad link %q: %w", op, link, ErrInvalidArgument)
	}

	key := productKey(link)

	var cached []models.Product
	if s.cacheGet(ctx, op, key, &cached) && len(cached) > 0 {
		if cached[0].Root != 0 {
			lg.Info("cache_hit",
				slog.String("op", op),
				slog.String("key", key),
			)
			return &cached[0], nil
		}

		lg.Warn("cache_poisoned_no_root",
			slog.String("op", op),
			slog.String("key", key),
		)
		if err := s.cache.Delete(ctx, key); err != nil {
			lg.Warn("cache_evict_failed",
				slog.String("op", op),
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
		}
	}

	products, err := s.upstream.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, wb.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("detail_fetch_failed",
			slog.String("op", op),
			slog.Int64("id", id),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("%s: no product for link %q: %w", op, link, ErrNotFound)
	}

	product := products[0]
	if product.Root == 0 {
		return nil, fmt.Errorf("%s: product without root: %w", op, ErrNotFound)
	}

	s.cacheSet(ctx, op, key, []models.Product{product})

	return &product, nil
}

// ProductsBySupplier возвращает товары продавца, агрегированные с до pages
// страниц его каталога.
//
// Каталожный апстрим строже поискового, поэтому политика своя: меньше
// одновременных страниц, до fetch.supplier_retries попыток на страницу с
// линейным бэкоффом и пауза после каждой успешной страницы.
func (s *Service) ProductsBySupplier(ctx context.Context, supplierID int64, pages int) ([]models.Product, error) {
	const op = "service/products/ProductsBySupplier"

	if supplierID <= 0 {
		return nil, fmt.Errorf("%s: bad supplier id %d: %w", op, supplierID, ErrInvalidArgument)
	}

	lg := log.From(ctx)

	key := supplierKey(supplierID, pages)

	var cached []models.Product
	if s.cacheGet(ctx, op, key, &cached) {
		lg.Info("cache_hit",
			slog.String("op", op),
			slog.String("key", key),
		)
		return cached, nil
	}

	products := fetch.Pages(ctx, func(ctx context.Context, page int) ([]models.Product, error) {
		return s.upstream.SupplierPage(ctx, supplierID, page)
	}, fetch.Options{
		MaxPages:    s.clampPages(pages),
		Concurrency: s.cfg.Fetch.SupplierConcurrency,
		Retries:     s.cfg.Fetch.SupplierRetries,
		Backoff:     s.cfg.Fetch.RetryBackoff,
		Pacing:      s.cfg.Fetch.SupplierPacing,
	})

	sortByRatingDesc(products)

	s.cacheSet(ctx, op, key, products)

	lg.Info("supplier_ok",
		slog.String("op", op),
		slog.Int64("supplier_id", supplierID),
		slog.Int("products", len(products)),
	)

	return products, nil
}

// SupplierIDsByBrand возвращает (supplier_id, site_id) по ссылке на бренд.
func (s *Service) SupplierIDsByBrand(ctx context.Context, brandURL string) (*models.Brand, error) {
	const op = "service/products/SupplierIDsByBrand"

	lg := log.From(ctx)

	name, ok := wb.BrandNameFromURL(brandURL)
	if !ok {
		return nil, fmt.Errorf("%s: bad brand url %q: %w", op, brandURL, ErrInvalidArgument)
	}

	key := brandKey(name)

	var cached []models.Brand
	if s.cacheGet(ctx, op, key, &cached) && len(cached) > 0 {
		lg.Info("cache_hit",
			slog.String("op", op),
			slog.String("key", key),
		)
		return &cached[0], nil
	}

	brand, err := s.upstream.BrandByName(ctx, name)
	if err != nil {
		if errors.Is(err, wb.ErrNotFound) {
			return nil, fmt.Errorf("%s: brand %q: %w", op, name, ErrNotFound)
		}

		lg.Error("brand_fetch_failed",
			slog.String("op", op),
			slog.String("brand", name),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	s.cacheSet(ctx, op, key, []models.Brand{*brand})

	return brand, nil
}
