package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/pribylovaa/go-market-api/internal/fetch"
	"github.com/pribylovaa/go-market-api/internal/models"
	"github.com/pribylovaa/go-market-api/internal/pkg/log"
)

// topProductsLimit — размер топа в TopProducts.
const topProductsLimit = 3

// SearchProducts возвращает товары по поисковому запросу, агрегированные
// с до pages страниц выдачи (потолок — fetch.max_pages из конфига).
//
// Правила:
//   - sort "cheap" — выдача апстрима по возрастанию цены, иначе по убыванию;
//   - результат отсортирован по убыванию рейтинга (канонический порядок);
//   - результат кэшируется; попадание в кэш не ходит в апстрим;
//   - ошибка одной страницы даёт для неё ноль записей и не прерывает
//     операцию.
func (s *Service) SearchProducts(ctx context.Context, query, sortOrder string, pages int) ([]models.Product, error) {
	const op = "service/search/SearchProducts"

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%s: empty query: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx)

	key := searchKey(query, sortOrder, pages)

	var cached []models.Product
	if s.cacheGet(ctx, op, key, &cached) {
		lg.Info("cache_hit",
			slog.String("op", op),
			slog.String("key", key),
		)
		return cached, nil
	}

	sortParam := "pricedown"
	if sortOrder == "cheap" {
		sortParam = "priceup"
	}

	products := fetch.Pages(ctx, func(ctx context.Context, page int) ([]models.Product, error) {
		return s.upstream.SearchPage(ctx, query, sortParam, page)
	}, fetch.Options{
		MaxPages:    s.clampPages(pages),
		Concurrency: s.cfg.Fetch.SearchConcurrency,
	})

	sortByRatingDesc(products)

	s.cacheSet(ctx, op, key, products)

	lg.Info("search_ok",
		slog.String("op", op),
		slog.String("query", query),
		slog.Int("products", len(products)),
	)

	return products, nil
}

// TopProducts возвращает топ-3 по рейтингу отдельно для «дорогой» и
// «дешёвой» поисковых выдач.
func (s *Service) TopProducts(ctx context.Context, query string, pages int) (*models.TopProducts, error) {
	const op = "service/search/TopProducts"

	expensive, err := s.SearchProducts(ctx, query, "expensive", pages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cheap, err := s.SearchProducts(ctx, query, "cheap", pages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// SearchProducts уже отдаёт порядок по убыванию рейтинга.
	return &models.TopProducts{
		TopExpensive: head(expensive, topProductsLimit),
		TopCheap:     head(cheap, topProductsLimit),
	}, nil
}

// clampPages нормализует запрошенное число страниц к [1, fetch.max_pages].
func (s *Service) clampPages(pages int) int {
	if pages < 1 {
		return 1
	}
	if pages > s.cfg.Fetch.MaxPages {
		return s.cfg.Fetch.MaxPages
	}
	return pages
}

func sortByRatingDesc(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Rating > products[j].Rating
	})
}

// head возвращает копию первых n элементов.
func head(products []models.Product, n int) []models.Product {
	if len(products) < n {
		n = len(products)
	}

	return append([]models.Product(nil), products[:n]...)
}
