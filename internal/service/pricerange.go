package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-market-api/internal/models"
)

// priceBuckets — число корзин гистограммы цен.
const priceBuckets = 5

// PriceRange возвращает статистику цен по поисковому запросу:
// min/max/среднее/количество и гистограмму из 5 равных корзин,
// покрывающих интервал [0, max+100).
func (s *Service) PriceRange(ctx context.Context, query string, pages int) (*models.PriceRange, error) {
	const op = "service/pricerange/PriceRange"

	products, err := s.SearchProducts(ctx, query, "cheap", pages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(products) == 0 {
		return &models.PriceRange{Query: query}, nil
	}

	min, max, sum := products[0].Price, products[0].Price, 0.0
	for _, p := range products {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
		sum += p.Price
	}

	prices := make([]float64, 0, len(products))
	for _, p := range products {
		prices = append(prices, p.Price)
	}

	return &models.PriceRange{
		Query:        query,
		Min:          min,
		Max:          max,
		Avg:          sum / float64(len(products)),
		Total:        len(products),
		Distribution: priceDistribution(prices, max),
	}, nil
}

// priceDistribution раскладывает цены по 5 равным корзинам шириной
// (max+100)/5; корзина полуоткрыта: [lo, hi).
func priceDistribution(prices []float64, max float64) map[string]int {
	step := (max + 100) / priceBuckets

	dist := make(map[string]int, priceBuckets)
	for i := 0; i < priceBuckets; i++ {
		dist[bucketLabel(i, step)] = 0
	}

	for _, price := range prices {
		for i := 0; i < priceBuckets; i++ {
			if float64(i)*step <= price && price < float64(i+1)*step {
				dist[bucketLabel(i, step)]++
				break
			}
		}
	}

	return dist
}

func bucketLabel(i int, step float64) string {
	return fmt.Sprintf("%.0f-%.0f", float64(i)*step, float64(i+1)*step)
}
