package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/pribylovaa/go-market-api/internal/models"
)

const (
	// maxAlternatives — размер каждого из двух списков альтернатив.
	maxAlternatives = 3
	// floorPriceShare — доля цены исходного товара, ниже которой кандидаты
	// отбрасываются как шум данных (ошибочно заведённые цены).
	floorPriceShare = 0.1
)

// Alternatives подбирает альтернативы к товару по ссылке: до 3 более
// дешёвых (по возрастанию цены) и до 3 с не худшим рейтингом (по убыванию).
//
// Пул кандидатов — объединение двух поисков по названию товара (дешёвая и
// дорогая выдачи) с дедупликацией по идентификатору. Кандидаты из другой
// категории, дешевле порогового минимума или с числом отзывов ниже
// compare.min_feedbacks исключаются; сам исходный товар — всегда.
func (s *Service) Alternatives(ctx context.Context, link string, pages int) (*models.Alternatives, error) {
	const op = "service/alternatives/Alternatives"

	product, err := s.ProductByLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cheap, err := s.SearchProducts(ctx, product.Name, "cheap", pages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	expensive, err := s.SearchProducts(ctx, product.Name, "expensive", pages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pool := dedupeByID(append(append([]models.Product(nil), cheap...), expensive...))

	floor := product.Price * floorPriceShare
	minFeedbacks := s.cfg.Compare.MinFeedbacks

	var betterPrice, betterRating []models.Product
	for _, candidate := range pool {
		if candidate.ID == product.ID ||
			candidate.SubjectID != product.SubjectID ||
			candidate.Price < floor ||
			candidate.Feedbacks < minFeedbacks {
			continue
		}

		if candidate.Price <= product.Price {
			betterPrice = append(betterPrice, candidate)
		}

		if candidate.Rating >= product.Rating {
			betterRating = append(betterRating, candidate)
		}
	}

	sort.SliceStable(betterPrice, func(i, j int) bool {
		return betterPrice[i].Price < betterPrice[j].Price
	})
	sort.SliceStable(betterRating, func(i, j int) bool {
		return betterRating[i].Rating > betterRating[j].Rating
	})

	return &models.Alternatives{
		Original:     *product,
		BetterPrice:  head(betterPrice, maxAlternatives),
		BetterRating: head(betterRating, maxAlternatives),
	}, nil
}

// dedupeByID убирает дубликаты по идентификатору, сохраняя первое вхождение.
func dedupeByID(products []models.Product) []models.Product {
	seen := make(map[int64]struct{}, len(products))
	output := products[:0:0]

	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		output = append(output, p)
	}

	return output
}
