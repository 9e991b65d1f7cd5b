package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-market-api/internal/models"
	"github.com/pribylovaa/go-market-api/internal/pkg/log"
)

// Feedbacks возвращает отзывы на товар по ссылке на карточку.
//
// Отзывы привязаны к групповому идентификатору (Root), поэтому сперва
// резолвится сама карточка. Страницы отзывов идут последовательно: до
// пустой страницы либо до достижения заявленного апстримом общего числа,
// но не дальше fetch.feedback_max_pages.
func (s *Service) Feedbacks(ctx context.Context, link string) ([]models.Feedback, error) {
	const op = "service/feedbacks/Feedbacks"

	lg := log.From(ctx)

	product, err := s.ProductByLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	productNM := product.Root
	key := feedbacksKey(productNM)

	var cached []models.Feedback
	if s.cacheGet(ctx, op, key, &cached) && len(cached) > 0 {
		lg.Info("cache_hit",
			slog.String("op", op),
			slog.String("key", key),
		)
		return cached, nil
	}

	var all []models.Feedback
	for page := 1; page <= s.cfg.Fetch.FeedbackMaxPages; page++ {
		items, total, err := s.upstream.FeedbackPage(ctx, productNM, page)
		if err != nil {
			lg.Error("feedback_page_failed",
				slog.String("op", op),
				slog.Int64("product_nm", productNM),
				slog.Int("page", page),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrUpstream)
		}

		if len(items) == 0 {
			break
		}

		all = append(all, items...)

		if total > 0 && len(all) >= total {
			break
		}
	}

	if len(all) == 0 {
		lg.Info("no_feedbacks",
			slog.String("op", op),
			slog.Int64("product_nm", productNM),
		)
		return []models.Feedback{}, nil
	}

	s.cacheSet(ctx, op, key, all)

	lg.Info("feedbacks_ok",
		slog.String("op", op),
		slog.Int64("product_nm", productNM),
		slog.Int("feedbacks", len(all)),
	)

	return all, nil
}
